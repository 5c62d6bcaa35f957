package schema

import "errors"

var (
	ErrInvalidSchema = errors.New("invalid form schema")
	ErrUnknownFormat = errors.New("unknown schema format")
	ErrReadSchema    = errors.New("failed to read schema file")
	ErrUnknownField  = errors.New("unknown field")
)
