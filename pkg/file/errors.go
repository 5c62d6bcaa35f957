package file

import "errors"

var (
	ErrNilFileHeader    = errors.New("file header is nil")
	ErrFailedToOpenFile = errors.New("failed to open file")
	ErrFailedToReadFile = errors.New("failed to read file")
)
