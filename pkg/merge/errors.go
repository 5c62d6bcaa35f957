package merge

import "errors"

var (
	// ErrUnknownStrategy is returned for an array strategy token that is not recognized.
	ErrUnknownStrategy = errors.New("unknown array merge strategy")

	// ErrDecode is returned when a merged bag cannot be decoded into the target struct.
	ErrDecode = errors.New("failed to decode option bag")
)
