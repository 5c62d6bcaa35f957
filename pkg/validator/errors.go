package validator

import "errors"

// Misconfiguration errors. The chainable API panics with these wrapped so
// that errors.Is still matches after recover.
var (
	// ErrMalformedFormat is raised for a date format that is not a year/month/day layout.
	ErrMalformedFormat = errors.New("malformed date format")

	// ErrZipLength is raised when zipping slices of different lengths.
	ErrZipLength = errors.New("zip: slices have different lengths")

	// ErrInvalidOptions is raised when an option bag cannot be merged or decoded.
	ErrInvalidOptions = errors.New("invalid validator options")

	// ErrInvalidPattern is raised for a custom regular expression that does not compile.
	ErrInvalidPattern = errors.New("invalid regular expression")
)
