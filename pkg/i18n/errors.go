package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrNilAdapter        = errors.New("translation adapter is nil")
	ErrParsingCancelled  = errors.New("translation parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToReadDir   = errors.New("failed to read translations directory")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrNoTranslations    = errors.New("no translation files found")
	ErrInvalidCatalog    = errors.New("invalid translation catalog")
)

// ErrLanguageNotSupported indicates that the requested language is not available.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
