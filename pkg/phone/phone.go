// Package phone parses and formats telephone numbers for the tel validator.
//
// Parser is the seam the validator depends on; LibPhoneNumber implements it
// with github.com/nyaruka/phonenumbers, a Go port of Google's libphonenumber.
package phone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Format selects the canonical rendering of a number.
type Format string

const (
	FormatE164          Format = "E164"
	FormatInternational Format = "INTERNATIONAL"
	FormatNational      Format = "NATIONAL"
)

var (
	// ErrUnparsable wraps the underlying reason a raw string is not a phone number.
	ErrUnparsable = errors.New("phone number cannot be parsed")
	// ErrUnknownFormat is returned for a Format outside the declared constants.
	ErrUnknownFormat = errors.New("unknown phone number format")
)

// Number is the outcome of a successful parse.
type Number struct {
	Raw    string
	Region string
	// Valid reports whether the number is assignable in its region.
	Valid         bool
	E164          string
	International string
	National      string
}

// Formatted returns the number rendered in f.
func (n Number) Formatted(f Format) (string, error) {
	switch Format(strings.ToUpper(string(f))) {
	case FormatE164, "":
		return n.E164, nil
	case FormatInternational:
		return n.International, nil
	case FormatNational:
		return n.National, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Parser turns a raw string into a Number using defaultRegion for numbers without a country code.
type Parser interface {
	Parse(raw, defaultRegion string) (Number, error)
}

// LibPhoneNumber is the default Parser.
type LibPhoneNumber struct{}

func (LibPhoneNumber) Parse(raw, defaultRegion string) (Number, error) {
	num, err := phonenumbers.Parse(raw, strings.ToUpper(defaultRegion))
	if err != nil {
		return Number{}, fmt.Errorf("%w: %w", ErrUnparsable, err)
	}

	return Number{
		Raw:           raw,
		Region:        phonenumbers.GetRegionCodeForNumber(num),
		Valid:         phonenumbers.IsValidNumber(num),
		E164:          phonenumbers.Format(num, phonenumbers.E164),
		International: phonenumbers.Format(num, phonenumbers.INTERNATIONAL),
		National:      phonenumbers.Format(num, phonenumbers.NATIONAL),
	}, nil
}
