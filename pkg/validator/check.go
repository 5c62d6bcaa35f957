package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/merge"
	"github.com/dmitrymomot/formkit/pkg/phone"
)

// CheckOptions reports, as an error, the misconfiguration the check of kind
// would panic on for opts: unknown or mistyped keys, patterns that do not
// compile, and malformed date or phone formats.
// Kinds are the lowercase method names: text, textarea, email, fqdn, ip, tel,
// date, number, select, checkbox, radio, password and file.
func CheckOptions(kind string, opts Bag, strategy merge.Strategy) error {
	switch kind {
	case "text":
		return checkResolved(kind, opts, DefaultTextOptions(), strategy, func(o TextOptions) error {
			return checkPatterns(o.RegexValidator)
		})
	case "textarea":
		return checkResolved(kind, opts, defaultTextareaOptions(), strategy, func(o TextOptions) error {
			return checkPatterns(o.RegexValidator)
		})
	case "email":
		return checkResolved(kind, opts, DefaultEmailOptions(), strategy, checkEmailOptions)
	case "fqdn":
		return checkResolved(kind, opts, DefaultFQDNOptions(), strategy, func(FQDNOptions) error { return nil })
	case "ip":
		return checkResolved(kind, opts, DefaultIPOptions(), strategy, func(IPOptions) error { return nil })
	case "tel":
		return checkResolved(kind, opts, DefaultTelOptions(), strategy, func(o TelOptions) error {
			if _, err := (phone.Number{}).Formatted(phone.Format(o.Format)); err != nil {
				return wrapOptions(kind, err)
			}
			return nil
		})
	case "date":
		return checkResolved(kind, opts, DefaultDateOptions(), strategy, checkDateFormat)
	case "number":
		return checkResolved(kind, opts, DefaultNumberOptions(), strategy, func(o NumberOptions) error {
			return checkPatterns(o.RegexValidator)
		})
	case "select":
		return checkResolved(kind, opts, DefaultSelectOptions(), strategy, func(SelectOptions) error { return nil })
	case "checkbox":
		return checkResolved(kind, opts, DefaultCheckboxOptions(), strategy, func(CheckboxOptions) error { return nil })
	case "radio":
		return checkResolved(kind, opts, DefaultRadioOptions(), strategy, func(RadioOptions) error { return nil })
	case "password":
		return checkResolved(kind, opts, DefaultPasswordOptions(), strategy, func(o PasswordOptions) error {
			return checkPatterns(o.RegexValidator, o.UppercaseRegex, o.LowercaseRegex, o.DigitRegex,
				o.SymbolRegex, o.PunctuationRegex, o.SpecialCharRegex)
		})
	case "file":
		return checkResolved(kind, opts, DefaultFileOptions(), strategy, func(FileOptions) error { return nil })
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidOptions, kind)
	}
}

func checkResolved[T any](kind string, user, defaults Bag, strategy merge.Strategy, check func(T) error) error {
	o, err := merge.Resolve[T](user, defaults, strategy)
	if err != nil {
		return wrapOptions(kind, err)
	}
	return check(o)
}

func checkEmailOptions(o EmailOptions) error {
	patterns := []string{o.RegexValidator}
	if o.BlacklistedChars != "" {
		patterns = append(patterns, "["+o.BlacklistedChars+"]+")
	}
	for _, entry := range append(o.HostBlacklist, o.HostWhitelist...) {
		if len(entry) > 2 && strings.HasPrefix(entry, "/") && strings.HasSuffix(entry, "/") {
			patterns = append(patterns, entry[1:len(entry)-1])
		}
	}
	return checkPatterns(patterns...)
}

func checkPatterns(patterns ...string) error {
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidPattern, p, err)
		}
	}
	return nil
}

// checkDateFormat requires a year/month/day layout split by one of the delimiters.
func checkDateFormat(o DateOptions) error {
	if !dateFormatPattern.MatchString(o.Format) {
		return fmt.Errorf("%w: %q", ErrMalformedFormat, o.Format)
	}
	if findDelimiter(o.Format, o.Delimiters) == "" {
		return fmt.Errorf("%w: %q uses none of the delimiters %q", ErrMalformedFormat, o.Format, o.Delimiters)
	}
	return nil
}
