package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

const maxLabelLength = 63

var (
	tldPattern        = regexp.MustCompile(`(?i)^([a-z\x{00A1}-\x{00A8}\x{00AA}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFEF}]{2,}|xn[a-z0-9-]{2,})$`)
	labelPattern      = regexp.MustCompile(`(?i)^[a-z_\x{00A1}-\x{10FFFF}0-9-]+$`)
	whitespacePattern = regexp.MustCompile(`\s`)
	digitsPattern     = regexp.MustCompile(`^\d+$`)
)

// FQDN checks a fully qualified domain name. The first violated rule is reported.
func (v *Validator) FQDN(field, value string, opts Bag) *Validator {
	o := resolve[FQDNOptions](v, "fqdn", opts, DefaultFQDNOptions())
	if isBlank(value) {
		if o.RequiredInput {
			v.record(field, required(field))
		}
		return v
	}
	if e, ok := checkFQDN(field, value, o); !ok {
		v.record(field, e)
	}
	return v
}

// checkFQDN returns the error for the first rule value breaks.
func checkFQDN(field, value string, o FQDNOptions) (ValidationError, bool) {
	if o.AllowTrailingDot {
		value = strings.TrimSuffix(value, ".")
	}
	if o.AllowWildcard {
		value = strings.TrimPrefix(value, "*.")
	}

	labels := strings.Split(value, ".")
	tld := labels[len(labels)-1]

	if o.RequireTLD {
		if len(labels) < 2 {
			return fail(field, "validation.fqdn.tld", "missing top-level domain", nil), false
		}
		if !o.AllowNumericTLD && !tldPattern.MatchString(tld) {
			if digitsPattern.MatchString(tld) {
				return fail(field, "validation.fqdn.numeric_tld", "numeric top-level domain", nil), false
			}
			return fail(field, "validation.fqdn.tld", "invalid top-level domain", nil), false
		}
		if whitespacePattern.MatchString(tld) {
			return fail(field, "validation.fqdn.tld", "invalid top-level domain", nil), false
		}
	}
	if !o.AllowNumericTLD && digitsPattern.MatchString(tld) {
		return fail(field, "validation.fqdn.numeric_tld", "numeric top-level domain", nil), false
	}

	for _, label := range labels {
		switch {
		case !o.IgnoreMaxLength && utf8.RuneCountInString(label) > maxLabelLength:
			return fail(field, "validation.fqdn.label_too_long", "label too long", nil), false
		case !labelPattern.MatchString(label):
			return fail(field, "validation.fqdn.label_chars", "invalid characters", nil), false
		case hasFullWidth(label):
			return fail(field, "validation.fqdn.fullwidth", "full-width characters", nil), false
		case strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-"):
			return fail(field, "validation.fqdn.hyphen", "leading or trailing hyphen", nil), false
		case !o.AllowUnderscores && strings.Contains(label, "_"):
			return fail(field, "validation.fqdn.underscore", "underscore not allowed", nil), false
		}
	}
	return ValidationError{}, true
}

func hasFullWidth(s string) bool {
	for _, r := range s {
		if width.LookupRune(r).Kind() == width.EastAsianFullwidth {
			return true
		}
	}
	return false
}
