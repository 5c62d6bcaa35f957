package validator

import (
	"strings"

	"github.com/dmitrymomot/formkit/pkg/phone"
)

// Tel checks a phone number with the configured phone.Parser. On success the
// number rendered in opts' format is available from Normalized.
func (v *Validator) Tel(field, value string, opts Bag) *Validator {
	o := resolve[TelOptions](v, "tel", opts, DefaultTelOptions())
	if _, err := (phone.Number{}).Formatted(phone.Format(o.Format)); err != nil {
		panic(wrapOptions("tel", err))
	}
	v.setNormalized(field, "")

	value = strings.TrimSpace(value)
	if value == "" {
		if o.RequiredInput {
			v.record(field, required(field))
		}
		return v
	}

	num, err := v.phones.Parse(value, o.DefaultRegion)
	if err != nil {
		reason := strings.TrimPrefix(err.Error(), phone.ErrUnparsable.Error()+": ")
		v.record(field, fail(field, "validation.tel.unparsable", "invalid phone number", map[string]any{"reason": reason}))
		return v
	}
	if !num.Valid {
		v.record(field, fail(field, "validation.tel.invalid", "invalid phone number", nil))
		return v
	}

	formatted, _ := num.Formatted(phone.Format(o.Format))
	v.setNormalized(field, formatted)
	return v
}
