package validator

import (
	"slices"
	"strings"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// Select checks that a value, or every value of a list, is one of optionsChoices.
// All offending values are reported in a single message.
func (v *Validator) Select(field string, value any, opts Bag) *Validator {
	o := resolve[SelectOptions](v, "select", opts, DefaultSelectOptions())
	values := sanitizer.FilterEmpty(toStrings(value))
	if len(values) == 0 {
		if o.RequiredInput {
			v.record(field, required(field))
		}
		return v
	}
	v.selectValues(field, values, o)
	return v
}

// Checkbox checks a set of checked values: required, then max, then min,
// then membership as in Select.
func (v *Validator) Checkbox(field string, selected []string, opts Bag) *Validator {
	o := resolve[CheckboxOptions](v, "checkbox", opts, DefaultCheckboxOptions())
	selected = sanitizer.FilterEmpty(selected)
	count := len(selected)

	ok := v.first(field,
		Rule{
			Check: func() bool { return !o.RequiredInput || count > 0 },
			Error: required(field),
		},
		Rule{
			Check: func() bool { return o.Max <= 0 || count <= o.Max },
			Error: fail(field, "validation.choice.max", "too many options", map[string]any{"max": o.Max}),
		},
		Rule{
			Check: func() bool { return o.Min <= 0 || count >= o.Min },
			Error: fail(field, "validation.choice.min", "too few options", map[string]any{"min": o.Min}),
		},
	)
	if ok && count > 0 {
		v.selectValues(field, selected, o.SelectOptions)
	}
	return v
}

// Radio requires a value when requiredInput is set and, when choices are
// given, that the value is one of them.
func (v *Validator) Radio(field, value string, opts Bag) *Validator {
	o := resolve[RadioOptions](v, "radio", opts, DefaultRadioOptions())
	if isBlank(value) {
		if o.RequiredInput {
			v.record(field, required(field))
		}
		return v
	}
	v.selectValues(field, []string{value}, SelectOptions{OptionsChoices: o.OptionsChoices})
	return v
}

func (v *Validator) selectValues(field string, values []string, o SelectOptions) bool {
	if len(o.OptionsChoices) == 0 {
		return true
	}

	var offending []string
	for _, value := range values {
		if !isChoice(value, o) {
			offending = append(offending, value)
		}
	}
	if len(offending) == 0 {
		return true
	}

	v.record(field, fail(field, "validation.choice.invalid", "not an allowed choice", map[string]any{
		"values":  strings.Join(sanitizer.Deduplicate(offending), ", "),
		"options": strings.Join(o.OptionsChoices, ", "),
	}))
	return false
}

// isChoice matches value against the choices as written, and with
// escapeHtml also against choices written in HTML-escaped form.
func isChoice(value string, o SelectOptions) bool {
	if slices.Contains(o.OptionsChoices, value) {
		return true
	}
	return o.EscapeHTML && slices.Contains(o.OptionsChoices, sanitizer.EscapeHTML(value))
}

func toStrings(value any) []string {
	switch val := value.(type) {
	case nil:
		return nil
	case string:
		return []string{val}
	case []string:
		return val
	default:
		return cast.ToStringSlice(value)
	}
}
