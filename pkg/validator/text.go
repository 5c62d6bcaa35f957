package validator

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

const (
	keyRequired     = "validation.required"
	keyTextPattern  = "validation.text.pattern"
	keyTextExample  = "validation.text.example"
	keyTextTextarea = "textarea"
)

// Text checks a free-form value: required, optional tag stripping, pattern,
// then minimum and maximum length. Both length violations are reported.
func (v *Validator) Text(field, value string, opts Bag) *Validator {
	o := resolve[TextOptions](v, "text", opts, DefaultTextOptions())
	v.text(field, value, o, keyTextPattern)
	return v
}

// Textarea is Text for multi-line input; pattern messages carry no example.
func (v *Validator) Textarea(field, value string, opts Bag) *Validator {
	o := resolve[TextOptions](v, "textarea", opts, defaultTextareaOptions())
	v.text(field, value, o, keyTextPattern)
	return v
}

func defaultTextareaOptions() Bag {
	defaults := DefaultTextOptions()
	defaults["typeInput"] = keyTextTextarea
	defaults["maxLength"] = 0
	return defaults
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func required(field string) ValidationError {
	return fail(field, keyRequired, "This field is mandatory.", nil)
}

func (v *Validator) text(field, value string, o TextOptions, patternKey string) bool {
	if isBlank(value) {
		if o.RequiredInput {
			v.record(field, required(field))
			return false
		}
		return true
	}

	if o.StripTags {
		value = sanitizer.StripTags(value)
	}

	if o.RegexValidator != "" && !compile(o.RegexValidator).MatchString(value) {
		v.record(field, v.patternError(field, o, patternKey))
		return false
	}

	length := utf8.RuneCountInString(strings.TrimSpace(value))
	return v.every(field,
		Rule{
			Check: func() bool { return o.MinLength <= 0 || length >= o.MinLength },
			Error: fail(field, "validation.text.min_length", "too short", map[string]any{"min": o.MinLength}),
		},
		Rule{
			Check: func() bool { return o.MaxLength <= 0 || length <= o.MaxLength },
			Error: fail(field, "validation.text.max_length", "too long", map[string]any{"max": o.MaxLength}),
		},
	)
}

// patternError prefers the caller's errorMessage and appends the awaited
// example unless the input is a textarea.
func (v *Validator) patternError(field string, o TextOptions, key string) ValidationError {
	base := fail(field, key, "invalid format", nil)
	if o.ErrorMessage != "" {
		base = ValidationError{Field: field, Message: o.ErrorMessage}
	}
	if o.TypeInput == keyTextTextarea || o.EgAwaitedString == "" {
		return base
	}
	return ValidationError{
		Field:          field,
		Message:        base.Message + " " + o.EgAwaitedString,
		TranslationKey: keyTextExample,
		TranslationValues: map[string]any{
			"message": v.message(base),
			"example": o.EgAwaitedString,
		},
	}
}
