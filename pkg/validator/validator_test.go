package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/errstore"
	"github.com/dmitrymomot/formkit/pkg/merge"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const mandatory = "This field is mandatory."

func newValidator(t *testing.T, opts ...validator.Option) (*validator.Validator, *errstore.Store) {
	t.Helper()
	store := errstore.New()
	return validator.New(store, opts...), store
}

// recoverError runs fn and returns the error it panicked with.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()
	return nil
}

func TestNew(t *testing.T) {
	t.Run("nil sink gets a store", func(t *testing.T) {
		v := validator.New(nil)
		require.NotNil(t, v.Sink())
		v.Text("name", "", nil)
		assert.False(t, v.Sink().IsValid("name"))
	})

	t.Run("default language", func(t *testing.T) {
		v, _ := newValidator(t)
		assert.Equal(t, "en", v.Language())
	})

	t.Run("chaining records every field", func(t *testing.T) {
		v, store := newValidator(t)
		v.Text("name", "Jean", nil).
			Email("email", "not-an-email", nil).
			Number("age", 17, validator.Bag{"min": 18})

		assert.True(t, store.IsValid("name"))
		assert.False(t, store.IsValid("email"))
		assert.False(t, store.IsValid("age"))
		assert.Equal(t, []string{"email", "age"}, store.InvalidFields())
	})

	t.Run("fields never validated stay valid", func(t *testing.T) {
		v, store := newValidator(t)
		v.Text("name", "", nil)
		assert.True(t, store.IsValid("untouched"))
		assert.Equal(t, []string{}, store.Messages("untouched"))
	})
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en", mandatory},
		{"fr", "Ce champ est obligatoire."},
		{"FR", "Ce champ est obligatoire."},
		{"de", mandatory},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			v, store := newValidator(t, validator.WithLanguage(tt.lang))
			v.Text("name", "", nil)
			assert.Equal(t, []string{tt.want}, store.Messages("name"))
		})
	}
}

func TestCheck(t *testing.T) {
	rules := func(value string) []validator.Rule {
		return []validator.Rule{
			{
				Check: func() bool { return value != "admin" },
				Error: validator.ValidationError{Field: "login", Message: "reserved login"},
			},
			{
				Check: func() bool { return len(value) >= 3 },
				Error: validator.ValidationError{
					Field:             "login",
					Message:           "too short",
					TranslationKey:    "validation.text.min_length",
					TranslationValues: map[string]any{"min": 3},
				},
			},
		}
	}

	t.Run("first failure wins", func(t *testing.T) {
		v, store := newValidator(t)
		v.Check("login", rules("admin")...)
		assert.Equal(t, []string{"reserved login"}, store.Messages("login"))
	})

	t.Run("translated rule", func(t *testing.T) {
		v, store := newValidator(t)
		v.Check("login", rules("jo")...)
		assert.Equal(t, []string{"Must be at least 3 characters long."}, store.Messages("login"))
	})

	t.Run("passing rules", func(t *testing.T) {
		v, store := newValidator(t)
		v.Check("login", rules("jean")...)
		assert.True(t, store.IsValid("login"))
	})
}

func TestApply(t *testing.T) {
	err := validator.Apply(
		validator.Rule{Check: func() bool { return true }},
		validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: "email", Message: "invalid"},
		},
	)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 1)
	assert.Equal(t, "validation failed: email: invalid", err.Error())

	assert.NoError(t, validator.Apply(validator.Rule{Check: func() bool { return true }}))
}

func TestInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		fn   func(v *validator.Validator)
	}{
		{"unknown key", func(v *validator.Validator) { v.Text("f", "x", validator.Bag{"minLenght": 3}) }},
		{"wrong type", func(v *validator.Validator) { v.Number("f", 1, validator.Bag{"min": "ten"}) }},
		{"bad date bound", func(v *validator.Validator) { v.Date("f", "2024/01/01", validator.Bag{"minDate": "yesterday"}) }},
		{"bad phone format", func(v *validator.Validator) { v.Tel("f", "0612345678", validator.Bag{"format": "RFC3966"}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newValidator(t)
			err := recoverError(t, func() { tt.fn(v) })
			assert.ErrorIs(t, err, validator.ErrInvalidOptions)
		})
	}
}

func TestInvalidPattern(t *testing.T) {
	v, _ := newValidator(t)
	err := recoverError(t, func() {
		v.Text("name", "Jean", validator.Bag{"regexValidator": "[a-z"})
	})
	assert.ErrorIs(t, err, validator.ErrInvalidPattern)
}

func TestCheckOptions(t *testing.T) {
	tests := []struct {
		name string
		kind string
		opts validator.Bag
		want error // nil means accepted
	}{
		{"defaults", "text", nil, nil},
		{"textarea", "textarea", validator.Bag{"minLength": 10}, nil},
		{"misspelled key", "text", validator.Bag{"minLenght": 3}, validator.ErrInvalidOptions},
		{"wrong type", "number", validator.Bag{"min": "ten"}, validator.ErrInvalidOptions},
		{"text pattern", "text", validator.Bag{"regexValidator": "[a-z"}, validator.ErrInvalidPattern},
		{"number pattern", "number", validator.Bag{"regexValidator": "(\\d"}, validator.ErrInvalidPattern},
		{"password class pattern", "password", validator.Bag{"digitRegex": "[0-9"}, validator.ErrInvalidPattern},
		{"email host pattern", "email", validator.Bag{"hostBlacklist": []string{"/(spam/"}}, validator.ErrInvalidPattern},
		{"email literal host", "email", validator.Bag{"hostBlacklist": []string{"spam.fr"}}, nil},
		{"date format", "date", validator.Bag{"format": "YYYY/MM"}, validator.ErrMalformedFormat},
		{"date delimiter", "date", validator.Bag{"format": "YYYY.MM.DD", "delimiters": []string{"/"}}, validator.ErrMalformedFormat},
		{"phone format", "tel", validator.Bag{"format": "RFC3966"}, validator.ErrInvalidOptions},
		{"choices", "select", validator.Bag{"optionsChoices": []string{"a", "b"}}, nil},
		{"unknown kind", "color", nil, validator.ErrInvalidOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.CheckOptions(tt.kind, tt.opts, merge.Replace)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDefaultTranslator(t *testing.T) {
	tr := validator.DefaultTranslator()
	assert.ElementsMatch(t, []string{"en", "fr"}, tr.SupportedLanguages())
	for _, key := range []string{"validation.required", "validation.choice.invalid", "validation.date.format"} {
		for _, lang := range []string{"en", "fr"} {
			assert.True(t, tr.HasTranslation(lang, key), fmt.Sprintf("%s/%s", lang, key))
		}
	}
}
