package validator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/phone"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

type stubParser struct {
	num phone.Number
	err error
}

func (s stubParser) Parse(raw, _ string) (phone.Number, error) {
	if s.err != nil {
		return phone.Number{}, s.err
	}
	n := s.num
	n.Raw = raw
	return n, nil
}

func TestTel(t *testing.T) {
	t.Run("french mobile", func(t *testing.T) {
		v, store := newValidator(t)
		v.Tel("phone", "06 12 34 56 78", nil)
		assert.True(t, store.IsValid("phone"), store.Messages("phone"))

		got, ok := v.Normalized("phone")
		assert.True(t, ok)
		assert.Equal(t, "+33612345678", got)
	})

	t.Run("international format", func(t *testing.T) {
		v, _ := newValidator(t)
		v.Tel("phone", "+33 6 12 34 56 78", validator.Bag{"format": "INTERNATIONAL"})
		got, _ := v.Normalized("phone")
		assert.Equal(t, "+33 6 12 34 56 78", got)
	})

	t.Run("national format", func(t *testing.T) {
		v, _ := newValidator(t)
		v.Tel("phone", "+33612345678", validator.Bag{"format": "national"})
		got, _ := v.Normalized("phone")
		assert.Equal(t, "06 12 34 56 78", got)
	})

	t.Run("not a number drops previous normalized value", func(t *testing.T) {
		v, store := newValidator(t)
		v.Tel("phone", "06 12 34 56 78", nil)
		_, ok := v.Normalized("phone")
		assert.True(t, ok)

		store.Clear("phone")
		v.Tel("phone", "hello", nil)
		assert.False(t, store.IsValid("phone"))
		assert.Contains(t, store.Messages("phone")[0], "Invalid phone number:")

		_, ok = v.Normalized("phone")
		assert.False(t, ok)
	})

	t.Run("required", func(t *testing.T) {
		v, store := newValidator(t)
		v.Tel("phone", " ", nil)
		assert.Equal(t, []string{mandatory}, store.Messages("phone"))
	})

	t.Run("optional", func(t *testing.T) {
		v, store := newValidator(t)
		v.Tel("phone", "", validator.Bag{"requiredInput": false})
		assert.True(t, store.IsValid("phone"))
	})
}

func TestTel_Parser(t *testing.T) {
	t.Run("parse failure reason", func(t *testing.T) {
		parser := stubParser{err: fmt.Errorf("%w: %w", phone.ErrUnparsable, fmt.Errorf("too short"))}
		v, store := newValidator(t, validator.WithPhoneParser(parser))
		v.Tel("phone", "12", nil)
		assert.Equal(t, []string{"Invalid phone number: too short."}, store.Messages("phone"))
	})

	t.Run("parsed but invalid", func(t *testing.T) {
		v, store := newValidator(t, validator.WithPhoneParser(stubParser{num: phone.Number{Valid: false}}))
		v.Tel("phone", "0000", nil)
		assert.Equal(t, []string{"This phone number is not valid."}, store.Messages("phone"))
	})
}
