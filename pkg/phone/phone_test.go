package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/phone"
)

func TestLibPhoneNumber_Parse(t *testing.T) {
	parser := phone.LibPhoneNumber{}

	t.Run("national number with default region", func(t *testing.T) {
		num, err := parser.Parse("06 12 34 56 78", "fr")
		require.NoError(t, err)
		assert.True(t, num.Valid)
		assert.Equal(t, "FR", num.Region)
		assert.Equal(t, "+33612345678", num.E164)
	})

	t.Run("international number ignores default region", func(t *testing.T) {
		num, err := parser.Parse("+33 1 42 68 53 00", "US")
		require.NoError(t, err)
		assert.True(t, num.Valid)
		assert.Equal(t, "+33142685300", num.E164)

		formatted, err := num.Formatted(phone.FormatInternational)
		require.NoError(t, err)
		assert.Equal(t, "+33 1 42 68 53 00", formatted)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := parser.Parse("call me maybe", "FR")
		assert.ErrorIs(t, err, phone.ErrUnparsable)
	})

	t.Run("parsable but not assignable", func(t *testing.T) {
		num, err := parser.Parse("+33 0000", "FR")
		if err == nil {
			assert.False(t, num.Valid)
		}
	})
}

func TestNumber_Formatted(t *testing.T) {
	num := phone.Number{E164: "+1", International: "+1 x", National: "x"}

	got, err := num.Formatted("")
	require.NoError(t, err)
	assert.Equal(t, "+1", got)

	got, err = num.Formatted("national")
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	_, err = num.Formatted("RFC3966")
	assert.ErrorIs(t, err, phone.ErrUnknownFormat)
}
