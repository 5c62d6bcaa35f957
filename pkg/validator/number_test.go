package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestNumber(t *testing.T) {
	stepped := validator.Bag{"min": 0, "max": 10, "step": 2}

	tests := []struct {
		name  string
		value any
		opts  validator.Bag
		msg   string // empty means valid
	}{
		{"on step", 6, stepped, ""},
		{"off step", 7, stepped, "The number must be a multiple of 2 starting from 0."},
		{"above range", 12, stepped, "The number must be between 0 and 10."},
		{"below range", -2, stepped, "The number must be between 0 and 10."},
		{"inclusive bounds", 10, stepped, ""},
		{"step from min", 5, validator.Bag{"min": 1, "step": 2}, ""},
		{"decimal step", 0.3, validator.Bag{"min": 0, "step": 0.1}, ""},
		{"numeric string", "6", stepped, ""},
		{"comma decimal", "6,5", validator.Bag{"step": 0.5}, ""},
		{"float32", float32(2.5), nil, ""},
		{"only min", -1, validator.Bag{"min": 0}, "The number must be greater than or equal to 0."},
		{"only max", 101, validator.Bag{"max": 100}, "The number must be less than or equal to 100."},
		{"not a number", "abc", nil, "Please enter a number."},
		{"nan", "NaN", nil, "Please enter a number."},
		{"empty", "", nil, mandatory},
		{"nil optional", nil, validator.Bag{"requiredInput": false}, ""},
		{"pattern", "6.0", validator.Bag{"regexValidator": `^\d+$`}, "The number has an invalid format."},
		{"pattern match", "42", validator.Bag{"regexValidator": `^\d+$`}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, store := newValidator(t)
			v.Number("qty", tt.value, tt.opts)
			if tt.msg == "" {
				assert.True(t, store.IsValid("qty"), store.Messages("qty"))
				return
			}
			assert.False(t, store.IsValid("qty"))
			assert.Equal(t, []string{tt.msg}, store.Messages("qty"))
		})
	}
}

func TestNumber_French(t *testing.T) {
	v, store := newValidator(t, validator.WithLanguage("fr"))
	v.Number("qty", 7, validator.Bag{"min": 0, "max": 10, "step": 2})
	assert.Equal(t, []string{"Le nombre doit être un multiple de 2 à partir de 0."}, store.Messages("qty"))
}
