package validator

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// stepEpsilon absorbs floating-point error in the step check.
const stepEpsilon = 1e-9

// Number checks a numeric value: parse, inclusive bounds, step from Min,
// then the optional pattern against the original string. The first failure wins.
// Value may be any numeric type or a numeric string.
func (v *Validator) Number(field string, value any, opts Bag) *Validator {
	o := resolve[NumberOptions](v, "number", opts, DefaultNumberOptions())

	raw := strings.TrimSpace(cast.ToString(value))
	if value == nil || raw == "" {
		if o.RequiredInput {
			v.record(field, required(field))
		}
		return v
	}

	n, err := cast.ToFloat64E(normalizeDecimal(value))
	if err != nil || math.IsNaN(n) {
		v.record(field, fail(field, "validation.number.nan", "not a number", nil))
		return v
	}

	base := 0.0
	if o.Min != nil {
		base = *o.Min
	}

	v.first(field,
		Rule{
			Check: func() bool { return inRange(n, o.Min, o.Max) },
			Error: rangeError(field, o.Min, o.Max),
		},
		Rule{
			Check: func() bool { return isStepMultiple(n, base, o.Step) },
			Error: fail(field, "validation.number.step", "invalid step", map[string]any{
				"step": formatFloat(o.Step),
				"base": formatFloat(base),
			}),
		},
		Rule{
			Check: func() bool { return o.RegexValidator == "" || compile(o.RegexValidator).MatchString(raw) },
			Error: fail(field, "validation.number.pattern", "invalid number format", nil),
		},
	)
	return v
}

// normalizeDecimal accepts a comma decimal separator in strings.
func normalizeDecimal(value any) any {
	if s, ok := value.(string); ok {
		return strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	}
	return value
}

func inRange(n float64, minV, maxV *float64) bool {
	if minV != nil && n < *minV {
		return false
	}
	return maxV == nil || n <= *maxV
}

func isStepMultiple(n, base, step float64) bool {
	if step <= 0 {
		return true
	}
	rem := math.Abs(math.Mod(n-base, step))
	return rem < stepEpsilon || math.Abs(rem-step) < stepEpsilon
}

func rangeError(field string, minV, maxV *float64) ValidationError {
	switch {
	case minV != nil && maxV != nil:
		return fail(field, "validation.number.range", "out of range", map[string]any{
			"min": formatFloat(*minV),
			"max": formatFloat(*maxV),
		})
	case minV != nil:
		return fail(field, "validation.number.min", "too small", map[string]any{"min": formatFloat(*minV)})
	default:
		var limit float64
		if maxV != nil {
			limit = *maxV
		}
		return fail(field, "validation.number.max", "too large", map[string]any{"max": formatFloat(limit)})
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
