package validator

import (
	"context"
	"math"
	"unicode"
	"unicode/utf8"
)

// Analysis is the outcome of a password strength estimate.
type Analysis struct {
	Length int
	// Classes counts the character families present: lower, upper, digit, other.
	Classes int
	// Entropy is the estimated number of bits.
	Entropy float64
}

// StrengthEvent is published when a password field is analyzed.
type StrengthEvent struct {
	Field    string
	Analysis Analysis
	// Score ranges from 0 (very weak) to 4 (very strong).
	Score int
}

// StrengthAnalyzer estimates a password's strength and scores it 0..4.
type StrengthAnalyzer func(password string) (Analysis, int)

// Password checks character classes, accumulating one message per missing
// class, then runs the text checks for required, pattern and length.
// With analyzeStrength set, a StrengthEvent is published; it never affects validity.
func (v *Validator) Password(field, value string, opts Bag) *Validator {
	o := resolve[PasswordOptions](v, "password", opts, DefaultPasswordOptions())

	if !isBlank(value) {
		v.every(field,
			classRule(field, value, o.RequireUppercase, o.UppercaseRegex, "validation.password.uppercase"),
			classRule(field, value, o.RequireLowercase, o.LowercaseRegex, "validation.password.lowercase"),
			classRule(field, value, o.RequireDigit, o.DigitRegex, "validation.password.digit"),
			classRule(field, value, o.RequireSymbol, o.SymbolRegex, "validation.password.symbol"),
			classRule(field, value, o.RequirePunctuation, o.PunctuationRegex, "validation.password.punctuation"),
			classRule(field, value, o.RequireSpecialChar, o.SpecialCharRegex, "validation.password.special"),
		)
	}
	v.text(field, value, o.TextOptions, keyTextPattern)

	if o.AnalyzeStrength {
		analysis, score := v.analyzer(value)
		v.publish(context.Background(), StrengthEvent{Field: field, Analysis: analysis, Score: score})
	}
	return v
}

func classRule(field, value string, enabled bool, pattern, key string) Rule {
	return Rule{
		Check: func() bool { return !enabled || pattern == "" || compile(pattern).MatchString(value) },
		Error: fail(field, key, "missing character class", nil),
	}
}

// AnalyzeStrength is the default analyzer. Entropy is length × log2 of the
// character pool, where the pool is the number of distinct runes capped by
// the theoretical size of the classes in use.
func AnalyzeStrength(password string) (Analysis, int) {
	a := Analysis{Length: utf8.RuneCountInString(password)}
	if a.Length == 0 {
		return a, 0
	}

	unique := make(map[rune]struct{})
	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range password {
		unique[r] = struct{}{}
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasOther = true
		}
	}

	pool := 0
	for _, c := range []struct {
		present bool
		size    int
	}{{hasLower, 26}, {hasUpper, 26}, {hasDigit, 10}, {hasOther, 32}} {
		if c.present {
			a.Classes++
			pool += c.size
		}
	}

	effective := math.Min(float64(len(unique)), float64(pool))
	if effective > 1 {
		a.Entropy = float64(a.Length) * math.Log2(effective)
	}
	return a, scoreEntropy(a.Entropy)
}

func scoreEntropy(bits float64) int {
	switch {
	case bits < 28:
		return 0
	case bits < 36:
		return 1
	case bits < 60:
		return 2
	case bits < 128:
		return 3
	default:
		return 4
	}
}
