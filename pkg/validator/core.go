package validator

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/formkit/pkg/cache"
)

// ValidationError describes a single failed check.
// TranslationKey is rendered through the translator with TranslationValues as
// named parameters; Message is used verbatim when the key is empty or missing.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// ValidationErrors is a list of failures that satisfies error.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Apply evaluates every rule and collects the failures without recording them anywhere.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// args flattens translation values into the key/value pairs the translator expects.
func (e ValidationError) args() []string {
	if len(e.TranslationValues) == 0 {
		return nil
	}
	keys := make([]string, 0, len(e.TranslationValues))
	for k := range e.TranslationValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		out = append(out, k, cast.ToString(e.TranslationValues[k]))
	}
	return out
}

// zip pairs elements positionally. Mismatched lengths are a programming error.
func zip[T any](a, b []T) [][2]T {
	if len(a) != len(b) {
		panic(fmt.Errorf("%w: %d != %d", ErrZipLength, len(a), len(b)))
	}
	out := make([][2]T, len(a))
	for i := range a {
		out[i] = [2]T{a[i], b[i]}
	}
	return out
}

var patterns = cache.New[string, *regexp.Regexp](256)

// compile caches custom patterns; an invalid pattern panics with ErrInvalidPattern.
func compile(pattern string) *regexp.Regexp {
	re, err := patterns.GetOrCreate(pattern, func() (*regexp.Regexp, error) {
		return regexp.Compile(pattern)
	})
	if err != nil {
		panic(fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err))
	}
	return re
}
