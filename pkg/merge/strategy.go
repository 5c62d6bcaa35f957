package merge

import (
	"fmt"
	"reflect"
	"slices"
)

// ArrayFunc combines a user slice with a default slice.
type ArrayFunc func(user, defaults []any) []any

// Strategy decides how two slices found under the same key are combined.
type Strategy struct {
	name string
	fn   ArrayFunc
}

var (
	Replace     = Strategy{name: "replace"}
	Concat      = Strategy{name: "concat"}
	MergeUnique = Strategy{name: "mergeUnique"}
)

// Custom wraps fn into a Strategy.
func Custom(fn ArrayFunc) Strategy {
	return Strategy{name: "custom", fn: fn}
}

// ParseStrategy maps a textual token to a built-in strategy.
func ParseStrategy(token string) (Strategy, error) {
	switch token {
	case "", Replace.name:
		return Replace, nil
	case Concat.name:
		return Concat, nil
	case MergeUnique.name:
		return MergeUnique, nil
	default:
		return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, token)
	}
}

// String returns the strategy token.
func (s Strategy) String() string {
	if s.name == "" {
		return Replace.name
	}
	return s.name
}

// UnmarshalText lets strategies be read from YAML, TOML and JSON documents.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText returns the strategy token. Custom strategies cannot be round-tripped.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s Strategy) validate() error {
	switch s.name {
	case "", Replace.name, Concat.name, MergeUnique.name:
		return nil
	case "custom":
		if s.fn == nil {
			return fmt.Errorf("%w: custom strategy without function", ErrUnknownStrategy)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, s.name)
	}
}

func (s Strategy) combine(user, defaults []any) []any {
	switch s.name {
	case Concat.name:
		out := make([]any, 0, len(defaults)+len(user))
		out = append(out, cloneSlice(defaults)...)
		return append(out, cloneSlice(user)...)
	case MergeUnique.name:
		return unique(append(cloneSlice(defaults), cloneSlice(user)...))
	case "custom":
		return s.fn(cloneSlice(user), cloneSlice(defaults))
	default:
		return cloneSlice(user)
	}
}

// unique keeps the first occurrence of each element. Non-comparable elements
// are compared with reflect.DeepEqual.
func unique(items []any) []any {
	out := make([]any, 0, len(items))
	seen := make(map[any]bool)
	for _, item := range items {
		if item != nil && reflect.TypeOf(item).Comparable() {
			if seen[item] {
				continue
			}
			seen[item] = true
			out = append(out, item)
			continue
		}
		if slices.ContainsFunc(out, func(o any) bool { return reflect.DeepEqual(o, item) }) {
			continue
		}
		out = append(out, item)
	}
	return out
}
