package merge

import (
	"maps"
	"reflect"
	"time"
)

// Bag is a plain option record.
type Bag = map[string]any

// Map is an arbitrary-keyed container merged by union.
type Map = map[any]any

// Set is an unordered collection merged by union.
type Set map[any]struct{}

// NewSet builds a Set from items.
func NewSet(items ...any) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Has reports whether item is in the set.
func (s Set) Has(item any) bool {
	_, ok := s[item]
	return ok
}

// DeepMerge merges user over defaults. Neither input is modified.
func DeepMerge(user, defaults Bag, strategy Strategy) (Bag, error) {
	if err := strategy.validate(); err != nil {
		return nil, err
	}
	return mergeBags(user, defaults, strategy), nil
}

// DeepMergeAll folds bags left to right: each bag is merged over the result of the previous ones.
func DeepMergeAll(strategy Strategy, bags ...Bag) (Bag, error) {
	if err := strategy.validate(); err != nil {
		return nil, err
	}
	result := Bag{}
	for _, bag := range bags {
		result = mergeBags(bag, result, strategy)
	}
	return result, nil
}

func mergeBags(user, defaults Bag, strategy Strategy) Bag {
	out := make(Bag, max(len(user), len(defaults)))
	for key, def := range defaults {
		out[key] = cloneValue(def)
	}
	for key, val := range user {
		if val == nil {
			continue
		}
		def, ok := defaults[key]
		if !ok || def == nil {
			out[key] = cloneValue(val)
			continue
		}
		out[key] = mergeValue(val, def, strategy)
	}
	return out
}

func mergeValue(user, def any, strategy Strategy) any {
	switch u := user.(type) {
	case Bag:
		if d, ok := def.(Bag); ok {
			return mergeBags(u, d, strategy)
		}
	case Map:
		if d, ok := def.(Map); ok {
			out := maps.Clone(d)
			maps.Copy(out, u)
			return out
		}
	case Set:
		if d, ok := def.(Set); ok {
			out := maps.Clone(d)
			maps.Copy(out, u)
			return out
		}
	case time.Time:
		return u
	}

	if us, ok := asSlice(user); ok {
		if ds, ok := asSlice(def); ok {
			return strategy.combine(us, ds)
		}
	}

	return cloneValue(user)
}

// asSlice converts any slice except []byte into []any.
func asSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func cloneSlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Bag:
		out := make(Bag, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case []any:
		return cloneSlice(t)
	case Map:
		return maps.Clone(t)
	case Set:
		return maps.Clone(t)
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
