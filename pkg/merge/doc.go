// Package merge deep-merges option bags over their defaults and decodes the
// result into typed option structs.
//
// A bag is a plain map[string]any, the shape produced by YAML, TOML and JSON
// decoders. DeepMerge walks user and default bags key by key:
//
//   - a missing or nil user value is filled from the defaults
//   - two nested bags are merged recursively
//   - two slices are combined by the configured Strategy
//   - two Map values (map[any]any) or two Set values are unioned, user entries win
//   - anything else (scalars, time.Time, mismatched kinds) takes the user value
//
// Inputs are never mutated; every level of the result is a fresh copy.
//
// # Strategies
//
//   - Replace      user slice wins (zero Strategy behaves as Replace)
//   - Concat       defaults followed by user entries
//   - MergeUnique  set union preserving first-seen order
//   - Custom(fn)   caller-provided combination
//
// Strategies can be parsed from their textual token ("replace", "concat",
// "mergeUnique") with ParseStrategy, which fails with ErrUnknownStrategy for
// anything else.
//
// # Decoding
//
//	opts, err := merge.Resolve[TextOptions](userBag, defaults, merge.Replace)
//
// Resolve merges and then decodes with mapstructure using weak typing, so "5"
// decodes into an int field and "2024-01-31" into a time.Time.
package merge
