// Package cache provides a generic, size-bounded LRU map.
//
// formkit uses it for compiled option patterns, which come from schema files
// and are otherwise unbounded, and for per-client rate limit buckets.
//
//	patterns := cache.New[string, *regexp.Regexp](256)
//	re, err := patterns.GetOrCreate(expr, func() (*regexp.Regexp, error) {
//		return regexp.Compile(expr)
//	})
package cache
