// Package sanitizer cleans raw form input before it is validated.
//
// The helpers are stateless and safe for concurrent use:
//
//   - StripTags removes HTML markup, comments and PHP blocks, the way
//     server-side strip_tags implementations do, leaving entities untouched
//   - EscapeHTML / UnescapeHTML convert the five HTML special characters
//   - NormalizeWhitespace collapses runs of whitespace
//   - Deduplicate / FilterEmpty tidy multi-value inputs such as checkbox groups
//
// Typical use inside a validation pipeline:
//
//	clean := sanitizer.StripTags(value)
//	if clean != value {
//	    // markup was present
//	}
package sanitizer
