// Package validator checks form field values and records failures into an
// errstore.Sink.
//
// A Validator is constructed per form with the Sink it writes to. Each check
// method takes the field name, the submitted value and an option Bag, and
// returns the Validator so checks can be chained:
//
//	store := errstore.New()
//	v := validator.New(store, validator.WithLanguage("fr"))
//	v.Text("name", name, nil).
//		Email("email", email, validator.Bag{"allowDisplayName": true}).
//		Number("age", age, validator.Bag{"min": 18, "max": 120})
//
//	if !store.IsFormValid() {
//		// render store.Messages(field) next to each input
//	}
//
// # Options
//
// Every kind has a typed options struct (TextOptions, EmailOptions, ...) and a
// default bag (DefaultTextOptions, ...). The user bag is deep-merged over the
// defaults with pkg/merge and decoded into the struct; unknown keys and
// undecodable values panic with ErrInvalidOptions. List options are combined
// according to WithArrayStrategy (replace by default).
//
// # Failures
//
// End-user input that breaks a rule never produces an error: the field is
// marked invalid in the Sink with a localized message. Most kinds stop at the
// first failing rule; length checks and password character classes report
// every violation. Checks do not clear previous state for the field, callers
// that re-validate a field clear it first.
//
// Misconfiguration panics with a wrapped sentinel: ErrMalformedFormat for a
// date format, ErrInvalidPattern for a custom regular expression,
// ErrInvalidOptions for an option bag and ErrZipLength from internal pairing.
// CheckOptions returns the same errors for a kind and bag without running a
// check, for configuration loaded ahead of time.
//
// # Messages
//
// Messages are rendered with an i18n.Translator. The embedded catalogs cover
// English and French; WithTranslator plugs in custom catalogs using the same
// validation.* keys.
//
// Custom rules can be run through Check with the same Rule type the
// built-in kinds use.
package validator
