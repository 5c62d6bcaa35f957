// Package errstore keeps per-field validity and error messages for a single form.
//
// A Store maps field names to a validity flag and an ordered, de-duplicated list
// of human-readable messages. A field that was never recorded is valid and has
// no messages, so lookups never fail.
//
// Validators do not depend on the concrete Store. They write through the Sink
// interface, which lets callers plug in their own accumulator (for example one
// that forwards failures to a UI layer).
//
// # Usage
//
//	store := errstore.New()
//	store.Fail("email", "email address is not valid")
//
//	store.IsValid("email")   // false
//	store.Messages("email")  // ["email address is not valid"]
//	store.IsFormValid()      // false
//
//	store.RemoveMessage("email", "email address is not valid")
//	store.IsValid("email")   // true
//
// Create one Store per form. All methods are safe for concurrent use; concurrent
// writes to the same field are last-write-wins.
package errstore
