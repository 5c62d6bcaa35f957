package formkit

import (
	"github.com/dmitrymomot/formkit/pkg/errstore"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Form owns the error state of one form and the validator writing into it.
// The chainable checks (Text, Email, Date, ...) are promoted from the embedded
// Validator.
type Form struct {
	*validator.Validator
	store *errstore.Store
}

// New returns a Form with an empty store.
func New(opts ...validator.Option) *Form {
	store := errstore.New()
	return &Form{
		Validator: validator.New(store, opts...),
		store:     store,
	}
}

// Store exposes the form's field state, e.g. to clear a field before re-validating it.
func (f *Form) Store() *errstore.Store {
	return f.store
}

// Valid reports whether no field has been marked invalid.
func (f *Form) Valid() bool {
	return f.store.IsFormValid()
}

// Errors returns the messages of every invalid field.
func (f *Form) Errors() ValidationError {
	out := NewValidationError()
	for field, messages := range f.store.Snapshot() {
		for _, m := range messages {
			out.Add(field, m)
		}
	}
	return out
}

// Err returns nil for a valid form and a ValidationError otherwise.
func (f *Form) Err() error {
	if f.Valid() {
		return nil
	}
	return f.Errors()
}

// Reset forgets every field's state.
func (f *Form) Reset() {
	f.store.Reset()
}
