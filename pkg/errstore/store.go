package errstore

import (
	"slices"
	"sync"
)

// Sink is the capability validators need to report and query field state.
type Sink interface {
	// Fail marks the field invalid and records the messages.
	Fail(field string, messages ...string)
	// IsValid reports whether the field has not been marked invalid.
	IsValid(field string) bool
	// Messages returns the messages recorded for the field.
	Messages(field string) []string
}

type state struct {
	valid    *bool
	messages []string
}

// Store is an in-memory Sink keyed by field name.
type Store struct {
	mu     sync.RWMutex
	fields map[string]*state
	order  []string
}

var _ Sink = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{fields: make(map[string]*state)}
}

func (s *Store) entry(field string) *state {
	st, ok := s.fields[field]
	if !ok {
		st = &state{}
		s.fields[field] = st
		s.order = append(s.order, field)
	}
	return st
}

// SetStatus sets the validity flag of a field.
func (s *Store) SetStatus(field string, valid bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(field).valid = &valid
}

// AddMessage appends messages to a field. A message already present is not added again.
func (s *Store) AddMessage(field string, messages ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addMessages(s.entry(field), messages)
}

func (s *Store) addMessages(st *state, messages []string) {
	for _, msg := range messages {
		if !slices.Contains(st.messages, msg) {
			st.messages = append(st.messages, msg)
		}
	}
}

// Fail marks the field invalid and records the messages in one step.
func (s *Store) Fail(field string, messages ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.entry(field)
	invalid := false
	st.valid = &invalid
	s.addMessages(st, messages)
}

// Pass marks the field valid and drops its messages.
func (s *Store) Pass(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	valid := true
	st := s.entry(field)
	st.valid = &valid
	st.messages = nil
}

// Messages returns a copy of the field's messages, or an empty slice.
func (s *Store) Messages(field string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.fields[field]
	if !ok || len(st.messages) == 0 {
		return []string{}
	}
	return slices.Clone(st.messages)
}

// IsValid reports true unless the field was explicitly marked invalid.
func (s *Store) IsValid(field string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isValid(field)
}

func (s *Store) isValid(field string) bool {
	st, ok := s.fields[field]
	if !ok || st.valid == nil {
		return true
	}
	return *st.valid
}

// Clear forgets everything recorded for the field.
func (s *Store) Clear(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.fields[field]; !ok {
		return
	}
	delete(s.fields, field)
	s.order = slices.DeleteFunc(s.order, func(f string) bool { return f == field })
}

// Reset forgets every field.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.fields)
	s.order = nil
}

// RemoveMessage deletes a single message from the field.
// When the last message goes away the field is valid again.
func (s *Store) RemoveMessage(field, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.fields[field]
	if !ok {
		return
	}
	st.messages = slices.DeleteFunc(st.messages, func(m string) bool { return m == message })
	if len(st.messages) == 0 {
		st.messages = nil
		valid := true
		st.valid = &valid
	}
}

// IsFormValid reports whether no field is explicitly invalid.
func (s *Store) IsFormValid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for field := range s.fields {
		if !s.isValid(field) {
			return false
		}
	}
	return true
}

// Fields returns every tracked field in first-recorded order.
func (s *Store) Fields() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

// InvalidFields returns the fields explicitly marked invalid, in first-recorded order.
func (s *Store) InvalidFields() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for _, field := range s.order {
		if !s.isValid(field) {
			out = append(out, field)
		}
	}
	return out
}

// Snapshot returns the messages of every invalid field.
func (s *Store) Snapshot() map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]string)
	for field, st := range s.fields {
		if !s.isValid(field) {
			out[field] = slices.Clone(st.messages)
		}
	}
	return out
}
