package schema

import (
	"github.com/dmitrymomot/formkit/pkg/merge"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Kind names the validator applied to a field.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindEmail    Kind = "email"
	KindFQDN     Kind = "fqdn"
	KindIP       Kind = "ip"
	KindTel      Kind = "tel"
	KindDate     Kind = "date"
	KindNumber   Kind = "number"
	KindSelect   Kind = "select"
	KindCheckbox Kind = "checkbox"
	KindRadio    Kind = "radio"
	KindPassword Kind = "password"
)

// Field declares one form input.
type Field struct {
	Name    string        `json:"name" yaml:"name" toml:"name" validate:"required"`
	Kind    Kind          `json:"kind" yaml:"kind" toml:"kind" validate:"required,oneof=text textarea email fqdn ip tel date number select checkbox radio password"`
	Label   string        `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Options validator.Bag `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

// Schema is a declarative form: its fields in display order, plus the
// language and list merge strategy used when validating it.
type Schema struct {
	Language      string  `json:"language,omitempty" yaml:"language,omitempty" toml:"language,omitempty" validate:"omitempty,min=2,max=8"`
	ArrayStrategy string  `json:"arrayStrategy,omitempty" yaml:"arrayStrategy,omitempty" toml:"arrayStrategy,omitempty" validate:"omitempty,oneof=replace concat mergeUnique"`
	Fields        []Field `json:"fields" yaml:"fields" toml:"fields" validate:"required,min=1,unique=Name,dive"`

	defaults map[Kind]validator.Bag
}

// Field looks a field up by name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Names returns the field names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// SetDefaults registers options applied to every field of a kind, under the
// field's own options. Used to inject deployment settings such as the phone region.
func (s *Schema) SetDefaults(kind Kind, opts validator.Bag) {
	if s.defaults == nil {
		s.defaults = make(map[Kind]validator.Bag)
	}
	s.defaults[kind] = opts
}

// Strategy returns the parsed list merge strategy, Replace when unset.
func (s *Schema) Strategy() merge.Strategy {
	if s.ArrayStrategy == "" {
		return merge.Replace
	}
	st, err := merge.ParseStrategy(s.ArrayStrategy)
	if err != nil {
		return merge.Replace
	}
	return st
}

// ValidatorOptions returns the validator options the schema sets explicitly,
// so they can be layered over deployment defaults.
func (s *Schema) ValidatorOptions() []validator.Option {
	var opts []validator.Option
	if s.ArrayStrategy != "" {
		opts = append(opts, validator.WithArrayStrategy(s.Strategy()))
	}
	if s.Language != "" {
		opts = append(opts, validator.WithLanguage(s.Language))
	}
	return opts
}

func (s *Schema) options(f Field) validator.Bag {
	defaults, ok := s.defaults[f.Kind]
	if !ok {
		return f.Options
	}
	merged, err := merge.DeepMerge(f.Options, defaults, s.Strategy())
	if err != nil {
		return f.Options
	}
	return merged
}
