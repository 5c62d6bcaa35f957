package schema

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

type clearer interface {
	Clear(field string)
}

// Apply validates every field against the submitted values.
// Each field's previous state is cleared first, so the sink ends up holding
// only the outcome of this run.
func (s *Schema) Apply(v *validator.Validator, values map[string][]string) {
	for _, f := range s.Fields {
		s.apply(v, f, values[f.Name])
	}
}

// ApplyField validates a single field, as done for live validation.
func (s *Schema) ApplyField(v *validator.Validator, name string, values []string) error {
	f, ok := s.Field(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	s.apply(v, f, values)
	return nil
}

func (s *Schema) apply(v *validator.Validator, f Field, values []string) {
	if c, ok := v.Sink().(clearer); ok {
		c.Clear(f.Name)
	}

	opts := s.options(f)
	value := ""
	if len(values) > 0 {
		value = values[0]
	}

	switch f.Kind {
	case KindText:
		v.Text(f.Name, value, opts)
	case KindTextarea:
		v.Textarea(f.Name, value, opts)
	case KindEmail:
		v.Email(f.Name, value, opts)
	case KindFQDN:
		v.FQDN(f.Name, value, opts)
	case KindIP:
		v.IP(f.Name, value, opts)
	case KindTel:
		v.Tel(f.Name, value, opts)
	case KindDate:
		v.Date(f.Name, value, opts)
	case KindNumber:
		v.Number(f.Name, value, opts)
	case KindSelect:
		if len(values) > 1 {
			v.Select(f.Name, values, opts)
		} else {
			v.Select(f.Name, value, opts)
		}
	case KindCheckbox:
		v.Checkbox(f.Name, values, opts)
	case KindRadio:
		v.Radio(f.Name, value, opts)
	case KindPassword:
		v.Password(f.Name, value, opts)
	}
}
