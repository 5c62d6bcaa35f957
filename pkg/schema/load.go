package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Format is a schema file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

var structure = gvalidator.New(gvalidator.WithRequiredStructEnabled())

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads and parses a schema file, choosing the decoder by extension.
func Load(path string) (*Schema, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadSchema, err)
	}
	return Parse(data, format)
}

// Parse decodes a schema and checks its structure and every field's options.
// Unknown keys are rejected in every format.
func Parse(data []byte, format Format) (*Schema, error) {
	var s Schema
	if err := decode(data, format, &s); err != nil {
		return nil, err
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	if err := checkOptions(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func decode(data []byte, format Format, s *Schema) error {
	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(s)
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(s)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return errors.Join(ErrInvalidSchema, err)
	}
	return nil
}

func validate(s *Schema) error {
	err := structure.Struct(s)
	if err == nil {
		return nil
	}

	var verrs gvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Join(ErrInvalidSchema, err)
	}

	errs := []error{ErrInvalidSchema}
	for _, fe := range verrs {
		errs = append(errs, fmt.Errorf("%s: value %v does not satisfy %q", fe.Namespace(), fe.Value(), fe.Tag()))
	}
	return errors.Join(errs...)
}

// checkOptions resolves each field's options for its kind so that bad keys,
// patterns and formats fail here rather than when a form is validated.
func checkOptions(s *Schema) error {
	var errs []error
	strategy := s.Strategy()
	for _, f := range s.Fields {
		if err := validator.CheckOptions(string(f.Kind), f.Options, strategy); err != nil {
			errs = append(errs, fmt.Errorf("field %q: %w", f.Name, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidSchema}, errs...)...)
}
