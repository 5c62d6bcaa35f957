// Package schema describes a form declaratively and validates submissions
// against it.
//
// A schema lists fields with their kind and validator options:
//
//	language: fr
//	arrayStrategy: concat
//	fields:
//	  - name: email
//	    kind: email
//	    options: { allowDisplayName: true }
//	  - name: birthday
//	    kind: date
//	    options: { format: DD/MM/YYYY, allowFuture: false }
//
// YAML, TOML and JSON are accepted; Load picks the decoder from the file
// extension. Structural problems (missing names, unknown kinds, duplicate
// fields, unknown keys) are reported as ErrInvalidSchema, and so are field
// options the field's kind rejects: misspelled or mistyped keys, patterns
// that do not compile and malformed date or phone formats. Options added
// later with SetDefaults are checked when a field is validated.
//
//	s, err := schema.Load("form.yaml")
//	store := errstore.New()
//	s.Apply(validator.New(store, s.ValidatorOptions()...), r.PostForm)
package schema
