package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/errstore"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

var errFormInvalid = errors.New("form is invalid")

type checkFlags struct {
	schema string
	set    []string
	json   bool
	lang   string
}

func newCheckCmd(a *app) *cobra.Command {
	f := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate one submission",
		Long: `Validate a submission given as field=value pairs.

Repeat --set for multi-valued fields such as checkboxes.

Exit codes:
  0 - the submission is valid
  1 - the submission is invalid, or the schema could not be used`,
		Example: `  formkit check --schema signup.yaml --set email=jean@exemple.fr --set fruits=apple --set fruits=cherry
  formkit check --schema signup.yaml --set email=nope --json --lang fr`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, a, f)
		},
	}

	cmd.Flags().StringVarP(&f.schema, "schema", "s", "", "schema file (.yaml, .toml or .json)")
	cmd.Flags().StringArrayVar(&f.set, "set", nil, "submitted value as field=value, repeatable")
	cmd.Flags().BoolVar(&f.json, "json", false, "output the result as JSON")
	cmd.Flags().StringVar(&f.lang, "lang", "", "message language")
	return cmd
}

func runCheck(cmd *cobra.Command, a *app, f *checkFlags) error {
	values, err := parseValues(f.set)
	if err != nil {
		return err
	}

	s, err := a.loadSchema(f.schema)
	if err != nil {
		return err
	}

	opts := append(a.validatorOptions(), s.ValidatorOptions()...)
	if f.lang != "" {
		opts = append(opts, validator.WithLanguage(f.lang))
	}

	store := errstore.New()
	v := validator.New(store, opts...)
	if err := guard(func() { s.Apply(v, values) }); err != nil {
		return err
	}

	res := newCheckResult(s, store, v)
	a.log.Debug("submission checked", logger.Valid(res.Valid), logger.Fields(store.InvalidFields()))

	format := FormatText
	if f.json {
		format = FormatJSON
	}
	if err := NewReporter(cmd.OutOrStdout(), format).Report(res); err != nil {
		return err
	}
	if !res.Valid {
		return errFormInvalid
	}
	return nil
}

// parseValues turns repeated field=value pairs into submitted values.
func parseValues(pairs []string) (map[string][]string, error) {
	values := make(map[string][]string, len(pairs))
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			return nil, errors.Newf("invalid --set %q: expected field=value", pair)
		}
		values[field] = append(values[field], value)
	}
	return values, nil
}

func newCheckResult(s *schema.Schema, store *errstore.Store, v *validator.Validator) *CheckResult {
	res := &CheckResult{
		Valid:      store.IsFormValid(),
		Errors:     store.Snapshot(),
		Normalized: map[string]string{},
	}
	for _, name := range s.Names() {
		if !store.IsValid(name) {
			res.Invalid = append(res.Invalid, name)
		}
		if n, ok := v.Normalized(name); ok {
			res.Normalized[name] = n
		}
	}
	return res
}
