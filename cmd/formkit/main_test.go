package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const signupSchema = `
fields:
  - name: name
    kind: text
  - name: email
    kind: email
  - name: fruits
    kind: checkbox
    options:
      optionsChoices: [apple, banana, cherry]
  - name: phone
    kind: tel
    options:
      requiredInput: false
      format: INTERNATIONAL
`

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "signup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	color.NoColor = true

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck_Valid(t *testing.T) {
	path := writeSchema(t, signupSchema)

	out, err := run(t, "check", "--schema", path,
		"--set", "name=Jean",
		"--set", "email=jean@exemple.fr",
		"--set", "fruits=apple", "--set", "fruits=cherry",
		"--set", "phone=06 12 34 56 78",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Form is valid")
	assert.Contains(t, out, "phone → +33 6 12 34 56 78")
}

func TestCheck_Invalid(t *testing.T) {
	path := writeSchema(t, signupSchema)

	out, err := run(t, "check", "--schema", path,
		"--set", "email=jean@exemple.fr",
		"--set", "fruits=kiwi",
	)
	require.ErrorIs(t, err, errFormInvalid)
	assert.Contains(t, out, "✗ Form is invalid: 2 field(s)")
	assert.Contains(t, out, "• name: This field is mandatory.")
	assert.Contains(t, out, "• fruits: kiwi: not an allowed choice. Allowed choices: apple, banana, cherry.")
	assert.NotContains(t, out, "email:")
}

func TestCheck_JSON(t *testing.T) {
	path := writeSchema(t, signupSchema)

	out, err := run(t, "check", "--schema", path, "--json", "--lang", "fr",
		"--set", "email=jean@exemple.fr",
		"--set", "fruits=apple",
	)
	require.ErrorIs(t, err, errFormInvalid)

	var res CheckResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Valid)
	assert.Equal(t, map[string][]string{"name": {"Ce champ est obligatoire."}}, res.Errors)
}

func TestCheck_SchemaFromEnvironment(t *testing.T) {
	path := writeSchema(t, signupSchema)
	t.Setenv("FORMKIT_SCHEMA", path)
	t.Setenv("FORMKIT_LANG", "fr")

	out, err := run(t, "check", "--set", "email=jean@exemple.fr")
	require.ErrorIs(t, err, errFormInvalid)
	assert.Contains(t, out, "name: Ce champ est obligatoire.")
}

func TestCheck_PhoneRegionFromEnvironment(t *testing.T) {
	path := writeSchema(t, signupSchema)
	t.Setenv("FORMKIT_PHONE_REGION", "BE")

	out, err := run(t, "check", "--schema", path,
		"--set", "name=Jean",
		"--set", "email=jean@exemple.fr",
		"--set", "fruits=apple",
		"--set", "phone=+33 6 12 34 56 78",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "phone → +33 6 12 34 56 78")
}

func TestCheck_Errors(t *testing.T) {
	t.Run("no schema", func(t *testing.T) {
		t.Setenv("FORMKIT_SCHEMA", "")
		_, err := run(t, "check", "--set", "name=Jean")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no schema given")
	})

	t.Run("malformed pair", func(t *testing.T) {
		_, err := run(t, "check", "--schema", writeSchema(t, signupSchema), "--set", "name")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid --set "name"`)
	})

	t.Run("invalid schema", func(t *testing.T) {
		_, err := run(t, "check", "--schema", writeSchema(t, "fields: []\n"))
		require.Error(t, err)
		assert.False(t, errors.Is(err, errFormInvalid))
		assert.Contains(t, err.Error(), "loading schema")
	})

	t.Run("misconfigured field options", func(t *testing.T) {
		path := writeSchema(t, "fields:\n  - {name: day, kind: date, options: {format: NOPE}}\n")
		_, err := run(t, "check", "--schema", path, "--set", "day=01/01/2000")
		require.Error(t, err)
		assert.False(t, errors.Is(err, errFormInvalid))
		assert.Contains(t, err.Error(), "loading schema")
		assert.Contains(t, err.Error(), `field "day"`)
	})

	t.Run("bad log level", func(t *testing.T) {
		_, err := run(t, "check", "--log-level", "loud", "--schema", writeSchema(t, signupSchema))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuring logger")
	})
}

func TestGuard(t *testing.T) {
	assert.NoError(t, guard(func() {}))

	err := guard(func() { panic(validator.ErrInvalidPattern) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schema options")

	err = guard(func() { panic("boom") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schema options: boom")
}

func TestParseValues(t *testing.T) {
	values, err := parseValues([]string{"a=1", "a=2", "b=", "c=x=y"})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"a": {"1", "2"},
		"b": {""},
		"c": {"x=y"},
	}, values)

	_, err = parseValues([]string{"=value"})
	assert.Error(t, err)
}
