package formkit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestForm(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		form := formkit.New()
		form.Text("name", "Jean", nil).
			Email("email", "jean@exemple.fr", nil).
			Number("age", 30, validator.Bag{"min": 18})

		assert.True(t, form.Valid())
		assert.NoError(t, form.Err())
		assert.True(t, form.Errors().IsEmpty())
	})

	t.Run("invalid form", func(t *testing.T) {
		form := formkit.New()
		form.Text("name", "", nil).
			Email("email", "jean@exemple.fr", nil).
			Select("fruit", "kiwi", validator.Bag{"optionsChoices": []string{"apple", "banana"}})

		assert.False(t, form.Valid())

		err := form.Err()
		require.Error(t, err)
		var verr formkit.ValidationError
		require.True(t, errors.As(err, &verr))

		assert.True(t, verr.Has("name"))
		assert.False(t, verr.Has("email"))
		assert.Equal(t, "This field is mandatory.", verr.Get("name"))
		assert.Equal(t,
			"validation failed: fruit: kiwi: not an allowed choice. Allowed choices: apple, banana., name: This field is mandatory.",
			err.Error(),
		)
	})

	t.Run("reset", func(t *testing.T) {
		form := formkit.New()
		form.Text("name", "", nil)
		require.False(t, form.Valid())

		form.Reset()
		assert.True(t, form.Valid())
		assert.Empty(t, form.Store().Fields())
	})

	t.Run("language option", func(t *testing.T) {
		form := formkit.New(validator.WithLanguage("fr"))
		form.Text("name", "", nil)
		assert.Equal(t, "Ce champ est obligatoire.", form.Errors().Get("name"))
	})
}

func TestValidationError(t *testing.T) {
	verr := formkit.NewValidationError()
	assert.True(t, verr.IsEmpty())
	assert.Equal(t, "validation failed", verr.Error())

	verr.Add("email", "first")
	verr.Add("email", "second")
	assert.False(t, verr.IsEmpty())
	assert.Equal(t, "first", verr.Get("email"))
	assert.Equal(t, "", verr.Get("name"))
	assert.Equal(t, "validation failed: email: first", verr.Error())
}
