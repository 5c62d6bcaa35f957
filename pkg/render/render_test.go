package render_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/render"
)

func TestErrorsID(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"email", "errors-email"},
		{"user.email", "errors-user-email"},
		{"tags[]", "errors-tags--"},
		{"prénom", "errors-prénom"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.want, render.ErrorsID(tt.field))
			assert.Equal(t, "#"+tt.want, render.ErrorsSelector(tt.field))
		})
	}
}

func TestFieldErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("messages are escaped", func(t *testing.T) {
		html, err := render.String(ctx, render.FieldErrors("email", []string{"bad <b>input</b>", "too long"}))
		require.NoError(t, err)
		assert.Equal(t,
			`<div id="errors-email" class="field-errors invalid" aria-live="polite">`+
				`<p class="field-error">bad &lt;b&gt;input&lt;/b&gt;</p>`+
				`<p class="field-error">too long</p></div>`,
			html,
		)
	})

	t.Run("empty container", func(t *testing.T) {
		html, err := render.String(ctx, render.FieldErrors("email", nil))
		require.NoError(t, err)
		assert.Equal(t, `<div id="errors-email" class="field-errors" aria-live="polite"></div>`, html)
	})
}

func TestSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("sorted by field", func(t *testing.T) {
		html, err := render.String(ctx, render.Summary(map[string][]string{
			"name":  {"This field is mandatory."},
			"email": {"The email address is not valid."},
			"age":   {},
		}))
		require.NoError(t, err)
		assert.Equal(t,
			`<ul class="form-errors" role="alert">`+
				`<li data-field="email">The email address is not valid.</li>`+
				`<li data-field="name">This field is mandatory.</li></ul>`,
			html,
		)
	})

	t.Run("nothing to show", func(t *testing.T) {
		html, err := render.String(ctx, render.Summary(nil))
		require.NoError(t, err)
		assert.Empty(t, html)
	})
}
