package render

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/a-h/templ"
)

// ErrorsID returns the element id holding a field's messages.
// Characters outside letters, digits, '-' and '_' are replaced by '-'.
func ErrorsID(field string) string {
	id := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, field)
	return "errors-" + id
}

// ErrorsSelector returns the CSS selector of a field's error container.
func ErrorsSelector(field string) string {
	return "#" + ErrorsID(field)
}

// FieldErrors renders the messages of one field.
// The container is always written, even without messages, so a patch with an
// empty list clears previously shown errors.
func FieldErrors(field string, messages []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "field-errors"
		if len(messages) > 0 {
			class += " invalid"
		}
		if _, err := fmt.Fprintf(w, `<div id="%s" class="%s" aria-live="polite">`,
			templ.EscapeString(ErrorsID(field)), class); err != nil {
			return err
		}
		for _, m := range messages {
			if _, err := fmt.Fprintf(w, `<p class="field-error">%s</p>`, templ.EscapeString(m)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>")
		return err
	})
}

// Summary renders every invalid field as a list, sorted by field name.
// Nothing is written when errs is empty.
func Summary(errs map[string][]string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fields := make([]string, 0, len(errs))
		for field, messages := range errs {
			if len(messages) > 0 {
				fields = append(fields, field)
			}
		}
		if len(fields) == 0 {
			return nil
		}
		sort.Strings(fields)

		var sb strings.Builder
		sb.WriteString(`<ul class="form-errors" role="alert">`)
		for _, field := range fields {
			for _, m := range errs[field] {
				fmt.Fprintf(&sb, `<li data-field="%s">%s</li>`, templ.EscapeString(field), templ.EscapeString(m))
			}
		}
		sb.WriteString("</ul>")

		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// String renders a component to a string.
func String(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
