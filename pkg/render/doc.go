// Package render provides templ components that display validation messages
// next to form inputs.
//
// FieldErrors writes a container addressed by ErrorsSelector(field), which the
// live validation endpoint patches in place:
//
//	html, err := render.String(ctx, render.FieldErrors("email", store.Messages("email")))
//
// Summary lists every invalid field at the top of a form.
package render
