// Package formkit validates form fields and keeps per-field error state for
// rendering next to inputs.
//
// A Form pairs an errstore.Store with a validator.Validator writing into it:
//
//	form := formkit.New(validator.WithLanguage("fr"))
//	form.Text("name", r.FormValue("name"), nil).
//		Email("email", r.FormValue("email"), nil).
//		Date("birthday", r.FormValue("birthday"), validator.Bag{"format": "DD/MM/YYYY"}).
//		Select("plan", r.FormValue("plan"), validator.Bag{"optionsChoices": []string{"free", "pro"}})
//
//	if err := form.Err(); err != nil {
//		var verr formkit.ValidationError
//		errors.As(err, &verr)
//		// verr.Get("email") is the first message for the field
//	}
//
// The building blocks live under pkg/:
//
//   - errstore: field → validity and messages, with at most one entry per field
//   - merge: deep merge of option bags with replace, concat, union or custom list strategies
//   - validator: the field checks (text, email, FQDN, IP, date, number, choice, password, tel, file)
//   - schema: declarative field lists loaded from YAML, TOML or JSON
//   - render: templ components for field errors
//   - formhttp: HTTP endpoints for whole-form and live single-field validation
//
// End-user input never produces an error from a check; it is recorded in the
// store. Misconfiguration (malformed date formats, bad patterns, unknown
// options) panics at the call site.
package formkit
