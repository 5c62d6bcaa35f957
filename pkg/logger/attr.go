package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records a form field name.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records several field names, e.g. the invalid ones of a form.
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}

// Kind records the validator kind applied to a field.
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Valid records the outcome of a validation.
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
