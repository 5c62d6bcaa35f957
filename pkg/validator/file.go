package validator

import (
	"mime/multipart"
	"slices"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/file"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// File checks an upload: required, readable, size, MIME type, extension and
// media family, stopping at the first failure.
func (v *Validator) File(field string, fh *multipart.FileHeader, opts Bag) *Validator {
	o := resolve[FileOptions](v, "file", opts, DefaultFileOptions())
	if fh == nil || fh.Filename == "" {
		if o.RequiredInput {
			v.record(field, required(field))
		}
		return v
	}

	info, err := file.Inspect(fh)
	if err != nil {
		v.logger.Debug("failed to inspect upload", logger.Field(field), logger.Error(err))
		v.record(field, fail(field, "validation.file.read", "file could not be read", nil))
		return v
	}

	v.first(field,
		Rule{
			Check: func() bool { return o.MaxSize <= 0 || info.Size <= o.MaxSize },
			Error: fail(field, "validation.file.too_large", "file too large", map[string]any{"max": o.MaxSize}),
		},
		Rule{
			Check: func() bool { return len(o.AllowedMIMETypes) == 0 || matchMIME(info.MIMEType, o.AllowedMIMETypes) },
			Error: fail(field, "validation.file.mime_type", "file type not accepted", map[string]any{"type": info.MIMEType}),
		},
		Rule{
			Check: func() bool { return len(o.AllowedExtensions) == 0 || matchExtension(info.Extension, o.AllowedExtensions) },
			Error: fail(field, "validation.file.extension", "extension not accepted", map[string]any{"extension": info.Extension}),
		},
		Rule{
			Check: func() bool { return o.Media == "" || strings.EqualFold(string(info.Kind), o.Media) },
			Error: fail(field, "validation.file.media", "wrong media type", map[string]any{"media": o.Media}),
		},
	)
	return v
}

// matchMIME supports "image/*" style wildcards.
func matchMIME(mimeType string, allowed []string) bool {
	for _, a := range allowed {
		a = strings.ToLower(strings.TrimSpace(a))
		if prefix, ok := strings.CutSuffix(a, "/*"); ok {
			if strings.HasPrefix(mimeType, prefix+"/") {
				return true
			}
			continue
		}
		if a == mimeType {
			return true
		}
	}
	return false
}

func matchExtension(ext string, allowed []string) bool {
	return slices.ContainsFunc(allowed, func(a string) bool {
		a = strings.ToLower(strings.TrimSpace(a))
		if !strings.HasPrefix(a, ".") {
			a = "." + a
		}
		return a == ext
	})
}
