package validator

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// Locales exposes the embedded message catalogs, e.g. to extend them with
// i18n.NewFSAdapter alongside application catalogs.
func Locales() embed.FS {
	return locales
}

var defaultTranslator = sync.OnceValue(func() *i18n.Translator {
	t, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(locales, "locales"))
	if err != nil {
		panic(fmt.Sprintf("validator: embedded locales: %v", err))
	}
	return t
})

// DefaultTranslator returns the translator built from the embedded en and fr catalogs.
func DefaultTranslator() *i18n.Translator {
	return defaultTranslator()
}
