package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// Translator renders message templates for a set of languages.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator loads translations through the adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, catalog := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if catalog == nil {
			return nil, fmt.Errorf("%w: nil catalog for language %s", ErrInvalidCatalog, lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

// DefaultLanguage returns the configured fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the sorted language codes that have a catalog.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether key exists for lang, without fallbacks.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	catalog, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(catalog, key)
	return ok
}

// T renders key for lang. Args are key/value pairs substituted into %{key}
// placeholders; an odd trailing argument is ignored.
//
// Resolution order: lang, then the default language, then the key itself.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, l := range []string{lang, t.defaultLang} {
		catalog, ok := t.translations[l]
		if !ok {
			continue
		}
		if tmpl, ok := lookup(catalog, key); ok {
			return sprintf(tmpl, args)
		}
		if l == lang && t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
	}

	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td renders key like T but uses defaultValue instead of the key when nothing matches.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if !t.HasTranslation(lang, key) && !t.HasTranslation(t.defaultLang, key) {
		return sprintf(defaultValue, args)
	}
	return t.T(lang, key, args...)
}

// Tc renders key using the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// lookup walks dot-separated keys through nested maps.
func lookup(catalog map[string]any, key string) (string, bool) {
	var current any = catalog
	for part := range strings.SplitSeq(key, ".") {
		switch m := current.(type) {
		case map[string]any:
			current = m[part]
		case map[any]any:
			current = m[part]
		default:
			return "", false
		}
		if current == nil {
			return "", false
		}
	}
	switch v := current.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func sprintf(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
