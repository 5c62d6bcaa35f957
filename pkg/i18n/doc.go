// Package i18n renders translated messages from nested catalogs.
//
// Catalogs are maps keyed by language code whose values are nested maps of
// message templates. Keys use dot notation ("validation.required") and
// templates use named placeholders in the form %{name}:
//
//	en:
//	  validation:
//	    min_length: "must be at least %{min} characters long"
//
// A Translator loads catalogs through a TranslationAdapter. MapAdapter serves an
// in-memory map; FSAdapter reads every YAML or JSON file of a directory in any
// fs.FS, which covers both embed.FS and os.DirFS.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales"),
//		i18n.WithDefaultLanguage("en"),
//	)
//	msg := tr.T("fr", "validation.min_length", "min", "3")
//
// Unsupported languages fall back to the default language, and missing keys
// fall back to the key itself unless WithFallbackToKey(false) is set.
//
// Negotiate picks the best supported language for an Accept-Language header.
package i18n
