package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps the header size accepted for negotiation.
const maxAcceptLanguageLength = 4096

// Negotiate returns the supported language that best matches an
// Accept-Language header, or defaultLang when nothing matches.
func Negotiate(header string, supported []string, defaultLang string) string {
	if header == "" || len(supported) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	wanted, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(wanted) == 0 {
		return defaultLang
	}

	// The first tag is what the matcher falls back to.
	candidates := make([]string, 0, len(supported)+1)
	candidates = append(candidates, defaultLang)
	for _, lang := range supported {
		if !slices.ContainsFunc(candidates, func(c string) bool { return strings.EqualFold(c, lang) }) {
			candidates = append(candidates, lang)
		}
	}

	tags := make([]language.Tag, 0, len(candidates))
	kept := make([]string, 0, len(candidates))
	for _, lang := range candidates {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		kept = append(kept, lang)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	_, idx, confidence := language.NewMatcher(tags).Match(wanted...)
	if confidence == language.No {
		return defaultLang
	}
	return kept[idx]
}
