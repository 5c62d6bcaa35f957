package sanitizer

import "regexp"

var (
	phpBlockRegex    = regexp.MustCompile(`(?is)<\?(?:php|=)?.*?(?:\?>|$)`)
	htmlCommentRegex = regexp.MustCompile(`(?s)<!--.*?-->`)
	scriptStyleRegex = regexp.MustCompile(`(?is)<(script|style)\b[^>]*>.*?</(?:script|style)\s*>`)
	htmlTagRegex     = regexp.MustCompile(`</?[a-zA-Z!][^>]*>?`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
)
