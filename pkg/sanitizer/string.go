package sanitizer

import (
	"html"
	"strings"
)

// StripTags removes PHP blocks, HTML comments, script/style elements and tags.
// Entities are left as-is so that escaped text cannot turn back into markup.
func StripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	s = phpBlockRegex.ReplaceAllString(s, "")
	s = htmlCommentRegex.ReplaceAllString(s, "")
	s = scriptStyleRegex.ReplaceAllString(s, "")
	return htmlTagRegex.ReplaceAllString(s, "")
}

// EscapeHTML escapes <, >, &, ' and ".
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

// NormalizeWhitespace trims and collapses internal whitespace runs into single spaces.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
