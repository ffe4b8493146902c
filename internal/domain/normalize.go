package domain

import "strings"

// NormalizeText reduces free text to a correlation key: lowercased, with
// every run of whitespace collapsed to a single space and the ends trimmed.
// Punctuation is preserved, so two drafts correlate only on near-exact text.
func NormalizeText(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}
