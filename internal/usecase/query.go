package usecase

import (
	"regexp"
	"strings"
)

// maxQueryLength bounds the query sent to the search API
const maxQueryLength = 200

var multipleSpacesRegex = regexp.MustCompile(`\s+`)

// NormalizeQuery collapses whitespace and trims the query. Queries longer
// than maxQueryLength are cut, at a word boundary when one is close.
func NormalizeQuery(query string) string {
	cleaned := multipleSpacesRegex.ReplaceAllString(query, " ")
	cleaned = strings.TrimSpace(cleaned)

	if len(cleaned) > maxQueryLength {
		cut := maxQueryLength
		for cut > 0 && !isRuneStart(cleaned[cut]) {
			cut--
		}
		cleaned = cleaned[:cut]
		if lastSpace := strings.LastIndex(cleaned, " "); lastSpace > maxQueryLength/2 {
			cleaned = cleaned[:lastSpace]
		}
	}

	return cleaned
}

// cacheKey builds the response cache key for a query.
// Format: "search:{lowercased normalized query}". Punctuation is kept so
// "C" and "C++" stay distinct.
func cacheKey(query string) string {
	return "search:" + strings.ToLower(NormalizeQuery(query))
}

// isRuneStart reports whether b begins a UTF-8 sequence
func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
