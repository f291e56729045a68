package ml

import (
	"regexp"
	"strings"
)

// tokenPattern matches runs of two or more word characters
var tokenPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)

// Tokenize lower-cases text and splits it into word tokens.
// Single-character tokens are dropped.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
