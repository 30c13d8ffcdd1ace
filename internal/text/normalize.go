package text

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Decompose to NFD and drop combining marks, so "suporté" becomes "suporte".
	deaccenter = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	nonTokenChars = regexp.MustCompile(`[^a-z0-9\s]`)
	spaceRuns     = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases, strips diacritics, replaces everything outside
// [a-z0-9 whitespace] with a space, and collapses whitespace. The exact same
// transform runs at training and inference time; the two must never diverge.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	lower := strings.ToLower(s)
	stripped, _, err := transform.String(deaccenter, lower)
	if err != nil {
		// Malformed input falls through un-deaccented; the character filter
		// below still produces clean ASCII tokens.
		stripped = lower
	}

	cleaned := nonTokenChars.ReplaceAllString(stripped, " ")
	return strings.TrimSpace(spaceRuns.ReplaceAllString(cleaned, " "))
}
