// Package textproc holds the pure text analysis used by the retrieval core:
// normalization, tokenization and entity extraction. Every function is
// deterministic and side-effect free.
package textproc

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes to NFKD and strips combining marks, so campus
// and person names match diacritic-insensitively.
var foldTransformer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Word characters, whitespace and the allow-listed punctuation @ . & ( ) -
// survive normalization; everything else becomes a space.
var (
	disallowedRunes = regexp.MustCompile(`[^a-z0-9_\s@.&()-]`)
	spaceRuns       = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes raw text for matching: Unicode fold, lower-case,
// punctuation stripping outside the allow-list, whitespace collapse and trim.
// Normalize is idempotent.
func Normalize(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	cleaned := disallowedRunes.ReplaceAllString(strings.ToLower(folded), " ")
	return strings.TrimSpace(spaceRuns.ReplaceAllString(cleaned, " "))
}
