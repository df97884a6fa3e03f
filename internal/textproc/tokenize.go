package textproc

import "strings"

// stopwords are filler words ignored during scoring: articles, pronouns,
// common question words and list verbs.
var stopwords = map[string]struct{}{
	"the": {}, "is": {}, "are": {}, "am": {}, "a": {}, "an": {},
	"of": {}, "to": {}, "in": {}, "on": {}, "for": {}, "at": {},
	"by": {}, "with": {}, "and": {}, "or": {},
	"who": {}, "whom": {}, "whose": {}, "what": {}, "which": {},
	"where": {}, "when": {}, "how": {}, "about": {},
	"me": {}, "tell": {}, "show": {}, "list": {}, "give": {}, "all": {},
}

// Tokens splits normalized text on whitespace, dropping empty tokens.
func Tokens(normalized string) []string {
	return strings.Fields(normalized)
}

// ContentWords keeps tokens of at least three characters that are not
// stopwords.
func ContentWords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) < 3 {
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		out = append(out, tok)
	}
	return out
}
