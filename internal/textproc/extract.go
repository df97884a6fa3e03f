package textproc

import (
	"regexp"
	"strings"
)

// alternateCampusSpellings covers campus mentions that do not match any
// knowledge-base campus name verbatim (short forms, town names).
var alternateCampusSpellings = []string{
	"paralakhemundi", "bhubaneswar", "rayagada", "balangir",
	"balasore", "chatrapur", "vizianagaram",
}

var (
	titledNameRe = regexp.MustCompile(`\b(?:prof|professor|dr|mr|ms|mrs)\.?\s+([a-z]+(?:\s+[a-z]+){1,3})\b`)
	deptHintRe   = regexp.MustCompile(`(?:dept|department|cse|mechanical|agri|pharmacy|civil|electrical|ece|ai|ml)[\w\s-]*`)
)

// ExtractCampus returns the first of campusNames whose normalized form is a
// substring of the normalized message, or "" when none occurs.
func ExtractCampus(normalizedMsg string, campusNames []string) string {
	for _, name := range campusNames {
		n := Normalize(name)
		if n != "" && strings.Contains(normalizedMsg, n) {
			return name
		}
	}
	return ""
}

// ExtractCampusLoose is ExtractCampus with a fallback over the hard-coded
// alternate-spelling list. A loose hit returns the spelling itself.
func ExtractCampusLoose(normalizedMsg string, campusNames []string) string {
	if campus := ExtractCampus(normalizedMsg, campusNames); campus != "" {
		return campus
	}
	for _, alt := range alternateCampusSpellings {
		if strings.Contains(normalizedMsg, alt) {
			return alt
		}
	}
	return ""
}

// ExtractProbableName guesses a person name from a normalized message.
// A title-prefixed capture (prof/dr/mr/...) wins; otherwise the last up-to-4
// content words are joined. Queries with fewer than two content words yield
// no name.
func ExtractProbableName(normalizedMsg string) string {
	if m := titledNameRe.FindStringSubmatch(normalizedMsg); m != nil {
		return m[1]
	}
	words := ContentWords(Tokens(normalizedMsg))
	if len(words) < 2 {
		return ""
	}
	if len(words) > 4 {
		words = words[len(words)-4:]
	}
	return strings.Join(words, " ")
}

// ExtractDeptHint captures a department/discipline token cluster from the
// normalized message, or "".
func ExtractDeptHint(normalizedMsg string) string {
	return deptHintRe.FindString(normalizedMsg)
}
