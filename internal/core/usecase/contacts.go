package usecase

import (
	"regexp"
	"strings"

	"github.com/centai/centai/internal/core/domain"
	"github.com/centai/centai/internal/kb"
	"github.com/centai/centai/internal/textproc"
)

var (
	contactIntentRe = regexp.MustCompile(`who\s+is|contact|phone|number|email|reach|call|vc|vice\s*chancel+or`)
	vcIntentRe      = regexp.MustCompile(`\b(?:vc|vice\s*chancel+or)\b`)
	vcRoleRe        = regexp.MustCompile(`vice\s*chancellor|\bvc\b`)
	honorificRe     = regexp.MustCompile(`\b(?:prof|professor|dr|mr|ms|mrs)\b`)
)

// Contact scoring increments. The acceptance threshold keeps generic chat
// from matching a contact by accident.
const (
	contactRoleOverlapStrong = 4
	contactRoleOverlapWeak   = 2
	contactFullNameBoost     = 6
	contactNameTokensStrong  = 5
	contactNameTokensWeak    = 3
	contactVCBoost           = 10
	contactIntentBoost       = 2
	contactAcceptScore       = 4
)

// genericCategoryWords are removed from the query, together with campus
// names, before role matching.
var genericCategoryWords = []string{
	"campus", "faculty", "hostel", "hostels", "club", "clubs",
	"list", "show", "give", "all",
}

// bestContact runs the field-weighted contact scorer over every key contact
// and keeps the highest score; ties keep the first-seen candidate. The
// boolean reports whether the winner clears the acceptance threshold.
func bestContact(q *domain.Query, k *kb.KnowledgeBase) (domain.ContactRecord, int, bool) {
	msg := q.Normalized

	ignore := make(map[string]struct{}, len(genericCategoryWords)+len(k.Campuses))
	for _, w := range genericCategoryWords {
		ignore[w] = struct{}{}
	}
	for _, c := range k.Campuses {
		if n := textproc.Normalize(c.Name); n != "" {
			ignore[n] = struct{}{}
		}
	}
	kept := make([]string, 0, len(q.Tokens))
	for _, tok := range q.Tokens {
		if _, skip := ignore[tok]; !skip {
			kept = append(kept, tok)
		}
	}
	words := textproc.ContentWords(kept)

	contactIntent := contactIntentRe.MatchString(msg)
	wantsVC := vcIntentRe.MatchString(msg)

	var best domain.ContactRecord
	bestScore := 0
	for _, c := range k.KeyContacts {
		role := textproc.Normalize(c.Role)
		if role == "" {
			continue
		}

		score := 0
		overlap := 0
		for _, tok := range textproc.ContentWords(textproc.Tokens(role)) {
			if containsString(words, tok) {
				overlap++
			}
		}
		switch {
		case overlap >= 2:
			score += contactRoleOverlapStrong
		case overlap == 1:
			score += contactRoleOverlapWeak
		}

		name := textproc.Normalize(c.Name)
		if name != "" && strings.Contains(msg, name) {
			score += contactFullNameBoost
		}
		if bare := strings.TrimSpace(honorificRe.ReplaceAllString(name, "")); bare != "" {
			hits := 0
			for _, tok := range strings.Fields(bare) {
				if strings.Contains(msg, tok) {
					hits++
				}
			}
			switch {
			case hits >= 2:
				score += contactNameTokensStrong
			case hits == 1:
				score += contactNameTokensWeak
			}
		}

		if wantsVC && vcRoleRe.MatchString(role) {
			score += contactVCBoost
		}
		if contactIntent {
			score += contactIntentBoost
		}

		if score > bestScore {
			best, bestScore = c, score
		}
	}

	return best, bestScore, bestScore >= contactAcceptScore
}

func handleContacts(q *domain.Query, k *kb.KnowledgeBase) *routed {
	contact, _, ok := bestContact(q, k)
	if !ok {
		return nil
	}

	var b strings.Builder
	b.WriteString("The ")
	b.WriteString(contact.Role)
	b.WriteString(" at Centurion University is ")
	b.WriteString(contact.Name)
	if contact.Phone != "" {
		b.WriteString(" (Phone: ")
		b.WriteString(contact.Phone)
		b.WriteString(")")
	}
	b.WriteString(".")

	return &routed{
		answer:         domain.Answer{Reply: b.String(), Source: domain.SourceKeyContacts},
		verifyKeywords: contact.Name,
	}
}
