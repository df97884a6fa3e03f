package usecase

import (
	"fmt"
	"regexp"

	"github.com/centai/centai/internal/core/domain"
	"github.com/centai/centai/internal/kb"
)

var (
	promoterQueryRe = regexp.MustCompile(`\b(?:promoters?|founders?)\b`)
	promoterRoleRe  = regexp.MustCompile(`(?i)promoter|founder`)
)

// handlePromoters answers promoter/founder questions from the dedicated
// promoter list, falling back to contacts tagged promoter/founder. An empty
// result yields the fixed unknown sentence rather than a guess.
func handlePromoters(q *domain.Query, k *kb.KnowledgeBase) *routed {
	if !promoterQueryRe.MatchString(q.Normalized) {
		return nil
	}

	names := append([]string(nil), k.Promoters...)
	if len(names) == 0 {
		for _, c := range k.KeyContacts {
			if promoterRoleRe.MatchString(c.Role) {
				names = append(names, c.Name)
			}
		}
	}

	unique := dedupe(names)
	if len(unique) == 0 {
		return &routed{
			answer:         domain.Answer{Reply: domain.UnknownReply, Source: domain.SourceKeyContacts},
			verifyKeywords: "promoters centurion university",
		}
	}

	return &routed{
		answer: domain.Answer{
			Reply:  fmt.Sprintf("The promoters of Centurion University are %s.", joinWithAnd(unique)),
			Source: domain.SourceKeyContacts,
		},
		verifyKeywords: "promoters centurion university",
	}
}
