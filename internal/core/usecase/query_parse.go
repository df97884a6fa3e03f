package usecase

import (
	"github.com/centai/centai/internal/core/domain"
	"github.com/centai/centai/internal/kb"
	"github.com/centai/centai/internal/textproc"
)

// parseQuery analyzes one raw message into the ephemeral Query value read by
// every handler. Analysis happens exactly once per request.
func parseQuery(message string, k *kb.KnowledgeBase) *domain.Query {
	normalized := textproc.Normalize(message)
	tokens := textproc.Tokens(normalized)
	names := k.CampusNames()

	return &domain.Query{
		Raw:          message,
		Normalized:   normalized,
		Tokens:       tokens,
		ContentWords: textproc.ContentWords(tokens),
		Campus:       textproc.ExtractCampus(normalized, names),
		CampusLoose:  textproc.ExtractCampusLoose(normalized, names),
		DeptHint:     textproc.ExtractDeptHint(normalized),
		ProbableName: textproc.ExtractProbableName(normalized),
	}
}
