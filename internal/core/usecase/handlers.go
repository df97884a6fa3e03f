package usecase

import (
	"github.com/centai/centai/internal/core/domain"
	"github.com/centai/centai/internal/kb"
)

// routed is a deterministic handler's acceptance of a query: the answer plus
// the keywords/URLs the best-effort verifier should probe. Empty keywords
// skip verification.
type routed struct {
	answer         domain.Answer
	verifyKeywords string
	verifyURLs     []string
}

// handlerFunc accepts or declines a query against the knowledge base.
// Returning nil passes the query to the next handler in the chain.
type handlerFunc func(q *domain.Query, k *kb.KnowledgeBase) *routed

type intentHandler struct {
	name   string
	handle handlerFunc
}

// intentHandlers is the fixed-priority deterministic routing chain. Order is
// behavior: the first handler that accepts terminates routing.
func intentHandlers() []intentHandler {
	return []intentHandler{
		{name: "promoters", handle: handlePromoters},
		{name: "contacts", handle: handleContacts},
		{name: "faculty_list", handle: handleFacultyList},
		{name: "hostels", handle: handleHostels},
		{name: "clubs", handle: handleClubs},
		{name: "campus_address", handle: handleCampusAddress},
		{name: "research_centers", handle: handleResearchCenters},
		{name: "learning_labs", handle: handleLearningLabs},
		{name: "production_units", handle: handleProductionUnits},
		{name: "faculty_single", handle: handleFacultySingle},
	}
}

// followupRouted asks the user to disambiguate by campus instead of
// guessing, carrying the full campus-name list as suggested replies.
func followupRouted(question string, k *kb.KnowledgeBase) *routed {
	return &routed{
		answer: domain.Answer{
			Reply:            question,
			Source:           domain.SourceFollowup,
			SuggestedReplies: k.CampusNames(),
		},
	}
}
