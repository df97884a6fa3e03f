package domain

// Source tags identify which handler produced an answer.
const (
	SourceKeyContacts     = "local:key_contacts"
	SourceFaculty         = "local:faculty"
	SourceHostels         = "local:hostels"
	SourceClubs           = "local:clubs"
	SourceCampusAddress   = "local:campus-address"
	SourceResearchCenters = "local:research-centers"
	SourceLearningLabs    = "local:learning-labs"
	SourceProductionUnits = "local:production-units"
	SourceFollowup        = "followup"
	SourceLocalContext    = "local-context"
)

// UnknownReply is the fixed sentence used whenever the knowledge base (or
// the constrained fallback context) cannot support an answer.
const UnknownReply = "I don't know from the provided sources."

// Answer is the final payload for one chat request.
type Answer struct {
	Reply            string   `json:"reply"`
	Source           string   `json:"source"`
	SuggestedReplies []string `json:"suggestedReplies,omitempty"`
}

// ChatTurn is one prior conversation message, passed through unmodified to
// the fallback provider.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
