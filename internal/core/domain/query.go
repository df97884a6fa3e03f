package domain

// Query is the ephemeral, pre-analyzed form of one user message. It is built
// once per request and read by every handler; nothing mutates it afterwards.
type Query struct {
	Raw        string
	Normalized string

	Tokens       []string
	ContentWords []string

	// Campus is the first knowledge-base campus whose normalized name occurs
	// in the message, or "". CampusLoose additionally consults the
	// alternate-spelling list and is only used by faculty list-intent
	// detection.
	Campus      string
	CampusLoose string

	DeptHint     string
	ProbableName string
}

// ScoredFaculty pairs a faculty record with its relevance score. Ranking is
// by descending score; ties keep knowledge-base order.
type ScoredFaculty struct {
	Record FacultyRecord
	Score  int
}
