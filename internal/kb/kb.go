// Package kb loads and serves the static university knowledge base. A loaded
// KnowledgeBase is immutable for the lifetime of the process; request
// handling never mutates it.
package kb

import (
	"github.com/centai/centai/internal/core/domain"
)

// defaultSourceDomains is the permitted-domain allow-list used when the data
// file does not carry one.
var defaultSourceDomains = []string{
	"https://cutm.ac.in",
	"https://cutmap.ac.in",
	"https://faculty.cutm.ac.in/",
}

type KnowledgeBase struct {
	Faculty         []domain.FacultyRecord
	KeyContacts     []domain.ContactRecord
	Campuses        []domain.CampusRecord
	Clubs           []domain.ClubRecord
	Hostels         []domain.HostelRecord
	ResearchCenters []string
	LearningLabs    []string
	ProductionUnits []string
	Promoters       []string
	SourceDomains   []string
	SystemPrompt    string
}

// CampusNames returns the campus names in knowledge-base order, skipping
// blanks. The slice is freshly allocated; callers may keep it.
func (k *KnowledgeBase) CampusNames() []string {
	names := make([]string, 0, len(k.Campuses))
	for _, c := range k.Campuses {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}
	return names
}

// WithExtraFaculty returns a copy of the knowledge base with rows appended to
// the faculty directory. The receiver is left untouched.
func (k *KnowledgeBase) WithExtraFaculty(rows []domain.FacultyRecord) *KnowledgeBase {
	if len(rows) == 0 {
		return k
	}
	out := *k
	out.Faculty = make([]domain.FacultyRecord, 0, len(k.Faculty)+len(rows))
	out.Faculty = append(out.Faculty, k.Faculty...)
	out.Faculty = append(out.Faculty, rows...)
	return &out
}
