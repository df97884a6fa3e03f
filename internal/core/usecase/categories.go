package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/centai/centai/internal/core/domain"
	"github.com/centai/centai/internal/kb"
	"github.com/centai/centai/internal/textproc"
)

var (
	hostelQueryRe  = regexp.MustCompile(`hostel|accommodation|dorm|residence`)
	clubQueryRe    = regexp.MustCompile(`club|sports|yoga|music|drama|science`)
	addressQueryRe = regexp.MustCompile(`address|location|where|hq|office`)
	centersQueryRe = regexp.MustCompile(`research\s*cent(?:er|re)s?|centers?\b`)
	labsQueryRe    = regexp.MustCompile(`labs?|laborator(?:y|ies)`)
	unitsQueryRe   = regexp.MustCompile(`production|manufacturing|unit`)

	hqRoleRe = regexp.MustCompile(`(?i)hq`)
)

// handleHostels lists the hostels of one campus. Without a resolvable campus
// it asks which campus instead of guessing.
func handleHostels(q *domain.Query, k *kb.KnowledgeBase) *routed {
	if !hostelQueryRe.MatchString(q.Normalized) {
		return nil
	}

	campusNorm := textproc.Normalize(q.Campus)
	rows := make([]domain.HostelRecord, 0, len(k.Hostels))
	for _, h := range k.Hostels {
		if q.Campus == "" || textproc.Normalize(h.Campus) == campusNorm {
			rows = append(rows, h)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	if q.Campus == "" {
		return followupRouted("Which campus are you asking about for hostels?", k)
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "Hostels at "+q.Campus)
	for _, h := range rows {
		hostelType := h.Type
		if hostelType == "" {
			hostelType = "Type n/a"
		}
		var b strings.Builder
		b.WriteString("• ")
		b.WriteString(h.Name)
		b.WriteString(" — ")
		b.WriteString(hostelType)
		if h.Capacity > 0 {
			fmt.Fprintf(&b, " (capacity: %d)", h.Capacity)
		}
		b.WriteString(" | ")
		b.WriteString(h.Campus)
		lines = append(lines, b.String())
	}

	return &routed{
		answer:         domain.Answer{Reply: strings.Join(lines, "\n"), Source: domain.SourceHostels},
		verifyKeywords: "hostel " + q.Campus,
	}
}

// handleClubs lists a campus's clubs; matching is by campus substring since
// club rows carry compound campus labels.
func handleClubs(q *domain.Query, k *kb.KnowledgeBase) *routed {
	if !clubQueryRe.MatchString(q.Normalized) {
		return nil
	}

	campusNorm := textproc.Normalize(q.Campus)
	rows := make([]domain.ClubRecord, 0, len(k.Clubs))
	for _, c := range k.Clubs {
		if q.Campus == "" || strings.Contains(textproc.Normalize(c.Campus), campusNorm) {
			rows = append(rows, c)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	if q.Campus == "" {
		return followupRouted("Which campus are you asking about for clubs?", k)
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "Clubs at "+q.Campus)
	for _, c := range rows {
		var b strings.Builder
		b.WriteString("• ")
		b.WriteString(c.Name)
		appendField(&b, " — ", c.Category)
		appendField(&b, " | ", c.Campus)
		if c.FacultyCoordinator != "" {
			b.WriteString(" | Coord: ")
			b.WriteString(c.FacultyCoordinator)
		}
		appendField(&b, " | ", c.Contact)
		appendField(&b, " | ", c.Email)
		lines = append(lines, b.String())
	}

	return &routed{
		answer:         domain.Answer{Reply: strings.Join(lines, "\n"), Source: domain.SourceClubs},
		verifyKeywords: "club " + q.Campus,
	}
}

// handleCampusAddress answers address queries. A resolvable campus is the
// gate; the answer always reports the designated headquarters contact and
// the designated campus's sub-contacts.
func handleCampusAddress(q *domain.Query, k *kb.KnowledgeBase) *routed {
	if !addressQueryRe.MatchString(q.Normalized) {
		return nil
	}
	if q.Campus == "" {
		return followupRouted("Which campus address do you need?", k)
	}

	var lines []string
	if hq := findCampusContaining(k, "bhubaneswar"); hq != nil {
		for _, c := range hq.Contacts {
			if hqRoleRe.MatchString(c.Role) {
				lines = append(lines, "Bhubaneswar HQ: "+c.Name)
				break
			}
		}
	}
	if viz := findCampusContaining(k, "vizianagaram"); viz != nil {
		for _, c := range viz.Contacts {
			line := c.Role + ": " + c.Name
			if len(c.Phone) > 0 {
				line += " | " + strings.Join(c.Phone, ", ")
			}
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	return &routed{
		answer:         domain.Answer{Reply: strings.Join(lines, "\n"), Source: domain.SourceCampusAddress},
		verifyKeywords: "address " + q.Campus,
	}
}

func findCampusContaining(k *kb.KnowledgeBase, fragment string) *domain.CampusRecord {
	for i := range k.Campuses {
		if strings.Contains(textproc.Normalize(k.Campuses[i].Name), fragment) {
			return &k.Campuses[i]
		}
	}
	return nil
}

func handleResearchCenters(q *domain.Query, k *kb.KnowledgeBase) *routed {
	if !centersQueryRe.MatchString(q.Normalized) || len(k.ResearchCenters) == 0 {
		return nil
	}
	return &routed{
		answer:         domain.Answer{Reply: bulletSection("Research Centers", k.ResearchCenters), Source: domain.SourceResearchCenters},
		verifyKeywords: "research center",
	}
}

func handleLearningLabs(q *domain.Query, k *kb.KnowledgeBase) *routed {
	if !labsQueryRe.MatchString(q.Normalized) || len(k.LearningLabs) == 0 {
		return nil
	}
	return &routed{
		answer:         domain.Answer{Reply: bulletSection("Learning Labs", k.LearningLabs), Source: domain.SourceLearningLabs},
		verifyKeywords: "lab",
	}
}

func handleProductionUnits(q *domain.Query, k *kb.KnowledgeBase) *routed {
	if !unitsQueryRe.MatchString(q.Normalized) || len(k.ProductionUnits) == 0 {
		return nil
	}
	return &routed{
		answer:         domain.Answer{Reply: bulletSection("Production Units", k.ProductionUnits), Source: domain.SourceProductionUnits},
		verifyKeywords: "production unit",
	}
}

func bulletSection(title string, items []string) string {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, title)
	for _, it := range items {
		lines = append(lines, "• "+it)
	}
	return strings.Join(lines, "\n")
}
