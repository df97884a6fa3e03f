package usecase

import (
	"regexp"
	"sort"
	"strings"

	"github.com/centai/centai/internal/core/domain"
	"github.com/centai/centai/internal/kb"
	"github.com/centai/centai/internal/textproc"
)

var (
	facultyNounRe = regexp.MustCompile(`\b(?:faculty|professors?|teachers?|staff|hod|head of department)\b`)
	listVerbRe    = regexp.MustCompile(`\b(?:list|show|give|all)\b`)
	deptNounRe    = regexp.MustCompile(`\b(?:dept|department|cse|computer|mechanical|agri|agriculture|pharmacy|civil|electrical|ece|ai|ml|chemistry|applied\s+sciences)\b`)
)

const (
	probableNameBonus   = 8
	facultyCandidateCap = 25
	facultyListCap      = 20

	// Single-match gate: a lone top candidate is a confident answer only
	// under the double gate in handleFacultySingle.
	singleStrongScore = 12
	singleNamedScore  = 9
	singleScoreGap    = 6
)

// facultyFieldWeights fixes the per-field relevance weights; exact name and
// role matches dominate department/school/campus/email.
func facultyFieldWeights(f domain.FacultyRecord) []struct {
	value  string
	weight int
} {
	return []struct {
		value  string
		weight int
	}{
		{f.Name, 6},
		{f.Role, 5},
		{f.Department, 4},
		{f.School, 3},
		{f.Campus, 3},
		{f.Email, 2},
	}
}

// scoreFacultyRecord is the pure field-weighted scorer: weight×2 when every
// content word occurs in the field, weight×1 when at least one does.
func scoreFacultyRecord(f domain.FacultyRecord, contentWords []string) int {
	score := 0
	for _, fw := range facultyFieldWeights(f) {
		val := textproc.Normalize(fw.value)
		if val == "" {
			continue
		}
		if containsAllWords(val, contentWords) {
			score += fw.weight * 2
		} else if containsAnyWord(val, contentWords) {
			score += fw.weight
		}
	}
	return score
}

// rankFaculty scores every faculty record against the query, discards
// non-positive scores, and sorts descending; ties keep knowledge-base order.
func rankFaculty(q *domain.Query, k *kb.KnowledgeBase) []domain.ScoredFaculty {
	scored := make([]domain.ScoredFaculty, 0, len(k.Faculty))
	for _, f := range k.Faculty {
		s := scoreFacultyRecord(f, q.ContentWords)
		if q.ProbableName != "" && strings.Contains(textproc.Normalize(f.Name), q.ProbableName) {
			s += probableNameBonus
		}
		if s > 0 {
			scored = append(scored, domain.ScoredFaculty{Record: f, Score: s})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > facultyCandidateCap {
		scored = scored[:facultyCandidateCap]
	}
	return scored
}

// wantsFacultyList classifies list intent: a faculty/role noun, or a list
// verb together with a department hint.
func wantsFacultyList(normalizedMsg string) bool {
	if facultyNounRe.MatchString(normalizedMsg) {
		return true
	}
	return listVerbRe.MatchString(normalizedMsg) && deptNounRe.MatchString(normalizedMsg)
}

// deptSynonymGroups bridge short discipline forms and their spelled-out
// department/school names.
var deptSynonymGroups = [][]string{
	{"cse", "computer science", "computer science engineering", "cs", "cs&e"},
	{"ece", "electronics and communication", "electronics & communication"},
	{"mech", "mechanical"},
	{"agri", "agriculture", "agricultural"},
}

// deptMatchesHint reports whether a faculty row fits the extracted
// department hint, consulting the synonym groups before plain substring
// matching. An empty hint matches everything.
func deptMatchesHint(deptHint string, f domain.FacultyRecord) bool {
	if deptHint == "" {
		return true
	}
	hint := textproc.Normalize(deptHint)
	field := textproc.Normalize(f.Department + " " + f.School)
	if field == "" {
		return false
	}
	for _, group := range deptSynonymGroups {
		if containsAnyWord(hint, group) && containsAnyWord(field, group) {
			return true
		}
	}
	return strings.Contains(field, hint)
}

// formatFacultyRows renders a bulleted faculty list capped at facultyListCap
// rows.
func formatFacultyRows(rows []domain.FacultyRecord) string {
	if len(rows) == 0 {
		return "No matching faculty found."
	}
	if len(rows) > facultyListCap {
		rows = rows[:facultyListCap]
	}
	lines := make([]string, 0, len(rows))
	for _, f := range rows {
		var b strings.Builder
		b.WriteString("• ")
		b.WriteString(f.Name)
		b.WriteString(" — ")
		b.WriteString(f.Role)
		appendField(&b, ", ", f.Department)
		appendField(&b, " | ", f.School)
		appendField(&b, " | ", f.Campus)
		appendField(&b, " | ", f.Email)
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// handleFacultyList serves faculty list queries. With neither campus nor
// department hint it asks a clarifying follow-up instead of guessing.
func handleFacultyList(q *domain.Query, k *kb.KnowledgeBase) *routed {
	if !wantsFacultyList(q.Normalized) {
		return nil
	}

	ranked := rankFaculty(q, k)
	campus := q.CampusLoose
	if len(ranked) == 0 && campus == "" && q.DeptHint == "" {
		return nil
	}
	if campus == "" && q.DeptHint == "" {
		return followupRouted("Do you want the faculty list for a specific campus?", k)
	}

	campusNorm := textproc.Normalize(campus)
	filtered := make([]domain.FacultyRecord, 0, len(ranked))
	for _, sc := range ranked {
		if campusNorm != "" && !strings.Contains(textproc.Normalize(sc.Record.Campus), campusNorm) {
			continue
		}
		if !deptMatchesHint(q.DeptHint, sc.Record) {
			continue
		}
		filtered = append(filtered, sc.Record)
	}
	if len(filtered) == 0 {
		// An over-tight filter falls back to the full ranked set.
		for _, sc := range ranked {
			filtered = append(filtered, sc.Record)
		}
	}

	keywords := q.DeptHint
	if keywords == "" {
		keywords = campus
	}
	if keywords == "" {
		keywords = "faculty"
	}

	return &routed{
		answer:         domain.Answer{Reply: formatFacultyRows(filtered), Source: domain.SourceFaculty},
		verifyKeywords: keywords,
	}
}

// handleFacultySingle accepts the top-ranked candidate only under the double
// gate: a strong top score (absolute, probable-name-assisted, or by score
// gap) AND either a lone candidate or a gap of at least singleScoreGap.
func handleFacultySingle(q *domain.Query, k *kb.KnowledgeBase) *routed {
	ranked := rankFaculty(q, k)
	if len(ranked) == 0 {
		return nil
	}

	top := ranked[0]
	gap := top.Score
	if len(ranked) > 1 {
		gap = top.Score - ranked[1].Score
	}

	strongTop := top.Score >= singleStrongScore ||
		(q.ProbableName != "" && top.Score >= singleNamedScore) ||
		gap >= singleScoreGap
	clearSingle := (len(ranked) == 1 || gap >= singleScoreGap) && strongTop
	if !clearSingle {
		return nil
	}

	f := top.Record
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteString(" — ")
	b.WriteString(f.Role)
	appendField(&b, ", ", f.Department)
	appendField(&b, " | ", f.School)
	appendField(&b, " | ", f.Campus)
	appendField(&b, " | ", f.Email)
	appendField(&b, " | ", f.Phone)
	appendField(&b, " | ", f.ProfileURL)

	var urls []string
	if f.ProfileURL != "" {
		urls = []string{f.ProfileURL}
	}
	return &routed{
		answer:         domain.Answer{Reply: b.String(), Source: domain.SourceFaculty},
		verifyKeywords: f.Name,
		verifyURLs:     urls,
	}
}
