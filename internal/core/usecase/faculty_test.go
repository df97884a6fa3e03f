package usecase

import (
	"fmt"
	"strings"
	"testing"

	"github.com/centai/centai/internal/core/domain"
	"github.com/centai/centai/internal/kb"
)

func TestScoreFacultyRecord(t *testing.T) {
	rec := domain.FacultyRecord{
		Name:       "Dr. Sujata Chakravarty",
		Role:       "Dean",
		Department: "Computer Science and Engineering",
		Email:      "sujata.chakravarty@cutm.ac.in",
	}

	tests := []struct {
		name  string
		words []string
		want  int
	}{
		// Name and email carry every word: (6+2)*2. Department has none.
		{"full name", []string{"sujata", "chakravarty"}, 16},
		// Name partial (6), email partial (2), department partial (4).
		{"mixed partials", []string{"sujata", "science"}, 12},
		{"no overlap", []string{"hostel"}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := scoreFacultyRecord(rec, tc.words); got != tc.want {
				t.Fatalf("score(%v) = %d, want %d", tc.words, got, tc.want)
			}
		})
	}
}

func TestScoreIsMonotonicInMatchedWords(t *testing.T) {
	rec := domain.FacultyRecord{Name: "Anil Gupta", Department: "Chemistry"}
	one := scoreFacultyRecord(rec, []string{"anil"})
	two := scoreFacultyRecord(rec, []string{"anil", "chemistry"})
	if two < one {
		t.Fatalf("adding a matched word lowered the score: %d -> %d", one, two)
	}
}

func TestRankFacultySortsAndCaps(t *testing.T) {
	k := &kb.KnowledgeBase{}
	for i := 0; i < 40; i++ {
		k.Faculty = append(k.Faculty, domain.FacultyRecord{
			Name: fmt.Sprintf("Dr. Widget %02d", i),
			Role: "Professor",
		})
	}
	k.Faculty = append(k.Faculty, domain.FacultyRecord{
		Name: "Dr. Widget Prime", Role: "Professor", Department: "Widget Studies",
	})

	ranked := rankFaculty(parseQuery("find widget studies people", k), k)
	if len(ranked) != facultyCandidateCap {
		t.Fatalf("ranked %d candidates, want the cap %d", len(ranked), facultyCandidateCap)
	}
	if ranked[0].Record.Name != "Dr. Widget Prime" {
		t.Fatalf("top candidate = %q, want the department match first", ranked[0].Record.Name)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatal("ranking is not descending")
		}
	}
}

func TestHandleFacultySingleAcceptsClearWinner(t *testing.T) {
	k := newTestKB()
	res := route(handleFacultySingle, k, "who is sujata chakravarty")
	if res == nil {
		t.Fatal("expected a single-faculty answer")
	}
	want := "Dr. Sujata Chakravarty — Dean, Computer Science and Engineering" +
		" | School of Engineering and Technology | Paralakhemundi" +
		" | sujata.chakravarty@cutm.ac.in | https://faculty.cutm.ac.in/sujata-chakravarty/"
	if res.answer.Reply != want {
		t.Fatalf("Reply = %q\nwant %q", res.answer.Reply, want)
	}
	if res.answer.Source != domain.SourceFaculty {
		t.Fatalf("Source = %q", res.answer.Source)
	}
	if len(res.verifyURLs) != 1 || res.verifyURLs[0] != "https://faculty.cutm.ac.in/sujata-chakravarty/" {
		t.Fatalf("verifyURLs = %v", res.verifyURLs)
	}
}

func TestHandleFacultySingleRejectsCloseCall(t *testing.T) {
	// Two equally-scored moderate candidates: neither the absolute bar nor
	// the score gap clears the gate.
	k := &kb.KnowledgeBase{Faculty: []domain.FacultyRecord{
		{Name: "Dr. A", Role: "Professor", School: "School of Engineering"},
		{Name: "Dr. B", Role: "Professor", School: "School of Engineering"},
	}}
	if res := route(handleFacultySingle, k, "professor engineering"); res != nil {
		t.Fatalf("ambiguous candidates must fall through, got %q", res.answer.Reply)
	}
}

func TestHandleFacultySingleRejectsWeakLoneCandidate(t *testing.T) {
	k := &kb.KnowledgeBase{Faculty: []domain.FacultyRecord{
		{Name: "Dr. A", Department: "Chemistry"},
	}}
	if res := route(handleFacultySingle, k, "chemistry dept people"); res != nil {
		t.Fatalf("a weak lone candidate must fall through, got %q", res.answer.Reply)
	}
}

func TestHandleFacultySingleGateClauses(t *testing.T) {
	// A strong top score alone is not enough: a second candidate within the
	// gap still blocks acceptance.
	k := &kb.KnowledgeBase{Faculty: []domain.FacultyRecord{
		{Name: "CSE Centre Lead"},
		{Name: "Dr. B", Role: "CSE"},
	}}
	if res := route(handleFacultySingle, k, "who is cse"); res != nil {
		t.Fatalf("close second candidate must block, got %q", res.answer.Reply)
	}

	// A sub-strong top score is accepted when the gap rule holds.
	k = &kb.KnowledgeBase{Faculty: []domain.FacultyRecord{
		{Name: "Dr. A", Role: "CSE Head"},
		{Name: "Dr. B", Email: "cse@cutm.ac.in"},
	}}
	res := route(handleFacultySingle, k, "who is cse")
	if res == nil {
		t.Fatal("a clear score gap must accept the top candidate")
	}
	if !strings.HasPrefix(res.answer.Reply, "Dr. A — CSE Head") {
		t.Fatalf("Reply = %q", res.answer.Reply)
	}
}

func TestHandleFacultyListByCampus(t *testing.T) {
	k := newTestKB()
	res := route(handleFacultyList, k, "list faculty at paralakhemundi")
	if res == nil {
		t.Fatal("expected a faculty list")
	}
	lines := strings.Split(res.answer.Reply, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d rows, want the two Paralakhemundi faculty:\n%s", len(lines), res.answer.Reply)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "• ") {
			t.Fatalf("row %q must be a bullet", line)
		}
		if !strings.Contains(line, "Paralakhemundi") {
			t.Fatalf("row %q leaked another campus", line)
		}
	}
	if res.answer.Source != domain.SourceFaculty {
		t.Fatalf("Source = %q", res.answer.Source)
	}
}

func TestHandleFacultyListAsksForCampus(t *testing.T) {
	k := newTestKB()
	res := route(handleFacultyList, k, "faculty dean")
	if res == nil {
		t.Fatal("expected a follow-up")
	}
	if res.answer.Source != domain.SourceFollowup {
		t.Fatalf("Source = %q, want followup", res.answer.Source)
	}
	if res.answer.Reply != "Do you want the faculty list for a specific campus?" {
		t.Fatalf("Reply = %q", res.answer.Reply)
	}
	names := k.CampusNames()
	if len(res.answer.SuggestedReplies) != len(names) {
		t.Fatalf("SuggestedReplies = %v, want all campuses", res.answer.SuggestedReplies)
	}
}

func TestFormatFacultyRowsCapsOutput(t *testing.T) {
	rows := make([]domain.FacultyRecord, 0, facultyListCap+10)
	for i := 0; i < facultyListCap+10; i++ {
		rows = append(rows, domain.FacultyRecord{
			Name: fmt.Sprintf("Dr. %02d", i), Role: "Professor",
		})
	}
	out := formatFacultyRows(rows)
	if got := strings.Count(out, "• "); got != facultyListCap {
		t.Fatalf("rendered %d rows, want the cap %d", got, facultyListCap)
	}
}

func TestFormatFacultyRowsEmpty(t *testing.T) {
	if got := formatFacultyRows(nil); got != "No matching faculty found." {
		t.Fatalf("got %q", got)
	}
}

func TestDeptMatchesHint(t *testing.T) {
	cse := domain.FacultyRecord{Department: "Computer Science and Engineering"}
	mech := domain.FacultyRecord{Department: "Mechanical Engineering"}

	if !deptMatchesHint("cse", cse) {
		t.Fatal("cse must match computer science via synonyms")
	}
	if deptMatchesHint("cse", mech) {
		t.Fatal("cse must not match mechanical")
	}
	if !deptMatchesHint("mechanical", mech) {
		t.Fatal("plain substring must match")
	}
	if !deptMatchesHint("", mech) {
		t.Fatal("empty hint matches everything")
	}
}
