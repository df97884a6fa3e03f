package usecase

import (
	"encoding/json"
	"strings"

	"github.com/centai/centai/internal/core/domain"
	"github.com/centai/centai/internal/kb"
	"github.com/centai/centai/internal/textproc"
)

// Bounds on the fallback context handed to the generative-model provider.
const (
	contextFacultyLimit = 6
	contextClubLimit    = 3
	contextHostelLimit  = 3
	contextMaxChars     = 11000
)

// contextInstruction restricts the provider to the supplied context and the
// fixed unknown sentence.
const contextInstruction = `Use ONLY Centurion University info from the provided Context. If an answer is not directly supported, reply with: "I don't know from the provided sources." Keep answers brief.`

// fallbackContext is the bounded, category-relevant knowledge-base slice
// serialized for the provider.
type fallbackContext struct {
	Contacts []domain.ContactRecord `json:"contacts"`
	Faculty  []domain.FacultyRecord `json:"faculty"`
	Clubs    []domain.ClubRecord    `json:"clubs"`
	Hostels  []domain.HostelRecord  `json:"hostels"`
}

func buildFallbackContext(q *domain.Query, k *kb.KnowledgeBase) fallbackContext {
	ctx := fallbackContext{
		Contacts: make([]domain.ContactRecord, 0, 1),
		Faculty:  make([]domain.FacultyRecord, 0, contextFacultyLimit),
		Clubs:    make([]domain.ClubRecord, 0, contextClubLimit),
		Hostels:  make([]domain.HostelRecord, 0, contextHostelLimit),
	}

	if contact, _, ok := bestContact(q, k); ok {
		ctx.Contacts = append(ctx.Contacts, contact)
	}

	for _, sc := range rankFaculty(q, k) {
		if len(ctx.Faculty) == contextFacultyLimit {
			break
		}
		ctx.Faculty = append(ctx.Faculty, sc.Record)
	}

	for _, club := range k.Clubs {
		if len(ctx.Clubs) == contextClubLimit {
			break
		}
		if containsAnyWord(q.Normalized, textproc.Tokens(textproc.Normalize(club.Name))) {
			ctx.Clubs = append(ctx.Clubs, club)
		}
	}

	for _, hostel := range k.Hostels {
		if len(ctx.Hostels) == contextHostelLimit {
			break
		}
		campus := textproc.Normalize(hostel.Campus)
		name := textproc.Normalize(hostel.Name)
		if (campus != "" && strings.Contains(q.Normalized, campus)) ||
			(name != "" && strings.Contains(q.Normalized, name)) {
			ctx.Hostels = append(ctx.Hostels, hostel)
		}
	}

	return ctx
}

// buildFallbackSystem assembles the system message for the provider: the
// knowledge-base system prompt, the context-only instruction, the size-capped
// JSON context and the permitted source domains.
func buildFallbackSystem(q *domain.Query, k *kb.KnowledgeBase) string {
	blob, err := json.Marshal(buildFallbackContext(q, k))
	if err != nil {
		blob = []byte("{}")
	}
	if len(blob) > contextMaxChars {
		blob = blob[:contextMaxChars]
	}

	var b strings.Builder
	b.WriteString(k.SystemPrompt)
	b.WriteString("\n\n")
	b.WriteString(contextInstruction)
	b.WriteString("\n")
	b.WriteString("Context (from internal JSONs):\n")
	b.Write(blob)
	b.WriteString("\n")
	b.WriteString("Permitted source domains: ")
	b.WriteString(strings.Join(k.SourceDomains, ", "))
	return b.String()
}
