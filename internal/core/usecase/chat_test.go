package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/centai/centai/internal/core/domain"
	"github.com/centai/centai/internal/core/ports"
	"github.com/centai/centai/internal/kb"
)

type fakeGenerator struct {
	mu    sync.Mutex
	reply string
	err   error
	turns []domain.ChatTurn
	calls int
}

func (f *fakeGenerator) Chat(_ context.Context, turns []domain.ChatTurn) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.turns = turns
	return f.reply, f.err
}

type fakeVerifier struct {
	keywords chan string
}

func newFakeVerifier() *fakeVerifier {
	return &fakeVerifier{keywords: make(chan string, 1)}
}

func (f *fakeVerifier) Verify(_ context.Context, keywords string, _ []string) bool {
	f.keywords <- keywords
	return true
}

type spyRecorder struct {
	mu        sync.Mutex
	answers   []string
	fallbacks []string
}

func (s *spyRecorder) ObserveAnswer(source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = append(s.answers, source)
}

func (s *spyRecorder) ObserveHandler(string, float64) {}

func (s *spyRecorder) ObserveFallback(outcome string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallbacks = append(s.fallbacks, outcome)
}

func (s *spyRecorder) ObserveVerification(bool) {}

func (s *spyRecorder) lastFallback() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.fallbacks) == 0 {
		return ""
	}
	return s.fallbacks[len(s.fallbacks)-1]
}

func newChatUC(gen *fakeGenerator, verifier *fakeVerifier, rec Recorder) *ChatUseCase {
	var g ports.AnswerGenerator
	if gen != nil {
		g = gen
	}
	var v ports.SourceVerifier
	if verifier != nil {
		v = verifier
	}
	return NewChatUseCase(kb.NewStatic(newTestKB()), g, v, rec, nil, ChatConfig{})
}

func TestRespondRejectsEmptyMessage(t *testing.T) {
	uc := newChatUC(&fakeGenerator{}, nil, nil)
	_, err := uc.Respond(context.Background(), "   ", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRespondDeterministicHitSkipsProvider(t *testing.T) {
	gen := &fakeGenerator{reply: "never used"}
	uc := newChatUC(gen, nil, nil)

	ans, err := uc.Respond(context.Background(), "Who is the VC?", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if ans.Source != domain.SourceKeyContacts {
		t.Fatalf("Source = %q", ans.Source)
	}
	if ans.Reply != "The Vice Chancellor at Centurion University is Prof. Supriya Pattanayak (Phone: +91-111)." {
		t.Fatalf("Reply = %q", ans.Reply)
	}
	if gen.calls != 0 {
		t.Fatalf("provider called %d times on a deterministic hit", gen.calls)
	}
}

func TestRespondFallbackUsesProvider(t *testing.T) {
	gen := &fakeGenerator{reply: "The semester starts in July."}
	rec := &spyRecorder{}
	uc := newChatUC(gen, nil, rec)
	history := []domain.ChatTurn{{Role: "user", Content: "hi"}, {Role: "assistant", Content: "hello"}}

	ans, err := uc.Respond(context.Background(), "when does the semester start", history)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if ans.Reply != "The semester starts in July." {
		t.Fatalf("Reply = %q", ans.Reply)
	}
	if ans.Source != "ollama+local-context" {
		t.Fatalf("Source = %q", ans.Source)
	}
	if rec.lastFallback() != "ok" {
		t.Fatalf("fallback outcome = %q", rec.lastFallback())
	}

	// system + 2 history turns + user message
	if len(gen.turns) != 4 {
		t.Fatalf("provider got %d turns, want 4", len(gen.turns))
	}
	if gen.turns[0].Role != "system" || !strings.Contains(gen.turns[0].Content, contextInstruction) {
		t.Fatalf("first turn = %+v, want the system context", gen.turns[0])
	}
	if gen.turns[1] != history[0] || gen.turns[2] != history[1] {
		t.Fatal("history must pass through in order")
	}
	last := gen.turns[len(gen.turns)-1]
	if last.Role != "user" || last.Content != "when does the semester start" {
		t.Fatalf("last turn = %+v", last)
	}
}

func TestRespondFallbackDegradesOnProviderError(t *testing.T) {
	rec := &spyRecorder{}
	uc := newChatUC(&fakeGenerator{err: errors.New("boom")}, nil, rec)

	ans, err := uc.Respond(context.Background(), "when does the semester start", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if ans.Reply != domain.UnknownReply {
		t.Fatalf("Reply = %q, want the fixed unknown sentence", ans.Reply)
	}
	if ans.Source != domain.SourceLocalContext {
		t.Fatalf("Source = %q", ans.Source)
	}
	if rec.lastFallback() != "error" {
		t.Fatalf("fallback outcome = %q", rec.lastFallback())
	}
}

func TestRespondFallbackDegradesOnEmptyReply(t *testing.T) {
	rec := &spyRecorder{}
	uc := newChatUC(&fakeGenerator{reply: "   "}, nil, rec)

	ans, err := uc.Respond(context.Background(), "when does the semester start", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if ans.Reply != domain.UnknownReply {
		t.Fatalf("Reply = %q", ans.Reply)
	}
	if rec.lastFallback() != "empty" {
		t.Fatalf("fallback outcome = %q", rec.lastFallback())
	}
}

func TestRespondFallbackWithProviderDisabled(t *testing.T) {
	rec := &spyRecorder{}
	uc := newChatUC(nil, nil, rec)

	ans, err := uc.Respond(context.Background(), "when does the semester start", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if ans.Reply != domain.UnknownReply || ans.Source != domain.SourceLocalContext {
		t.Fatalf("answer = %+v", ans)
	}
	if rec.lastFallback() != "disabled" {
		t.Fatalf("fallback outcome = %q", rec.lastFallback())
	}
}

func TestRespondFiresVerificationAsynchronously(t *testing.T) {
	verifier := newFakeVerifier()
	uc := newChatUC(&fakeGenerator{}, verifier, nil)

	_, err := uc.Respond(context.Background(), "Who is the VC?", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}

	select {
	case kw := <-verifier.keywords:
		if kw != "Prof. Supriya Pattanayak" {
			t.Fatalf("verify keywords = %q", kw)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("verification never fired")
	}
}

func TestRespondRoundTripsOwnReplies(t *testing.T) {
	uc := newChatUC(nil, nil, nil)
	seeds := []string{
		"Who is the VC?",
		"hostels at bhubaneswar",
		"who are the promoters",
		"clubs at bhubaneswar",
	}
	for _, seed := range seeds {
		first, err := uc.Respond(context.Background(), seed, nil)
		if err != nil {
			t.Fatalf("Respond(%q) error = %v", seed, err)
		}
		second, err := uc.Respond(context.Background(), first.Reply, nil)
		if err != nil {
			t.Fatalf("re-feeding %q errored: %v", first.Reply, err)
		}
		if second.Reply == "" || second.Source == "" {
			t.Fatalf("re-fed reply produced an empty answer: %+v", second)
		}
	}
}

func TestRespondHandlerPriority(t *testing.T) {
	// "promoters" also matches the contact intent; the promoter handler must
	// win because it runs first.
	uc := newChatUC(nil, nil, nil)
	ans, err := uc.Respond(context.Background(), "give me the contact of the promoters", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if !strings.HasPrefix(ans.Reply, "The promoters of Centurion University are ") {
		t.Fatalf("Reply = %q, want the promoter answer", ans.Reply)
	}
}
