package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/centai/centai/internal/core/domain"
	"github.com/centai/centai/internal/core/ports"
	"github.com/centai/centai/internal/kb"
)

// Recorder receives routing observations. Implementations live in
// observability; a nil recorder is replaced by a no-op.
type Recorder interface {
	ObserveAnswer(source string)
	ObserveHandler(name string, seconds float64)
	ObserveFallback(outcome string)
	ObserveVerification(ok bool)
}

type nopRecorder struct{}

func (nopRecorder) ObserveAnswer(string)           {}
func (nopRecorder) ObserveHandler(string, float64) {}
func (nopRecorder) ObserveFallback(string)         {}
func (nopRecorder) ObserveVerification(bool)       {}

// ChatConfig carries the tunables of the dispatcher.
type ChatConfig struct {
	// ProviderName tags fallback answers, e.g. "ollama" →
	// "ollama+local-context".
	ProviderName    string
	ProviderTimeout time.Duration
	VerifyTimeout   time.Duration
}

func (c ChatConfig) normalize() ChatConfig {
	out := c
	if out.ProviderName == "" {
		out.ProviderName = "ollama"
	}
	if out.ProviderTimeout <= 0 {
		out.ProviderTimeout = 25 * time.Second
	}
	if out.VerifyTimeout <= 0 {
		out.VerifyTimeout = 2500 * time.Millisecond
	}
	return out
}

// ChatUseCase orchestrates the deterministic handler chain and, on a total
// miss, the constrained generative-model fallback.
type ChatUseCase struct {
	source    kb.Source
	generator ports.AnswerGenerator
	verifier  ports.SourceVerifier
	recorder  Recorder
	logger    *slog.Logger
	cfg       ChatConfig
	handlers  []intentHandler
}

// NewChatUseCase wires the dispatcher. generator may be nil (provider
// disabled: the fallback answers the fixed unknown sentence); verifier may
// be nil (verification skipped).
func NewChatUseCase(
	source kb.Source,
	generator ports.AnswerGenerator,
	verifier ports.SourceVerifier,
	recorder Recorder,
	logger *slog.Logger,
	cfg ChatConfig,
) *ChatUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatUseCase{
		source:    source,
		generator: generator,
		verifier:  verifier,
		recorder:  recorder,
		logger:    logger,
		cfg:       cfg.normalize(),
		handlers:  intentHandlers(),
	}
}

// Respond routes one message through the handler chain; the first handler
// that accepts wins. Only a total miss reaches the fallback provider.
func (uc *ChatUseCase) Respond(ctx context.Context, message string, history []domain.ChatTurn) (*domain.Answer, error) {
	if strings.TrimSpace(message) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "chat", errors.New("message is required"))
	}

	k, err := uc.source.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}

	q := parseQuery(message, k)
	for _, h := range uc.handlers {
		start := time.Now()
		res := uc.tryHandler(h, q, k)
		uc.recorder.ObserveHandler(h.name, time.Since(start).Seconds())
		if res == nil {
			continue
		}
		uc.verifyAsync(res.verifyKeywords, res.verifyURLs)
		uc.recorder.ObserveAnswer(res.answer.Source)
		answer := res.answer
		return &answer, nil
	}

	answer := uc.fallback(ctx, q, k, history)
	uc.verifyAsync(q.Raw, nil)
	uc.recorder.ObserveAnswer(answer.Source)
	return answer, nil
}

// tryHandler isolates one handler; a panicking candidate lookup declines the
// query instead of failing the request.
func (uc *ChatUseCase) tryHandler(h intentHandler, q *domain.Query, k *kb.KnowledgeBase) (res *routed) {
	defer func() {
		if r := recover(); r != nil {
			uc.logger.Error("handler_panic", "handler", h.name, "panic", fmt.Sprint(r))
			res = nil
		}
	}()
	return h.handle(q, k)
}

// fallback defers to the generative-model collaborator with a bounded
// context. Every failure degrades to the fixed unknown sentence; nothing is
// retried.
func (uc *ChatUseCase) fallback(ctx context.Context, q *domain.Query, k *kb.KnowledgeBase, history []domain.ChatTurn) *domain.Answer {
	degraded := &domain.Answer{Reply: domain.UnknownReply, Source: domain.SourceLocalContext}
	if uc.generator == nil {
		uc.recorder.ObserveFallback("disabled")
		return degraded
	}

	turns := make([]domain.ChatTurn, 0, len(history)+2)
	turns = append(turns, domain.ChatTurn{Role: "system", Content: buildFallbackSystem(q, k)})
	turns = append(turns, history...)
	turns = append(turns, domain.ChatTurn{Role: "user", Content: q.Raw})

	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.ProviderTimeout)
	defer cancel()

	reply, err := uc.generator.Chat(callCtx, turns)
	if err != nil {
		uc.logger.Warn("fallback_provider_error", "error", err)
		uc.recorder.ObserveFallback("error")
		return degraded
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		uc.recorder.ObserveFallback("empty")
		return degraded
	}

	uc.recorder.ObserveFallback("ok")
	return &domain.Answer{Reply: reply, Source: uc.cfg.ProviderName + "+local-context"}
}

// verifyAsync fires the best-effort source verification on a detached,
// time-bounded context. The outcome feeds metrics and a debug log only and
// never changes the answer already computed.
func (uc *ChatUseCase) verifyAsync(keywords string, urls []string) {
	if uc.verifier == nil || keywords == "" {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				uc.logger.Error("verification_panic", "panic", fmt.Sprint(r))
			}
		}()
		verifyCtx, cancel := context.WithTimeout(context.Background(), uc.cfg.VerifyTimeout)
		defer cancel()
		ok := uc.verifier.Verify(verifyCtx, keywords, urls)
		uc.recorder.ObserveVerification(ok)
		uc.logger.Debug("source_verification", "verified", ok, "keywords", keywords)
	}()
}
