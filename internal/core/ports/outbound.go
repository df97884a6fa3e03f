package ports

import (
	"context"

	"github.com/centai/centai/internal/core/domain"
)

// AnswerGenerator is the generative-model fallback collaborator. It receives
// the full message list (system prompt with bounded context, prior turns,
// latest message) and returns free text; an empty reply means the provider
// had nothing usable.
type AnswerGenerator interface {
	Chat(ctx context.Context, turns []domain.ChatTurn) (string, error)
}

// SourceVerifier performs the best-effort reachability/keyword check against
// the permitted source domains. The result only feeds logs and metrics and
// never changes an answer.
type SourceVerifier interface {
	Verify(ctx context.Context, keywords string, urls []string) bool
}
