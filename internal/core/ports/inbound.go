package ports

import (
	"context"

	"github.com/centai/centai/internal/core/domain"
)

// ChatService is the inbound contract for answering one user message.
// History is passed through unmodified; the service holds no dialogue state.
type ChatService interface {
	Respond(ctx context.Context, message string, history []domain.ChatTurn) (*domain.Answer, error)
}
