// Package ollama is the generative-model fallback collaborator, speaking the
// Ollama chat API. The client is invoked at most once per request and never
// retries; sustained failures open a circuit breaker.
package ollama

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/centai/centai/internal/core/domain"
	"github.com/centai/centai/internal/infrastructure/resilience"
)

type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	exec       *resilience.Executor
}

func New(baseURL, model string, exec *resilience.Executor) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		exec:       exec,
	}
}

// Chat sends the full message list (system context, prior turns, latest
// message) and returns the model's reply text.
func (c *Client) Chat(ctx context.Context, turns []domain.ChatTurn) (string, error) {
	request := map[string]any{
		"model":    c.model,
		"messages": turns,
		"stream":   false,
	}

	var response struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	}

	call := func(ctx context.Context) error {
		return c.postJSON(ctx, "/api/chat", request, &response, "chat")
	}
	var err error
	if c.exec != nil {
		err = c.exec.Execute(ctx, "ollama_chat", call, classifyOllamaError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return "", wrapTemporaryIfNeeded("ollama chat", err)
	}
	return strings.TrimSpace(response.Message.Content), nil
}
