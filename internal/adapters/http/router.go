package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/centai/centai/internal/core/domain"
	"github.com/centai/centai/internal/core/ports"
	"github.com/centai/centai/internal/observability/metrics"
)

// TrafficConfig bounds inbound traffic. Zero values disable the
// corresponding gate.
type TrafficConfig struct {
	RateLimitRPS   float64
	RateLimitBurst int
	MaxInFlight    int
	InFlightWait   time.Duration
}

type Router struct {
	chat    ports.ChatService
	metrics *metrics.ServerMetrics
	traffic TrafficConfig
}

func NewRouter(chat ports.ChatService, m *metrics.ServerMetrics, traffic TrafficConfig) *Router {
	return &Router{
		chat:    chat,
		metrics: m,
		traffic: traffic,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/chat", rt.handleChat)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = backpressureMiddleware(handler, rt.traffic.MaxInFlight, rt.traffic.InFlightWait)
	handler = rateLimitMiddleware(handler, rt.traffic.RateLimitRPS, rt.traffic.RateLimitBurst)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(handler)
	}
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type chatRequest struct {
	Message             string            `json:"message"`
	ConversationHistory []domain.ChatTurn `json:"conversationHistory"`
	// History is an accepted alias for ConversationHistory.
	History []domain.ChatTurn `json:"history"`
}

func (rt *Router) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Message is required"})
		return
	}
	history := req.ConversationHistory
	if len(history) == 0 {
		history = req.History
	}

	answer, err := rt.chat.Respond(r.Context(), req.Message, history)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, answer)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
