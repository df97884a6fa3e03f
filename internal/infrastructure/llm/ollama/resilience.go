package ollama

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/centai/centai/internal/core/domain"
	"github.com/centai/centai/internal/infrastructure/resilience"
)

// classifyOllamaError decides breaker accounting: caller cancellations and
// client-side HTTP errors are not provider failures.
func classifyOllamaError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{RecordFailure: false}
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return resilience.ErrorClassification{
			RecordFailure: isServerSideHTTPStatus(statusErr.StatusCode),
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return resilience.ErrorClassification{RecordFailure: true}
	}

	return resilience.ErrorClassification{RecordFailure: true}
}

// wrapTemporaryIfNeeded tags provider unavailability as a temporary failure
// so callers can degrade instead of surfacing it.
func wrapTemporaryIfNeeded(operation string, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsKind(err, domain.ErrTemporary) {
		return err
	}

	if resilience.IsCircuitOpen(err) || classifyOllamaError(err).RecordFailure {
		return domain.WrapError(domain.ErrTemporary, operation, err)
	}
	return err
}

func isServerSideHTTPStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests,
		http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
