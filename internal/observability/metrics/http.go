package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics owns the API server's Prometheus registry: generic HTTP
// metrics plus the routing core's answer/handler/fallback/verification
// counters. It implements the usecase Recorder contract.
type ServerMetrics struct {
	registry *prometheus.Registry
	service  string

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	answersTotal      *prometheus.CounterVec
	handlerDuration   *prometheus.HistogramVec
	fallbackTotal     *prometheus.CounterVec
	verificationTotal *prometheus.CounterVec
}

func NewServerMetrics(service string) *ServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "centai",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "centai",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "centai",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	answersTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "centai",
			Subsystem: "chat",
			Name:      "answers_total",
			Help:      "Answers emitted, labeled by source tag.",
		},
		[]string{"service", "source"},
	)
	handlerDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "centai",
			Subsystem: "chat",
			Name:      "handler_duration_seconds",
			Help:      "Deterministic handler evaluation time in seconds.",
			Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01},
		},
		[]string{"service", "handler"},
	)
	fallbackTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "centai",
			Subsystem: "chat",
			Name:      "fallback_total",
			Help:      "Generative-model fallback invocations by outcome.",
		},
		[]string{"service", "outcome"},
	)
	verificationTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "centai",
			Subsystem: "chat",
			Name:      "source_verification_total",
			Help:      "Best-effort source verification results.",
		},
		[]string{"service", "result"},
	)

	registry.MustRegister(
		requestTotal, requestDuration, requestInFlight,
		answersTotal, handlerDuration, fallbackTotal, verificationTotal,
	)

	return &ServerMetrics{
		registry: registry,
		service:  service,

		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		requestInFlight: requestInFlight,

		answersTotal:      answersTotal,
		handlerDuration:   handlerDuration,
		fallbackTotal:     fallbackTotal,
		verificationTotal: verificationTotal,
	}
}

// Handler exposes the registry for the /metrics endpoint.
func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware instruments HTTP handling with request count, duration and
// in-flight gauges.
func (m *ServerMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		recorder := &statusCapture{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(m.service, r.Method, r.URL.Path, strconv.Itoa(recorder.statusCode)).Inc()
		m.requestDuration.WithLabelValues(m.service, r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

func (m *ServerMetrics) ObserveAnswer(source string) {
	m.answersTotal.WithLabelValues(m.service, source).Inc()
}

func (m *ServerMetrics) ObserveHandler(name string, seconds float64) {
	m.handlerDuration.WithLabelValues(m.service, name).Observe(seconds)
}

func (m *ServerMetrics) ObserveFallback(outcome string) {
	m.fallbackTotal.WithLabelValues(m.service, outcome).Inc()
}

func (m *ServerMetrics) ObserveVerification(ok bool) {
	result := "miss"
	if ok {
		result = "hit"
	}
	m.verificationTotal.WithLabelValues(m.service, result).Inc()
}

type statusCapture struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusCapture) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
