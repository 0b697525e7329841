// Package metrics exposes the service's prometheus collectors on a private registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portfolio_chatbot"

// Metrics holds the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	askTotal       *prometheus.CounterVec
	askLatency     *prometheus.HistogramVec
	fallbackTopics *prometheus.CounterVec
	llmLatency     *prometheus.HistogramVec
	rateLimited    *prometheus.CounterVec
	persistTotal   *prometheus.CounterVec
}

// New creates the collectors and registers them, with the Go and process collectors, on a new registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		askTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ask_total",
			Help:      "Chat turns handled, by reply status",
		}, []string{"status"}),

		askLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ask_duration_seconds",
			Help:      "End-to-end latency of chat turns",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 15, 30, 45},
		}, []string{"status"}),

		fallbackTopics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_topic_total",
			Help:      "Fallback replies, by matched topic",
		}, []string{"topic"}),

		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_request_duration_seconds",
			Help:      "Latency of upstream completion calls, including retries",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 45},
		}, []string{"outcome"}),

		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-client rate limit",
		}, []string{"route"}),

		persistTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_persist_total",
			Help:      "Session snapshot saves, by result",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.askTotal, m.askLatency, m.fallbackTopics, m.llmLatency, m.rateLimited, m.persistTotal,
	)
	return m
}

// RegisterGauge exposes a value computed on scrape, e.g. the live session count.
func (m *Metrics) RegisterGauge(name, help string, fn func() float64) {
	if m == nil {
		return
	}
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, fn))
}

// ObserveAsk records one chat turn.
func (m *Metrics) ObserveAsk(status string, start time.Time) {
	if m == nil {
		return
	}
	m.askTotal.WithLabelValues(status).Inc()
	m.askLatency.WithLabelValues(status).Observe(time.Since(start).Seconds())
}

// IncFallbackTopic records which canned topic answered.
func (m *Metrics) IncFallbackTopic(topic string) {
	if m == nil {
		return
	}
	m.fallbackTopics.WithLabelValues(topic).Inc()
}

// ObserveLLM records an upstream call; outcome is "success" or "error".
func (m *Metrics) ObserveLLM(outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.llmLatency.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
}

// IncRateLimited records a 429.
func (m *Metrics) IncRateLimited(route string) {
	if m == nil {
		return
	}
	m.rateLimited.WithLabelValues(route).Inc()
}

// IncPersist records a snapshot save; result is "success" or "error".
func (m *Metrics) IncPersist(result string) {
	if m == nil {
		return
	}
	m.persistTotal.WithLabelValues(result).Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
