// Package metrics exposes the dialogue engine's prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "travel_planner"

// Metrics groups the collectors recorded by the engine and its providers.
type Metrics struct {
	registry *prometheus.Registry

	Turns           *prometheus.CounterVec
	NodeVisits      *prometheus.CounterVec
	GuardrailBlocks *prometheus.CounterVec
	LLMLatency      *prometheus.HistogramVec
	LLMFailures     *prometheus.CounterVec
	TurnDuration    prometheus.Histogram
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Turns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Dialogue turns processed, by outcome.",
		}, []string{"outcome"}),
		NodeVisits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "node_visits_total",
			Help:      "Workflow node executions.",
		}, []string{"node"}),
		GuardrailBlocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guardrail_blocks_total",
			Help:      "Turns rejected by the guardrail, by category and stage.",
		}, []string{"category", "stage"}),
		LLMLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_request_duration_seconds",
			Help:      "Latency of completion provider calls.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 8),
		}, []string{"provider"}),
		LLMFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_request_failures_total",
			Help:      "Failed completion provider calls.",
		}, []string{"provider"}),
		TurnDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "turn_duration_seconds",
			Help:      "End-to-end turn processing time.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		m.Turns,
		m.NodeVisits,
		m.GuardrailBlocks,
		m.LLMLatency,
		m.LLMFailures,
		m.TurnDuration,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveLLM matches llmprovider.Observer.
func (m *Metrics) ObserveLLM(provider string, elapsed time.Duration, err error) {
	m.LLMLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
	if err != nil {
		m.LLMFailures.WithLabelValues(provider).Inc()
	}
}
