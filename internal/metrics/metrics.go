// Package metrics holds the Prometheus collectors of the ai-chat service.
package metrics

import (
	"context"
	"time"

	"finanzas-ai/internal/llm"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ai_chat"

// Request outcome labels.
const (
	StatusOK              = "ok"
	StatusValidationError = "validation_error"
	StatusParseError      = "parse_error"
	StatusError           = "error"
)

type Metrics struct {
	Requests         *prometheus.CounterVec
	ProviderDuration *prometheus.HistogramVec
}

// New registers the collectors on reg. Each registry can hold one set.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Handled ai-chat requests by mode and outcome.",
		}, []string{"mode", "status"}),
		ProviderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_duration_seconds",
			Help:      "Latency of text-generation provider calls.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"provider", "model"}),
	}
}

func (m *Metrics) ObserveRequest(mode, status string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(mode, status).Inc()
}

// InstrumentGenerator times every provider call made through next,
// failed calls included.
func (m *Metrics) InstrumentGenerator(provider string, next llm.Generator) llm.Generator {
	if m == nil {
		return next
	}
	return llm.GeneratorFunc(func(ctx context.Context, req llm.Request) (*llm.Response, error) {
		start := time.Now()
		resp, err := next.Generate(ctx, req)
		m.ProviderDuration.WithLabelValues(provider, req.Model).Observe(time.Since(start).Seconds())
		return resp, err
	})
}
