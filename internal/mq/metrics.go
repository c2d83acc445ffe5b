package mq

import (
	"github.com/avc-dev/shortlink/internal/idempotency"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what happens to stats messages.
type Metrics struct {
	outcomes        *prometheus.CounterVec
	publishFailures prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "shortlink",
				Name:      "idempotency_outcomes_total",
				Help:      "Stats messages by idempotent processing outcome.",
			},
			[]string{"outcome"},
		),
		publishFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "shortlink",
				Name:      "stats_publish_failures_total",
				Help:      "Stats messages that could not be published.",
			},
		),
	}

	reg.MustRegister(m.outcomes, m.publishFailures)
	return m
}

func (m *Metrics) observeOutcome(outcome idempotency.Outcome) {
	m.outcomes.WithLabelValues(string(outcome)).Inc()
}

func (m *Metrics) observePublishFailure() {
	m.publishFailures.Inc()
}
