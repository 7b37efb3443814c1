package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hacagahasanli/hh-toolkit-utils/core/retry"
)

// retryMetrics implements retry.Metrics using Prometheus.
type retryMetrics struct {
	attempts  *prometheus.CounterVec
	exhausted prometheus.Counter
}

// NewRetryMetrics creates a new Prometheus implementation of retry.Metrics.
func NewRetryMetrics(reg prometheus.Registerer) retry.Metrics {
	m := &retryMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "toolkit_retry_attempts_total",
			Help: "Total number of attempts by outcome",
		}, []string{"success"}),
		exhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toolkit_retry_exhausted_total",
			Help: "Total number of retry runs that ran out of attempts",
		}),
	}

	reg.MustRegister(m.attempts, m.exhausted)

	return m
}

func (m *retryMetrics) Attempt(success bool) {
	m.attempts.WithLabelValues(boolToStr(success)).Inc()
}

func (m *retryMetrics) Exhausted() { m.exhausted.Inc() }
