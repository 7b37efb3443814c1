package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hacagahasanli/hh-toolkit-utils/core/memo"
)

// memoMetrics implements memo.Metrics using Prometheus.
type memoMetrics struct {
	lookups *prometheus.CounterVec
}

// NewMemoMetrics creates a new Prometheus implementation of memo.Metrics.
func NewMemoMetrics(reg prometheus.Registerer) memo.Metrics {
	m := &memoMetrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "toolkit_memo_lookups_total",
			Help: "Total number of memoizer lookups by outcome",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.lookups)

	return m
}

func (m *memoMetrics) Hit()  { m.lookups.WithLabelValues("hit").Inc() }
func (m *memoMetrics) Miss() { m.lookups.WithLabelValues("miss").Inc() }
