package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hacagahasanli/hh-toolkit-utils/core/throttle"
)

// throttleMetrics implements throttle.Metrics using Prometheus.
type throttleMetrics struct {
	invocations *prometheus.CounterVec
	coalesced   prometheus.Counter
	cancelled   prometheus.Counter
}

// NewThrottleMetrics creates a new Prometheus implementation of
// throttle.Metrics.
func NewThrottleMetrics(reg prometheus.Registerer) throttle.Metrics {
	m := &throttleMetrics{
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "toolkit_throttle_invocations_total",
			Help: "Total number of invocations by edge",
		}, []string{"edge"}),
		coalesced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toolkit_throttle_coalesced_total",
			Help: "Total number of calls absorbed into a pending trailing invocation",
		}),
		cancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toolkit_throttle_cancelled_total",
			Help: "Total number of pending trailing invocations dropped via Cancel",
		}),
	}

	reg.MustRegister(m.invocations, m.coalesced, m.cancelled)

	return m
}

func (m *throttleMetrics) Leading()   { m.invocations.WithLabelValues("leading").Inc() }
func (m *throttleMetrics) Trailing()  { m.invocations.WithLabelValues("trailing").Inc() }
func (m *throttleMetrics) Coalesced() { m.coalesced.Inc() }
func (m *throttleMetrics) Cancelled() { m.cancelled.Inc() }
