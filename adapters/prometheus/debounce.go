package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hacagahasanli/hh-toolkit-utils/core/debounce"
)

// debounceMetrics implements debounce.Metrics using Prometheus.
type debounceMetrics struct {
	scheduled prometheus.Counter
	fired     prometheus.Counter
	cancelled prometheus.Counter
}

// NewDebounceMetrics creates a new Prometheus implementation of
// debounce.Metrics.
func NewDebounceMetrics(reg prometheus.Registerer) debounce.Metrics {
	m := &debounceMetrics{
		scheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toolkit_debounce_scheduled_total",
			Help: "Total number of calls into the debouncer",
		}),
		fired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toolkit_debounce_fired_total",
			Help: "Total number of invocations that actually ran",
		}),
		cancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toolkit_debounce_cancelled_total",
			Help: "Total number of pending invocations dropped via Cancel",
		}),
	}

	reg.MustRegister(m.scheduled, m.fired, m.cancelled)

	return m
}

func (m *debounceMetrics) Scheduled() { m.scheduled.Inc() }
func (m *debounceMetrics) Fired()     { m.fired.Inc() }
func (m *debounceMetrics) Cancelled() { m.cancelled.Inc() }
