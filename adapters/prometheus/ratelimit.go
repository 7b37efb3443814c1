package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hacagahasanli/hh-toolkit-utils/core/metrics"
	"github.com/hacagahasanli/hh-toolkit-utils/core/ratelimit"
)

// rateLimitMetrics implements ratelimit.Metrics using Prometheus.
type rateLimitMetrics struct {
	enqueued     prometheus.Counter
	completed    *prometheus.CounterVec
	queueDepth   prometheus.Gauge
	taskDuration prometheus.Histogram
}

// NewRateLimitMetrics creates a new Prometheus implementation of
// ratelimit.Metrics.
func NewRateLimitMetrics(reg prometheus.Registerer) ratelimit.Metrics {
	m := &rateLimitMetrics{
		enqueued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toolkit_ratelimit_enqueued_total",
			Help: "Total number of calls enqueued",
		}),
		completed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "toolkit_ratelimit_completed_total",
			Help: "Total number of queued calls settled",
		}, []string{"success"}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "toolkit_ratelimit_queue_depth",
			Help: "Current number of waiting calls",
		}),
		taskDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "toolkit_ratelimit_task_duration_seconds",
			Help:    "Wrapped function invocation time in seconds",
			Buckets: defaultBuckets,
		}),
	}

	reg.MustRegister(m.enqueued, m.completed, m.queueDepth, m.taskDuration)

	return m
}

func (m *rateLimitMetrics) Enqueued() { m.enqueued.Inc() }

func (m *rateLimitMetrics) Completed(success bool) {
	m.completed.WithLabelValues(boolToStr(success)).Inc()
}

func (m *rateLimitMetrics) QueueDepth(depth int) {
	m.queueDepth.Set(float64(depth))
}

func (m *rateLimitMetrics) TaskDuration() metrics.Timer {
	return newTimer(m.taskDuration)
}
