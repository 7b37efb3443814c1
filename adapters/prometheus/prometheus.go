// Package prometheus provides Prometheus implementations of the metrics
// interfaces of the wrapper packages (debounce, throttle, memo, retry,
// ratelimit).
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hacagahasanli/hh-toolkit-utils/core/metrics"
)

// timer wraps a Prometheus histogram to implement the Timer interface.
type timer struct {
	h     prometheus.Observer
	start time.Time
}

func newTimer(h prometheus.Observer) metrics.Timer {
	return &timer{h: h, start: time.Now()}
}

func (t *timer) ObserveDuration() {
	t.h.Observe(time.Since(t.start).Seconds())
}

// Default histogram buckets for latency metrics (in seconds).
var defaultBuckets = []float64{
	.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10,
}

func boolToStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// AllMetrics holds Prometheus implementations for all wrapper packages.
// Use this when you want to initialize metrics for your entire application
// at once.
type AllMetrics struct {
	Debounce  *debounceMetrics
	Throttle  *throttleMetrics
	Memo      *memoMetrics
	Retry     *retryMetrics
	RateLimit *rateLimitMetrics
}

// NewAllMetrics creates Prometheus metrics for all wrapper packages.
func NewAllMetrics(reg prometheus.Registerer) *AllMetrics {
	return &AllMetrics{
		Debounce:  NewDebounceMetrics(reg).(*debounceMetrics),
		Throttle:  NewThrottleMetrics(reg).(*throttleMetrics),
		Memo:      NewMemoMetrics(reg).(*memoMetrics),
		Retry:     NewRetryMetrics(reg).(*retryMetrics),
		RateLimit: NewRateLimitMetrics(reg).(*rateLimitMetrics),
	}
}
