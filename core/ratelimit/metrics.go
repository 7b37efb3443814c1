package ratelimit

import "github.com/hacagahasanli/hh-toolkit-utils/core/metrics"

// Metrics defines the metrics interface for the ratelimit package.
// All methods are thread-safe.
type Metrics interface {
	// Enqueued is called when a call enters the queue.
	Enqueued()
	// Completed is called when a queued call settles.
	Completed(success bool)
	// QueueDepth reports the current number of waiting calls.
	QueueDepth(depth int)
	// TaskDuration times a single invocation of the wrapped function.
	TaskDuration() metrics.Timer
}

// nopMetrics is a no-op implementation of Metrics.
type nopMetrics struct{}

func (nopMetrics) Enqueued()      {}
func (nopMetrics) Completed(bool) {}
func (nopMetrics) QueueDepth(int) {}

func (nopMetrics) TaskDuration() metrics.Timer { return metrics.NopTimer() }

// NopMetrics returns a no-op Metrics implementation.
func NopMetrics() Metrics { return nopMetrics{} }
