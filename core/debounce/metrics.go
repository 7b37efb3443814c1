package debounce

// Metrics defines the metrics interface for the debounce package.
// All methods are thread-safe.
type Metrics interface {
	// Scheduled is called for every Call, whether or not it ever fires.
	Scheduled()
	// Fired is called when the wrapped function is actually invoked.
	Fired()
	// Cancelled is called when a pending invocation is dropped.
	Cancelled()
}

// nopMetrics is a no-op implementation of Metrics.
type nopMetrics struct{}

func (nopMetrics) Scheduled() {}
func (nopMetrics) Fired()     {}
func (nopMetrics) Cancelled() {}

// NopMetrics returns a no-op Metrics implementation.
func NopMetrics() Metrics { return nopMetrics{} }
