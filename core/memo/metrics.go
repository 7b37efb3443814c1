package memo

// Metrics defines the metrics interface for the memo package.
// All methods are thread-safe.
type Metrics interface {
	// Hit is called when a cached result is returned.
	Hit()
	// Miss is called when the wrapped function must be invoked.
	Miss()
}

// nopMetrics is a no-op implementation of Metrics.
type nopMetrics struct{}

func (nopMetrics) Hit()  {}
func (nopMetrics) Miss() {}

// NopMetrics returns a no-op Metrics implementation.
func NopMetrics() Metrics { return nopMetrics{} }
