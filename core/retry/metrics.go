package retry

// Metrics defines the metrics interface for the retry package.
// All methods are thread-safe.
type Metrics interface {
	// Attempt is called after every attempt with its outcome.
	Attempt(success bool)
	// Exhausted is called when the attempt budget runs out.
	Exhausted()
}

// nopMetrics is a no-op implementation of Metrics.
type nopMetrics struct{}

func (nopMetrics) Attempt(bool) {}
func (nopMetrics) Exhausted()   {}

// NopMetrics returns a no-op Metrics implementation.
func NopMetrics() Metrics { return nopMetrics{} }
