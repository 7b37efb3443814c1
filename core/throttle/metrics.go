package throttle

// Metrics defines the metrics interface for the throttle package.
// All methods are thread-safe.
type Metrics interface {
	// Leading is called for an immediate (leading-edge) invocation.
	Leading()
	// Trailing is called for a deferred (trailing-edge) invocation.
	Trailing()
	// Coalesced is called when a call only replaces the pending argument.
	Coalesced()
	// Cancelled is called when a pending trailing invocation is dropped.
	Cancelled()
}

// nopMetrics is a no-op implementation of Metrics.
type nopMetrics struct{}

func (nopMetrics) Leading()   {}
func (nopMetrics) Trailing()  {}
func (nopMetrics) Coalesced() {}
func (nopMetrics) Cancelled() {}

// NopMetrics returns a no-op Metrics implementation.
func NopMetrics() Metrics { return nopMetrics{} }
