package debounce

import (
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	// ErrNilFunc is returned when no function is supplied.
	ErrNilFunc = errors.New("debounce: fn must not be nil")
	// ErrNegativeWait is returned for a negative wait duration.
	ErrNegativeWait = errors.New("debounce: wait must not be negative")
)

// Debouncer delays invoking fn until wait has elapsed since the most
// recent Call. Safe for concurrent use.
type Debouncer[T any] struct {
	wait    time.Duration
	fn      func(T)
	log     *slog.Logger
	metrics Metrics

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	last    T
}

// New creates a Debouncer around fn. A wait of zero still defers the
// invocation to a timer tick; it never runs synchronously inside Call.
func New[T any](wait time.Duration, fn func(T), opts ...Option) (*Debouncer[T], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if wait < 0 {
		return nil, ErrNegativeWait
	}

	cfg := newConfig(opts...)
	return &Debouncer[T]{
		wait:    wait,
		fn:      fn,
		log:     cfg.log,
		metrics: cfg.metrics,
	}, nil
}

// Call schedules an invocation of fn with arg after the wait period,
// replacing any invocation scheduled by an earlier Call.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.last = arg
	d.pending = true
	d.metrics.Scheduled()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, d.fire)
}

// Cancel drops any pending invocation. It is idempotent and safe to call
// when nothing is pending.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.pending {
		return
	}
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.metrics.Cancelled()
	d.log.Debug("pending invocation cancelled")
}

// Flush runs a pending invocation immediately, on the calling goroutine.
// It is a no-op when nothing is pending.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	arg := d.take()
	d.mu.Unlock()

	d.metrics.Fired()
	d.fn(arg)
}

// Pending reports whether an invocation is currently scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// fire runs on the timer goroutine. The pending check guards against a
// Cancel or Flush that raced with an already-expired timer.
func (d *Debouncer[T]) fire() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	arg := d.take()
	d.mu.Unlock()

	d.metrics.Fired()
	d.fn(arg)
}

func (d *Debouncer[T]) take() T {
	arg := d.last
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	var zero T
	d.last = zero
	return arg
}
