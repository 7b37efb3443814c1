// Package throttle caps invocation frequency to at most once per window.
//
// A [Throttler] invokes its function immediately when no invocation has
// happened within the window (the leading edge). Calls arriving inside the
// window schedule at most one trailing invocation for the remainder of the
// window; only the most recent call's argument survives to that trailing
// invocation, intermediate ones are dropped.
//
//	t, _ := throttle.New(time.Second, func(pos Position) {
//	    publish(pos)
//	})
//
//	t.Call(p1) // runs immediately
//	t.Call(p2) // coalesced
//	t.Call(p3) // trailing invocation fires with p3 when the window ends
//
// Cancel drops the pending trailing invocation and forgets the last run,
// so the next Call fires immediately again.
package throttle

import (
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	// ErrNilFunc is returned when no function is supplied.
	ErrNilFunc = errors.New("throttle: fn must not be nil")
	// ErrInvalidWindow is returned for a non-positive window.
	ErrInvalidWindow = errors.New("throttle: window must be positive")
)

// Throttler invokes fn at most once per window. Safe for concurrent use.
type Throttler[T any] struct {
	window  time.Duration
	fn      func(T)
	now     func() time.Time
	log     *slog.Logger
	metrics Metrics

	mu         sync.Mutex
	lastRun    time.Time // zero means no prior run
	timer      *time.Timer
	pending    bool
	pendingArg T
}

// New creates a Throttler around fn.
func New[T any](window time.Duration, fn func(T), opts ...Option) (*Throttler[T], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	cfg := newConfig(opts...)
	return &Throttler[T]{
		window:  window,
		fn:      fn,
		now:     cfg.now,
		log:     cfg.log,
		metrics: cfg.metrics,
	}, nil
}

// Call invokes fn with arg immediately when the window has elapsed since
// the last run (or there was none). Otherwise it schedules a single
// trailing invocation for the remainder of the window; arg replaces the
// argument of any trailing invocation already scheduled.
func (t *Throttler[T]) Call(arg T) {
	t.mu.Lock()

	if t.pending {
		// A trailing invocation is already scheduled; it will use
		// this, the most recent, argument.
		t.pendingArg = arg
		t.metrics.Coalesced()
		t.mu.Unlock()
		return
	}

	now := t.now()
	elapsed := now.Sub(t.lastRun)
	if t.lastRun.IsZero() || elapsed >= t.window {
		t.lastRun = now
		t.mu.Unlock()

		t.metrics.Leading()
		t.fn(arg)
		return
	}

	t.pending = true
	t.pendingArg = arg
	t.timer = time.AfterFunc(t.window-elapsed, t.fireTrailing)
	t.mu.Unlock()
}

// Cancel drops any pending trailing invocation and resets the run history,
// so the next Call fires immediately. Idempotent.
func (t *Throttler[T]) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if t.pending {
		t.pending = false
		var zero T
		t.pendingArg = zero
		t.metrics.Cancelled()
		t.log.Debug("trailing invocation cancelled")
	}
	t.lastRun = time.Time{}
}

// Pending reports whether a trailing invocation is scheduled.
func (t *Throttler[T]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

func (t *Throttler[T]) fireTrailing() {
	t.mu.Lock()
	if !t.pending {
		// Cancelled after the timer already expired.
		t.mu.Unlock()
		return
	}
	arg := t.pendingArg
	t.pending = false
	t.timer = nil
	var zero T
	t.pendingArg = zero
	t.lastRun = t.now()
	t.mu.Unlock()

	t.metrics.Trailing()
	t.fn(arg)
}
