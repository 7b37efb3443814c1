package ratelimit

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	// ErrNilFunc is returned when no function is supplied.
	ErrNilFunc = errors.New("ratelimit: fn must not be nil")
	// ErrNegativeDelay is returned for a negative cooldown.
	ErrNegativeDelay = errors.New("ratelimit: minDelay must not be negative")
	// ErrClosed is returned when submitting to a closed limiter.
	ErrClosed = errors.New("ratelimit: limiter is closed")
)

// Result is the settlement of one queued call.
type Result[R any] struct {
	Value R
	Err   error
}

type task[A, R any] struct {
	id   string
	ctx  context.Context
	arg  A
	done chan Result[R]
}

// Limiter serializes calls to fn through a FIFO queue. A single drain
// goroutine runs one call at a time and waits minDelay after each
// completion (success or failure) before starting the next. A failure in
// one queued call settles only that call; the queue keeps going.
//
// There is no way to cancel a call once it has been enqueued; this is a
// documented limitation, not a bug. The submitting context is passed
// through to fn, which may observe its cancellation.
type Limiter[A, R any] struct {
	minDelay time.Duration
	fn       func(context.Context, A) (R, error)
	log      *slog.Logger
	metrics  Metrics

	tasks chan *task[A, R]
	done  chan struct{}

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup // tracks in-flight Submit operations
}

// New creates a Limiter around fn and starts its drain goroutine.
func New[A, R any](minDelay time.Duration, fn func(context.Context, A) (R, error), opts ...Option) (*Limiter[A, R], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if minDelay < 0 {
		return nil, ErrNegativeDelay
	}

	cfg := newConfig(opts...)
	l := &Limiter[A, R]{
		minDelay: minDelay,
		fn:       fn,
		log:      cfg.log,
		metrics:  cfg.metrics,
		tasks:    make(chan *task[A, R], cfg.queueSize),
		done:     make(chan struct{}),
	}

	go l.run()

	return l, nil
}

// Submit enqueues a call with arg and returns a channel that receives that
// call's settlement. Submit blocks while the queue is full; ctx cancels
// the wait to enqueue, not the call itself once enqueued.
func (l *Limiter[A, R]) Submit(ctx context.Context, arg A) (<-chan Result[R], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil, ErrClosed
	}
	l.wg.Add(1)
	l.mu.Unlock()

	t := &task[A, R]{
		id:   gonanoid.Must(8),
		ctx:  ctx,
		arg:  arg,
		done: make(chan Result[R], 1),
	}

	select {
	case l.tasks <- t:
		l.wg.Done()
		l.metrics.Enqueued()
		l.metrics.QueueDepth(len(l.tasks))
		return t.done, nil
	case <-ctx.Done():
		l.wg.Done()
		return nil, ctx.Err()
	}
}

// Do enqueues a call and blocks until it settles, returning its value or
// error. If ctx is cancelled while waiting, Do returns the context error;
// the queued call still executes.
func (l *Limiter[A, R]) Do(ctx context.Context, arg A) (R, error) {
	var zero R

	ch, err := l.Submit(ctx, arg)
	if err != nil {
		return zero, err
	}

	select {
	case r := <-ch:
		return r.Value, r.Err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Close stops accepting new calls, waits for already-queued calls to
// drain, then stops the drain goroutine. Idempotent.
func (l *Limiter[A, R]) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.mu.Unlock()

	// Wait for in-flight Submit operations to finish enqueueing.
	// This prevents sends to a closed channel.
	l.wg.Wait()
	close(l.tasks)
	<-l.done
}

// run drains the queue one task at a time, enforcing the cooldown between
// the end of one invocation and the start of the next.
func (l *Limiter[A, R]) run() {
	defer close(l.done)

	var lastEnd time.Time
	for t := range l.tasks {
		if !lastEnd.IsZero() {
			if wait := l.minDelay - time.Since(lastEnd); wait > 0 {
				time.Sleep(wait)
			}
		}
		l.metrics.QueueDepth(len(l.tasks))

		timer := l.metrics.TaskDuration()
		val, err := l.fn(t.ctx, t.arg)
		timer.ObserveDuration()

		t.done <- Result[R]{Value: val, Err: err}
		l.metrics.Completed(err == nil)
		if err != nil {
			l.log.Debug("queued call failed",
				slog.String("task", t.id),
				slog.Any("error", err),
			)
		}

		lastEnd = time.Now()
	}
}
