// Package ratelimit serializes asynchronous calls through a FIFO queue
// with an enforced cooldown between them.
//
// A [Limiter] wraps a func(ctx, A) (R, error). Every submission joins a
// FIFO queue; a single drain goroutine runs one call at a time and waits
// at least minDelay between the end of one call and the start of the
// next. Calls therefore never overlap and settle strictly in submission
// order. One call's failure settles only that call.
//
//	l, _ := ratelimit.New(100*time.Millisecond, func(ctx context.Context, q string) (*Page, error) {
//	    return api.Search(ctx, q)
//	})
//	defer l.Close()
//
//	page, err := l.Do(ctx, "gopher") // blocks for this call's turn
//
// [Limiter.Submit] is the non-blocking variant: it returns a channel that
// receives the call's [Result] when it settles.
package ratelimit
