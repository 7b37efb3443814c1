// Package retry re-attempts fallible operations with a fixed delay.
//
// [Do] runs a function up to 1+retries times, sleeping a constant delay
// between attempts (no exponential growth). The first success wins; when
// every attempt fails, only the final attempt's error is returned and
// earlier errors are discarded. Context cancellation interrupts the wait
// between attempts.
//
//	err := retry.Do(ctx, func(ctx context.Context) error {
//	    return client.Ping(ctx)
//	}, retry.WithRetries(5), retry.WithDelay(200*time.Millisecond))
//
// Use [DoValue] for operations that produce a value.
package retry

import (
	"context"
	"log/slog"
	"time"
)

// Do runs fn until it succeeds or the attempt budget is exhausted.
// Defaults: 3 retries (4 attempts total) with a 1s delay between attempts.
func Do(ctx context.Context, fn func(context.Context) error, opts ...Option) error {
	cfg, err := newConfig(opts...)
	if err != nil {
		return err
	}
	if fn == nil {
		return ErrNilFunc
	}

	attempts := cfg.retries + 1

	t := time.NewTimer(cfg.delay)
	if !t.Stop() {
		<-t.C
	}

	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			cfg.metrics.Attempt(true)
			return nil
		}
		cfg.metrics.Attempt(false)

		if attempt == attempts {
			cfg.metrics.Exhausted()
			return err
		}

		cfg.log.Debug("attempt failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("remaining", attempts-attempt),
			slog.Duration("delay", cfg.delay),
			slog.Any("error", err),
		)

		t.Reset(cfg.delay)
		select {
		case <-ctx.Done():
			if !t.Stop() {
				<-t.C
			}
			return context.Cause(ctx)
		case <-t.C:
		}
	}
}

// DoValue is like [Do] for functions that produce a value. It returns the
// first successful attempt's value, or the zero value alongside the final
// error.
func DoValue[T any](ctx context.Context, fn func(context.Context) (T, error), opts ...Option) (T, error) {
	var (
		zero  T
		val   T
		fnErr error
	)
	err := Do(ctx, func(ctx context.Context) error {
		val, fnErr = fn(ctx)
		return fnErr
	}, opts...)
	if err != nil {
		return zero, err
	}
	return val, nil
}
