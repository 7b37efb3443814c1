package retry

import (
	"errors"
	"log/slog"
	"time"
)

const (
	DefaultRetries = 3
	DefaultDelay   = time.Second
)

var (
	// ErrNilFunc is returned when no function is supplied.
	ErrNilFunc = errors.New("retry: fn must not be nil")
	// ErrNegativeRetries is returned for a negative retry count.
	ErrNegativeRetries = errors.New("retry: retries must not be negative")
	// ErrNegativeDelay is returned for a negative delay.
	ErrNegativeDelay = errors.New("retry: delay must not be negative")
)

// Option configures a retry run.
type Option func(*config)

type config struct {
	retries int
	delay   time.Duration
	log     *slog.Logger
	metrics Metrics
}

func newConfig(opts ...Option) (*config, error) {
	cfg := &config{
		retries: DefaultRetries,
		delay:   DefaultDelay,
		log:     slog.Default(),
		metrics: NopMetrics(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.retries < 0 {
		return nil, ErrNegativeRetries
	}
	if cfg.delay < 0 {
		return nil, ErrNegativeDelay
	}
	return cfg, nil
}

// WithRetries sets how many times a failed attempt is retried. Zero means
// a single attempt.
func WithRetries(n int) Option {
	return func(c *config) {
		c.retries = n
	}
}

// WithDelay sets the fixed pause between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithLogger sets the logger used to report intermediate failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}
