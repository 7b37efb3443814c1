package throttle

import (
	"log/slog"
	"time"
)

// Option configures a Throttler.
type Option func(*config)

type config struct {
	log     *slog.Logger
	metrics Metrics
	now     func() time.Time
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		log:     slog.Default(),
		metrics: NopMetrics(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the logger used for debug output.
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

// WithNow overrides the clock, mainly for tests.
func WithNow(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}
