package ratelimit

import "log/slog"

// Option configures a Limiter.
type Option func(*config)

type config struct {
	log       *slog.Logger
	metrics   Metrics
	queueSize int
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		log:       slog.Default(),
		metrics:   NopMetrics(),
		queueSize: 64,
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

// WithQueueSize sets the queue buffer size (default: 64). Submit blocks
// once the buffer is full.
func WithQueueSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.queueSize = size
		}
	}
}
