package debounce

import "log/slog"

// Option configures a Debouncer.
type Option func(*config)

type config struct {
	log     *slog.Logger
	metrics Metrics
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		log:     slog.Default(),
		metrics: NopMetrics(),
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
