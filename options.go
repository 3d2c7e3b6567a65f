package rexgo

import "log/slog"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	maxConcurrent    int64
}

// Option configures Expander constructor behavior.
//
// Per-request knobs (max size, threshold, decider, weighting scheme) live
// on the ExpandBuilder instead; options cover only cross-request concerns.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring
// expansion runs. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &rexgo.BasicMetricsCollector{}
//	ex, _ := rexgo.New(idx, rexgo.WithMetricsCollector(metrics))
//	// ... run expansions ...
//	stats := metrics.GetStats()
//	fmt.Printf("Expands: %d, Avg latency: %dns\n", stats.ExpandCount, stats.ExpandAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for expansion runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := rexgo.NewJSONLogger(slog.LevelInfo)
//	ex, _ := rexgo.New(idx, rexgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMaxConcurrent caps how many expansions BatchExpand runs at once.
// Values below 1 fall back to the number of CPUs.
func WithMaxConcurrent(n int64) Option {
	return func(o *options) {
		o.maxConcurrent = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}

	if o.logger == nil {
		o.logger = NoopLogger()
	}

	return o
}
