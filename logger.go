package rexgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with rexgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithMaxSize adds a max_size (requested term count) field to the logger.
func (l *Logger) WithMaxSize(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("max_size", k),
	}
}

// WithRefSize adds a ref_size (reference set size) field to the logger.
func (l *Logger) WithRefSize(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("ref_size", n),
	}
}

// LogExpand logs one expansion run.
func (l *Logger) LogExpand(ctx context.Context, maxSize, refSize int, result *Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "expand failed",
			"max_size", maxSize,
			"ref_size", refSize,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "expand completed",
			"max_size", maxSize,
			"ref_size", refSize,
			"terms", result.Size(),
			"candidates", result.CandidateCount(),
		)
	}
}

// LogBatchExpand logs a batch expansion run.
func (l *Logger) LogBatchExpand(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch expand completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch expand completed",
			"count", count,
		)
	}
}
