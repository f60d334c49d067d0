// Package logger wraps log/slog with the field names used by the benchmark harness.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog.Logger with harness-specific helpers.
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

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// LogRecord logs the timings measured for one list length.
func (l *Logger) LogRecord(ctx context.Context, length int, linear, binary time.Duration) {
	l.DebugContext(ctx, "search timed",
		"length", length,
		"linear", linear,
		"binary", binary,
	)
}

// LogRun logs the end of a benchmark run.
func (l *Logger) LogRun(ctx context.Context, sizes int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "benchmark run failed",
			"sizes", sizes,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "benchmark run completed",
		"sizes", sizes,
		"elapsed", elapsed,
	)
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return level, nil
}
