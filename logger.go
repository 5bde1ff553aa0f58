package membuf

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with membuf-specific fields.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithAlignment adds an alignment field to the logger.
func (l *Logger) WithAlignment(alignment int) *Logger {
	return &Logger{
		Logger: l.Logger.With("alignment", alignment),
	}
}

// LogAllocate logs an aligned allocation.
func (l *Logger) LogAllocate(capacity, alignment, padding int, addr uint64, err error) {
	if err != nil {
		l.Error("allocate failed",
			"capacity", capacity,
			"alignment", alignment,
			"error", err,
		)
		return
	}
	l.Debug("allocate completed",
		"capacity", capacity,
		"alignment", alignment,
		"padding", padding,
		"address", addr,
	)
}

// LogFree logs the release of a native block.
func (l *Logger) LogFree(size int, err error) {
	if err != nil {
		l.Error("free failed",
			"size", size,
			"error", err,
		)
		return
	}
	l.Debug("free completed",
		"size", size,
	)
}
