package primeasn

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with primeasn-specific context.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// A nil w writes to stderr.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
// A nil w writes to stderr.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithSource adds a source location field to the logger.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", source),
	}
}

// WithBound adds the sieve bound to the logger.
func (l *Logger) WithBound(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bound", n),
	}
}

// LogFetch logs the retrieval and parsing of one dataset.
// Scope the logger with WithSource first.
func (l *Logger) LogFetch(ctx context.Context, format string, bytes int64, candidates int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fetch failed",
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "fetch completed",
			"compression", format,
			"bytes", bytes,
			"candidates", candidates,
			"elapsed", elapsed,
		)
	}
}

// LogSieve logs construction of the prime table.
func (l *Logger) LogSieve(ctx context.Context, bound, primes int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sieve failed",
			"bound", bound,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "sieve built",
			"bound", bound,
			"primes", primes,
			"table_bytes", bound/8+1,
			"elapsed", elapsed,
		)
	}
}

// LogFilter logs the candidate filter pass.
func (l *Logger) LogFilter(ctx context.Context, candidates, primes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "filter failed",
			"candidates", candidates,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "filter completed",
			"candidates", candidates,
			"primes", primes,
		)
	}
}
