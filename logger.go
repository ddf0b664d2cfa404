package cocktails

import (
	"context"
	"log/slog"
	"os"

	"github.com/urschrei/cocktails/solver"
)

// Logger wraps slog.Logger with cocktails-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithBudget adds an ingredient budget field to the logger.
func (l *Logger) WithBudget(budget int) *Logger {
	return &Logger{
		Logger: l.Logger.With("budget", budget),
	}
}

// WithMaxCalls adds an iteration cap field to the logger.
func (l *Logger) WithMaxCalls(maxCalls int) *Logger {
	return &Logger{
		Logger: l.Logger.With("max_calls", maxCalls),
	}
}

// LogSolve logs the outcome of a solve run.
func (l *Logger) LogSolve(ctx context.Context, budget int, sol *solver.Solution, err error) {
	if err != nil {
		l.ErrorContext(ctx, "solve failed",
			"budget", budget,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "solve completed",
		"budget", budget,
		"score", sol.Score,
		"iterations", sol.Iterations,
		"exhausted", sol.Exhausted,
	)
}

// LogCatalogLoad logs a catalog load.
func (l *Logger) LogCatalogLoad(ctx context.Context, name string, cocktails, ingredients int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "catalog load failed",
			"name", name,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "catalog loaded",
		"name", name,
		"cocktails", cocktails,
		"ingredients", ingredients,
	)
}
