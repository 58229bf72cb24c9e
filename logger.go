package geosolve

import (
	"context"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/geosolve/constraint"
	"github.com/hupe1980/geosolve/minimize"
)

// ProgressInterval is the minimum time between two progress log lines of a
// single solve.
const ProgressInterval = time.Second

// Logger wraps slog.Logger with solver-specific context.
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

// WithSolveID adds a solve_id field to the logger.
func (l *Logger) WithSolveID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("solve_id", id),
	}
}

// WithParamCount adds a param_count field to the logger.
func (l *Logger) WithParamCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("param_count", count),
	}
}

// LogSolve logs the outcome of a solve.
func (l *Logger) LogSolve(ctx context.Context, res *Result, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "solve failed",
			"error", err,
		)
	case !res.Converged:
		l.WarnContext(ctx, "solve did not converge",
			"status", res.Status.String(),
			"objective", res.Objective,
			"max_error", res.MaxError,
			"iterations", res.Iterations,
			"evaluations", res.Evaluations,
			"duration", res.Duration,
		)
	default:
		l.DebugContext(ctx, "solve completed",
			"params", res.Params,
			"constraints", res.Constraints,
			"objective", res.Objective,
			"iterations", res.Iterations,
			"evaluations", res.Evaluations,
			"duration", res.Duration,
		)
	}
}

// LogNonFinite logs a constraint error that was replaced by NonFinitePenalty.
func (l *Logger) LogNonFinite(ctx context.Context, kind constraint.Kind, value float64) {
	l.DebugContext(ctx, "non-finite constraint error",
		"kind", kind.String(),
		"value", value,
		"penalty", NonFinitePenalty,
	)
}

// progressFunc returns a minimize progress callback that logs at most once
// per ProgressInterval, or nil if debug logging is disabled.
func (l *Logger) progressFunc(ctx context.Context) func(minimize.Iteration) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return nil
	}
	limiter := &rate.Sometimes{First: 1, Interval: ProgressInterval}
	return func(it minimize.Iteration) {
		limiter.Do(func() {
			l.DebugContext(ctx, "solve progress",
				"iteration", it.Iteration,
				"evaluations", it.Evaluations,
				"objective", it.F,
			)
		})
	}
}

// nonFiniteFunc is like progressFunc for non-finite constraint errors.
func (l *Logger) nonFiniteFunc(ctx context.Context) func(constraint.Kind, float64) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return nil
	}
	limiter := &rate.Sometimes{First: 1, Interval: ProgressInterval}
	return func(kind constraint.Kind, value float64) {
		limiter.Do(func() { l.LogNonFinite(ctx, kind, value) })
	}
}
