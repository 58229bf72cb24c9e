package geosolve

import (
	"log/slog"

	"github.com/hupe1980/geosolve/minimize"
)

type options struct {
	minimizer        minimize.Minimizer
	settings         minimize.Settings
	objective        Objective
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Solver.
type Option func(*options)

// WithMinimizer sets the minimization routine.
//
// If nil is passed, minimize.NelderMead is used.
func WithMinimizer(m minimize.Minimizer) Option {
	return func(o *options) {
		if m == nil {
			m = minimize.NelderMead{}
		}
		o.minimizer = m
	}
}

// WithSettings replaces the minimizer settings wholesale.
// Zero fields take the minimizer defaults.
func WithSettings(s minimize.Settings) Option {
	return func(o *options) {
		o.settings = s
	}
}

// WithMaxIterations bounds the number of minimizer iterations.
// Zero selects a budget proportional to the number of parameters.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.settings.MaxIterations = n
	}
}

// WithTolerance sets the aggregate objective value at or below which a
// solve counts as converged.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.settings.FAbsTol = tol
	}
}

// WithConcurrency bounds the number of parallel objective evaluations.
// Only minimizers that estimate gradients (minimize.BFGS) use it; shared
// parameters are never written from parallel evaluations.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.settings.Concurrency = n
	}
}

// WithObjective selects how constraint errors are aggregated.
func WithObjective(obj Objective) Option {
	return func(o *options) {
		o.objective = obj
	}
}

// WithMetricsCollector configures a metrics collector for monitoring solves.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &geosolve.BasicMetricsCollector{}
//	s := geosolve.New(geosolve.WithMetricsCollector(metrics))
//	// ... solve ...
//	stats := metrics.GetStats()
//	fmt.Printf("Solves: %d, Avg latency: %dns\n", stats.SolveCount, stats.SolveAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for solves.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := geosolve.NewJSONLogger(slog.LevelDebug)
//	s := geosolve.New(geosolve.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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

func applyOptions(optFns []Option) options {
	o := options{
		minimizer:        minimize.NelderMead{},
		objective:        ObjectiveSumSquares,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
