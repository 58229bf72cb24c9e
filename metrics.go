package geosolve

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting solver metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    solveCounter   prometheus.Counter
//	    solveHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSolve(params, constraints int, duration time.Duration, converged bool, err error) {
//	    p.solveCounter.Inc()
//	    p.solveHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordSolve is called after each solve.
	// params and constraints describe the problem size, converged reports
	// the minimizer outcome and err is nil unless the solve failed.
	RecordSolve(params, constraints int, duration time.Duration, converged bool, err error)

	// RecordEvaluations is called after each solve with the number of
	// objective evaluations it performed.
	RecordEvaluations(count int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSolve(int, int, time.Duration, bool, error) {}
func (NoopMetricsCollector) RecordEvaluations(int)                            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SolveCount        atomic.Int64
	SolveErrors       atomic.Int64
	SolveNotConverged atomic.Int64
	SolveTotalNanos   atomic.Int64
	ParamsTotal       atomic.Int64
	EvaluationCount   atomic.Int64
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(params, constraints int, duration time.Duration, converged bool, err error) {
	b.SolveCount.Add(1)
	b.SolveTotalNanos.Add(duration.Nanoseconds())
	b.ParamsTotal.Add(int64(params))
	if err != nil {
		b.SolveErrors.Add(1)
	} else if !converged {
		b.SolveNotConverged.Add(1)
	}
}

// RecordEvaluations implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluations(count int) {
	b.EvaluationCount.Add(int64(count))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SolveCount:        b.SolveCount.Load(),
		SolveErrors:       b.SolveErrors.Load(),
		SolveNotConverged: b.SolveNotConverged.Load(),
		SolveAvgNanos:     b.getAvgSolveNanos(),
		ParamsTotal:       b.ParamsTotal.Load(),
		EvaluationCount:   b.EvaluationCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSolveNanos() int64 {
	count := b.SolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.SolveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SolveCount        int64
	SolveErrors       int64
	SolveNotConverged int64
	SolveAvgNanos     int64
	ParamsTotal       int64
	EvaluationCount   int64
}
