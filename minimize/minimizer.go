package minimize

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNilFunc is returned when Problem.Func is nil.
	ErrNilFunc = errors.New("objective function is nil")
)

// Func is a scalar objective over a flat vector.
type Func func(x []float64) float64

// Problem describes what to minimize.
type Problem struct {
	// Func is the objective. It may have side effects and is never called
	// concurrently.
	Func Func

	// ConcurrentFunc optionally evaluates the same objective without side
	// effects. It must be safe for concurrent use.
	ConcurrentFunc Func
}

// Status describes why a minimizer stopped.
type Status int

const (
	StatusConverged Status = iota
	StatusIterationLimit
	StatusEvaluationLimit
	StatusNonFinite
	StatusCanceled
	StatusLineSearchFailed
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "Converged"
	case StatusIterationLimit:
		return "IterationLimit"
	case StatusEvaluationLimit:
		return "EvaluationLimit"
	case StatusNonFinite:
		return "NonFinite"
	case StatusCanceled:
		return "Canceled"
	case StatusLineSearchFailed:
		return "LineSearchFailed"
	case StatusFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Result is the outcome of a minimization.
type Result struct {
	// X is the best point found.
	X []float64
	// F is the objective value at X.
	F float64
	// Status is the reason the minimizer stopped.
	Status Status
	// Iterations is the number of completed iterations.
	Iterations int
	// Evaluations is the number of objective evaluations.
	Evaluations int
}

// Converged reports whether the minimizer met its tolerances.
func (r *Result) Converged() bool {
	return r.Status == StatusConverged
}

// Iteration is reported to Settings.Progress after every iteration.
type Iteration struct {
	Iteration   int
	Evaluations int
	F           float64
}

// Minimizer minimizes a Problem starting from x0.
//
// Implementations must be deterministic for deterministic inputs and must
// not modify x0. An error is returned only for invalid input.
type Minimizer interface {
	Minimize(ctx context.Context, p Problem, x0 []float64, s Settings) (*Result, error)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
