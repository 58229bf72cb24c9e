package minimize

import (
	"context"
	"errors"
	"math"
	"slices"
	"sync/atomic"

	"gonum.org/v1/gonum/optimize"
)

// evaluator counts objective evaluations and remembers the best point
// passed to Problem.Func.
type evaluator struct {
	p     Problem
	n     atomic.Int64
	best  []float64
	bestF float64
}

func newEvaluator(p Problem, x0 []float64) *evaluator {
	return &evaluator{
		p:     p,
		best:  slices.Clone(x0),
		bestF: math.Inf(1),
	}
}

// eval calls Func and maps NaN to +Inf so simplex ordering stays total.
func (e *evaluator) eval(x []float64) float64 {
	e.n.Add(1)
	f := e.p.Func(x)
	if math.IsNaN(f) {
		f = math.Inf(1)
	}
	if f < e.bestF {
		e.bestF = f
		copy(e.best, x)
	}
	return f
}

func (e *evaluator) count() int {
	return int(e.n.Load())
}

func (e *evaluator) result() *Result {
	return &Result{
		X:           slices.Clone(e.best),
		F:           e.bestF,
		Evaluations: e.count(),
	}
}

// converger stops on an absolute objective threshold and otherwise defers
// to gonum's stagnation test. It also drives progress reporting, since it
// sees every major iteration exactly once.
type converger struct {
	eval      *evaluator
	threshold float64
	stall     optimize.FunctionConverge
	progress  func(Iteration)
	iter      int
}

func (c *converger) Init(dim int) {
	c.stall.Init(dim)
	c.iter = 0
}

func (c *converger) Converged(loc *optimize.Location) optimize.Status {
	c.iter++
	if c.progress != nil {
		c.progress(Iteration{Iteration: c.iter, Evaluations: c.eval.count(), F: c.eval.bestF})
	}
	if loc.F <= c.threshold {
		return optimize.FunctionThreshold
	}
	return c.stall.Converged(loc)
}

// run drives method over p. The initial point is evaluated up front so that
// trivial, already-solved, non-finite and canceled problems never reach
// gonum.
func run(ctx context.Context, p Problem, x0 []float64, s Settings, method optimize.Method, needsGrad bool) (*Result, error) {
	if p.Func == nil {
		return nil, ErrNilFunc
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s = s.withDefaults(len(x0))

	e := newEvaluator(p, x0)
	f0 := e.eval(slices.Clone(x0))

	switch {
	case !isFinite(f0):
		res := e.result()
		res.Status = StatusNonFinite
		return res, nil
	case len(x0) == 0 || f0 <= s.FAbsTol:
		res := e.result()
		res.Status = StatusConverged
		return res, nil
	case ctx.Err() != nil:
		res := e.result()
		res.Status = StatusCanceled
		return res, nil
	}

	conv := &converger{
		eval:      e,
		threshold: s.FAbsTol,
		stall:     optimize.FunctionConverge{Absolute: s.FTol, Iterations: s.Stagnation},
		progress:  s.Progress,
	}

	prob := optimize.Problem{
		Func: e.eval,
		Status: func() (optimize.Status, error) {
			if err := ctx.Err(); err != nil {
				return optimize.Failure, err
			}
			if s.MaxEvaluations > 0 && e.count() >= s.MaxEvaluations {
				return optimize.FunctionEvaluationLimit, nil
			}
			return optimize.NotTerminated, nil
		},
	}
	if needsGrad {
		prob.Grad = func(grad, x []float64) {
			e.gradient(x, s, grad)
		}
	}

	settings := &optimize.Settings{
		MajorIterations: s.MaxIterations,
		Converger:       conv,
	}

	gres, err := optimize.Minimize(prob, slices.Clone(x0), settings, method)

	res := e.result()
	res.Iterations = conv.iter
	if gres != nil {
		res.Iterations = gres.MajorIterations
	}

	switch {
	case ctx.Err() != nil:
		res.Status = StatusCanceled
	case err != nil:
		res.Status = errorStatus(err)
	default:
		res.Status = fromOptimize(gres.Status)
	}
	return res, nil
}

func fromOptimize(s optimize.Status) Status {
	switch s {
	case optimize.Success,
		optimize.FunctionThreshold,
		optimize.FunctionConvergence,
		optimize.GradientThreshold,
		optimize.StepConvergence,
		optimize.MethodConverge:
		return StatusConverged
	case optimize.IterationLimit:
		return StatusIterationLimit
	case optimize.FunctionEvaluationLimit, optimize.GradientEvaluationLimit:
		return StatusEvaluationLimit
	case optimize.FunctionNegativeInfinity:
		return StatusNonFinite
	default:
		return StatusFailed
	}
}

func errorStatus(err error) Status {
	if errors.Is(err, optimize.ErrLinesearcherFailure) || errors.Is(err, optimize.ErrNoProgress) {
		return StatusLineSearchFailed
	}
	return StatusFailed
}
