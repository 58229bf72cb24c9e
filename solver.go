package geosolve

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/geosolve/constraint"
	"github.com/hupe1980/geosolve/geometry"
	"github.com/hupe1980/geosolve/internal/bitmap"
	"github.com/hupe1980/geosolve/minimize"
)

// NonFinitePenalty replaces a constraint error that evaluates to NaN or
// infinity, so a single degenerate evaluation cannot abort a solve. Larger
// finite errors are capped to it.
const NonFinitePenalty = 1e12

// Objective selects how constraint errors are aggregated.
type Objective int

const (
	// ObjectiveSumSquares sums squared constraint errors.
	ObjectiveSumSquares Objective = iota
	// ObjectiveSumAbs sums constraint errors.
	ObjectiveSumAbs
)

func (o Objective) String() string {
	switch o {
	case ObjectiveSumSquares:
		return "SumSquares"
	case ObjectiveSumAbs:
		return "SumAbs"
	default:
		return fmt.Sprintf("Unknown(%d)", o)
	}
}

// Result describes the outcome of a solve.
type Result struct {
	// Converged reports whether the minimizer met its tolerances.
	Converged bool
	// Status is the reason the minimizer stopped.
	Status minimize.Status
	// Objective is the aggregate error of the final parameter state.
	Objective float64
	// MaxError is the largest single constraint error of the final state.
	MaxError float64
	// Iterations and Evaluations are reported by the minimizer.
	Iterations  int
	Evaluations int
	// Params is the number of distinct parameters solved for.
	Params int
	// Constraints is the number of registered constraints.
	Constraints int
	// Duration is the wall time of the solve.
	Duration time.Duration
}

// Solver drives the parameters of a set of constraints toward zero error.
//
// A Solver is not safe for concurrent use.
type Solver struct {
	constraints []constraint.Constraint
	opts        options
}

// New creates a Solver.
func New(optFns ...Option) *Solver {
	return &Solver{
		opts: applyOptions(optFns),
	}
}

// AddConstraint registers c. Constraints may share parameters.
func (s *Solver) AddConstraint(c constraint.Constraint) error {
	if isNil(c) {
		return ErrNilConstraint
	}
	s.constraints = append(s.constraints, c)
	return nil
}

// RemoveConstraint unregisters c and reports whether it was registered.
func (s *Solver) RemoveConstraint(c constraint.Constraint) bool {
	i := slices.Index(s.constraints, c)
	if i < 0 {
		return false
	}
	s.constraints = slices.Delete(s.constraints, i, i+1)
	return true
}

// Constraints returns the registered constraints in registration order.
func (s *Solver) Constraints() []constraint.Constraint {
	return slices.Clone(s.constraints)
}

// Params returns the distinct parameters of all registered constraints in
// first-seen order. This order maps the minimizer's vector to parameters.
func (s *Solver) Params() []geometry.Param {
	return collectParams(s.constraints)
}

// Evaluate returns the aggregate error of the current parameter state.
func (s *Solver) Evaluate() float64 {
	f, _ := s.aggregate(geometry.Live, nil)
	return f
}

// Solve minimizes the aggregate error over all parameters, starting from
// their current values, and leaves the best state found in the parameters.
//
// Non-convergence is reported through Result, not as an error. An error is
// returned for invalid settings, a failing minimizer, or a canceled context;
// in the last case the partial Result is returned as well.
func (s *Solver) Solve(ctx context.Context) (*Result, error) {
	start := time.Now()
	log := s.opts.logger.WithSolveID(uuid.NewString())

	res, err := s.solve(ctx, log)
	if res != nil {
		res.Duration = time.Since(start)
	}

	converged := res != nil && res.Converged
	if res != nil {
		s.opts.metricsCollector.RecordEvaluations(res.Evaluations)
		s.opts.metricsCollector.RecordSolve(res.Params, res.Constraints, time.Since(start), converged, err)
	} else {
		s.opts.metricsCollector.RecordSolve(0, len(s.constraints), time.Since(start), false, err)
	}
	log.LogSolve(ctx, res, err)

	return res, err
}

func (s *Solver) solve(ctx context.Context, log *Logger) (*Result, error) {
	if err := s.opts.settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	params := collectParams(s.constraints)
	log = log.WithParamCount(len(params))
	res := &Result{
		Params:      len(params),
		Constraints: len(s.constraints),
	}

	if len(s.constraints) == 0 {
		res.Converged = true
		res.Status = minimize.StatusConverged
		return res, nil
	}

	index := make(map[geometry.Param]int, len(params))
	x0 := make([]float64, len(params))
	for i, p := range params {
		index[p] = i
		x0[i] = p.Value()
	}

	onNonFinite := log.nonFiniteFunc(ctx)
	problem := minimize.Problem{
		Func: func(x []float64) float64 {
			writeParams(params, x)
			f, _ := s.aggregate(geometry.Live, onNonFinite)
			return f
		},
		ConcurrentFunc: func(x []float64) float64 {
			f, _ := s.aggregate(overlay{index: index, x: x}, nil)
			return f
		},
	}

	settings := s.opts.settings
	if progress := log.progressFunc(ctx); progress != nil {
		user := settings.Progress
		settings.Progress = func(it minimize.Iteration) {
			progress(it)
			if user != nil {
				user(it)
			}
		}
	}

	mres, err := s.opts.minimizer.Minimize(ctx, problem, x0, settings)
	if err != nil {
		return nil, &MinimizerError{cause: err}
	}
	if len(mres.X) != len(params) {
		return nil, &ErrResultMismatch{Expected: len(params), Actual: len(mres.X)}
	}

	// The last evaluation is not necessarily the best one.
	writeParams(params, mres.X)

	res.Objective, res.MaxError = s.aggregate(geometry.Live, nil)
	res.Status = mres.Status
	res.Converged = mres.Converged()
	res.Iterations = mres.Iterations
	res.Evaluations = mres.Evaluations

	if mres.Status == minimize.StatusCanceled {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		return res, context.Canceled
	}
	return res, nil
}

// aggregate evaluates every constraint through v and returns the objective
// and the largest single error.
func (s *Solver) aggregate(v geometry.Valuer, onNonFinite func(constraint.Kind, float64)) (float64, float64) {
	var sum, worst float64
	for _, c := range s.constraints {
		e := c.ErrorAt(v)
		if math.IsNaN(e) || math.IsInf(e, 0) {
			if onNonFinite != nil {
				onNonFinite(c.Kind(), e)
			}
			e = NonFinitePenalty
		}
		// finite but huge errors would overflow once squared
		e = min(e, NonFinitePenalty)
		worst = max(worst, e)

		switch s.opts.objective {
		case ObjectiveSumAbs:
			sum += e
		default:
			sum += e * e
		}
	}
	return sum, worst
}

// isNil reports whether c is nil or a nil pointer behind the interface.
func isNil(c constraint.Constraint) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// collectParams deduplicates parameters by identity, in first-seen order.
func collectParams(cs []constraint.Constraint) []geometry.Param {
	seen := make(map[*geometry.Arena]*bitmap.IDSet)
	var params []geometry.Param
	for _, c := range cs {
		for _, p := range c.Params() {
			set, ok := seen[p.Arena()]
			if !ok {
				set = bitmap.New()
				seen[p.Arena()] = set
			}
			if set.AddNew(uint32(p.ID())) {
				params = append(params, p)
			}
		}
	}
	return params
}

func writeParams(params []geometry.Param, x []float64) {
	for i, p := range params {
		p.Set(x[i])
	}
}

// overlay resolves solved parameters from a private vector.
type overlay struct {
	index map[geometry.Param]int
	x     []float64
}

func (o overlay) Value(p geometry.Param) float64 {
	if i, ok := o.index[p]; ok {
		return o.x[i]
	}
	return p.Value()
}
