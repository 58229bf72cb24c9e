package minimize

import (
	"math"
	"slices"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/diff/fd"
)

// gradient estimates the gradient of the objective at x by central
// differences and stores it in grad.
//
// With Concurrency > 1 and a ConcurrentFunc, components are evaluated in
// parallel, each on its own copy of x. Otherwise Func is called sequentially.
// Both paths perform identical arithmetic.
func (e *evaluator) gradient(x []float64, s Settings, grad []float64) {
	f := func(x []float64) float64 {
		e.n.Add(1)
		return e.p.Func(x)
	}

	if s.Concurrency > 1 && e.p.ConcurrentFunc != nil && len(x) > 1 {
		f = func(x []float64) float64 {
			e.n.Add(1)
			return e.p.ConcurrentFunc(x)
		}

		var g errgroup.Group
		g.SetLimit(s.Concurrency)
		for i := range x {
			i := i
			g.Go(func() error {
				grad[i] = partial(f, slices.Clone(x), i, s.FDStep)
				return nil
			})
		}
		_ = g.Wait()
		return
	}

	xp := slices.Clone(x)
	for i := range x {
		grad[i] = partial(f, xp, i, s.FDStep)
	}
}

// partial returns the derivative along coordinate i. xp is scratch space
// and is restored before returning.
func partial(f Func, xp []float64, i int, rel float64) float64 {
	xi := xp[i]
	d := fd.Derivative(func(v float64) float64 {
		xp[i] = v
		return f(xp)
	}, xi, &fd.Settings{
		Formula: fd.Central,
		Step:    rel * max(1, math.Abs(xi)),
	})
	xp[i] = xi
	return d
}
