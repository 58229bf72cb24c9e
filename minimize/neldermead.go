package minimize

import (
	"context"

	"gonum.org/v1/gonum/optimize"
)

// NelderMead is a derivative-free simplex minimizer backed by gonum.
//
// It uses the dimension-adaptive coefficients of Gao and Han, which keep the
// method effective beyond a handful of variables.
type NelderMead struct{}

// Minimize implements Minimizer.
func (NelderMead) Minimize(ctx context.Context, p Problem, x0 []float64, s Settings) (*Result, error) {
	step := s.InitialStep
	if step == 0 {
		step = DefaultInitialStep
	}
	return run(ctx, p, x0, s, adaptiveSimplex(len(x0), step), false)
}

func adaptiveSimplex(n int, size float64) *optimize.NelderMead {
	m := &optimize.NelderMead{
		Reflection:  1,
		SimplexSize: size,
	}
	if n <= 1 {
		// the adaptive coefficients degenerate for a single variable
		m.Expansion, m.Contraction, m.Shrink = 2, 0.5, 0.5
		return m
	}
	dim := float64(n)
	m.Expansion = 1 + 2/dim
	m.Contraction = 0.75 - 1/(2*dim)
	m.Shrink = 1 - 1/dim
	return m
}
