package minimize

import (
	"context"

	"gonum.org/v1/gonum/optimize"
)

// BFGS is a quasi-Newton minimizer backed by gonum. Gradients are estimated
// by central finite differences, in parallel when Settings.Concurrency > 1
// and Problem.ConcurrentFunc is set.
type BFGS struct{}

// Minimize implements Minimizer.
func (BFGS) Minimize(ctx context.Context, p Problem, x0 []float64, s Settings) (*Result, error) {
	gtol := s.GTol
	if gtol == 0 {
		gtol = DefaultGTol
	}
	return run(ctx, p, x0, s, &optimize.BFGS{GradStopThreshold: gtol}, true)
}
