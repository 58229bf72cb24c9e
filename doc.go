// Package geosolve provides a 2-D geometric constraint solver.
//
// A sketch is made of points and lines whose coordinates are free
// parameters (see package geometry). Constraints (see package constraint)
// turn the current geometry into non-negative errors, and a Solver drives
// every shared parameter toward a joint minimum of the aggregate error.
//
// # Quick Start
//
//	a := geometry.NewArena()
//	p, q, r := a.NewPoint(0, 0), a.NewPoint(3.5, 0.5), a.NewPoint(0.5, 2.5)
//
//	ab, _ := constraint.NewLineLength(geometry.NewLine(p, q), 4)
//	ac, _ := constraint.NewLineLength(geometry.NewLine(p, r), 3)
//	bc, _ := constraint.NewLineLength(geometry.NewLine(q, r), 5)
//
//	s := geosolve.New()
//	s.AddConstraint(ab)
//	s.AddConstraint(ac)
//	s.AddConstraint(bc)
//
//	res, err := s.Solve(ctx)
//
// The solved coordinates are written back into the parameters, so p, q and
// r reflect the solution directly.
//
// # Objective
//
// The aggregate error is the sum of squared constraint errors by default
// (ObjectiveSumSquares) or the sum of absolute errors (ObjectiveSumAbs).
// Both are exactly zero when every constraint is satisfied.
//
// # Convergence
//
// A solve that does not converge is not an error. Result.Converged is false,
// Result.Status tells why, and the parameters hold the best state found so
// callers can inspect it, perturb it, or solve again. Solve warm-starts from
// the current parameter values.
//
// # Minimizers
//
// The optimizer is pluggable through WithMinimizer. The default is
// minimize.NelderMead; minimize.BFGS converges faster on smooth objectives
// and can evaluate its gradient in parallel (WithConcurrency).
package geosolve
