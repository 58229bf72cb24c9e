// Package minimize provides unconstrained minimizers for scalar objectives
// over a flat vector of float64 variables.
//
// # Minimizers
//
//   - NelderMead: derivative-free adaptive simplex (robust default)
//   - BFGS: quasi-Newton with a central finite-difference gradient
//
// Both run on gonum.org/v1/gonum/optimize; gradients come from
// gonum.org/v1/gonum/diff/fd.
//
// Both consume a Problem and an initial vector and report a Result. Failing
// to converge is not an error: it is reported through Result.Status together
// with the best point found.
//
// # Side Effects
//
// Problem.Func may have side effects (for example writing the candidate into
// shared state) and is always called sequentially. Problem.ConcurrentFunc, if
// set, must be pure; BFGS uses it to evaluate gradient components in parallel
// when Settings.Concurrency > 1.
//
//	res, err := minimize.NelderMead{}.Minimize(ctx, minimize.Problem{Func: f}, x0, minimize.Settings{})
//	if err != nil {
//	    return err // invalid input
//	}
//	if !res.Converged() {
//	    log.Printf("stopped: %s", res.Status)
//	}
package minimize
