package minimize

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultMaxIterationsPerVar scales the iteration budget with the
	// number of variables when MaxIterations is zero.
	DefaultMaxIterationsPerVar = 2000
	// DefaultStagnationPerVar scales Stagnation the same way, with at least
	// two variables assumed.
	DefaultStagnationPerVar = 50
	DefaultFTol             = 1e-14
	DefaultFAbsTol          = 1e-16
	DefaultGTol             = 1e-9
	DefaultInitialStep      = 0.05
)

// DefaultFDStep is the relative step of central finite differences.
var DefaultFDStep = math.Cbrt(2.220446049250313e-16)

var settingsValidate = validator.New()

// Settings bounds a minimization. Zero fields take the defaults above.
type Settings struct {
	// MaxIterations caps the iteration count.
	MaxIterations int `validate:"gte=0"`
	// MaxEvaluations caps objective evaluations; zero means unlimited.
	MaxEvaluations int `validate:"gte=0"`
	// FTol is the smallest decrease of the best objective that counts as
	// progress.
	FTol float64 `validate:"gte=0"`
	// Stagnation is the number of iterations without progress after which
	// the minimizer reports convergence.
	Stagnation int `validate:"gte=0"`
	// FAbsTol stops as soon as the objective drops to it. Objectives whose
	// global minimum is zero converge through this test.
	FAbsTol float64 `validate:"gte=0"`
	// GTol is the gradient infinity-norm considered converged.
	GTol float64 `validate:"gte=0"`
	// InitialStep is the size of the initial simplex.
	InitialStep float64 `validate:"gte=0"`
	// FDStep is the relative finite-difference step.
	FDStep float64 `validate:"gte=0"`
	// Concurrency bounds parallel gradient evaluations.
	Concurrency int `validate:"gte=0"`
	// Progress is called after every iteration when set.
	Progress func(Iteration) `validate:"-"`
}

// Validate checks that no field is negative.
func (s Settings) Validate() error {
	if err := settingsValidate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

func (s Settings) withDefaults(n int) Settings {
	if s.MaxIterations == 0 {
		s.MaxIterations = DefaultMaxIterationsPerVar * max(n, 1)
	}
	if s.Stagnation == 0 {
		s.Stagnation = DefaultStagnationPerVar * max(n, 2)
	}
	if s.FTol == 0 {
		s.FTol = DefaultFTol
	}
	if s.FAbsTol == 0 {
		s.FAbsTol = DefaultFAbsTol
	}
	if s.GTol == 0 {
		s.GTol = DefaultGTol
	}
	if s.InitialStep == 0 {
		s.InitialStep = DefaultInitialStep
	}
	if s.FDStep == 0 {
		s.FDStep = DefaultFDStep
	}
	if s.Concurrency == 0 {
		s.Concurrency = 1
	}
	return s
}
