package geosolve

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSettings is returned when minimizer settings fail validation.
	ErrInvalidSettings = errors.New("invalid solver settings")

	// ErrNilConstraint is returned when a nil constraint is added.
	ErrNilConstraint = errors.New("constraint is nil")
)

// ErrResultMismatch indicates that a minimizer returned a vector of the
// wrong length.
type ErrResultMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrResultMismatch) Error() string {
	return fmt.Sprintf("minimizer result mismatch: expected %d variables, got %d", e.Expected, e.Actual)
}

// MinimizerError wraps an error returned by a minimizer.
//
// The original underlying error can be accessed via errors.Unwrap.
type MinimizerError struct {
	cause error
}

func (e *MinimizerError) Error() string {
	return fmt.Sprintf("minimizer failed: %v", e.cause)
}

func (e *MinimizerError) Unwrap() error { return e.cause }
