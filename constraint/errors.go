package constraint

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeLength is returned when a length target is below zero.
	ErrNegativeLength = errors.New("length must be >= 0")
)

// ValidationError reports an invalid constraint target.
//
// The underlying sentinel can be matched with errors.Is.
type ValidationError struct {
	Field string
	Value float64
	cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %g: %v", e.Field, e.Value, e.cause)
}

func (e *ValidationError) Unwrap() error { return e.cause }
