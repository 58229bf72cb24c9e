package constraint

import (
	"math"

	"github.com/hupe1980/geosolve/geometry"
)

// LineLength constrains the length of a line.
type LineLength struct {
	Base
	line   geometry.Line
	length float64
}

// NewLineLength creates a length constraint. It fails with ErrNegativeLength
// if length < 0; zero is allowed.
func NewLineLength(line geometry.Line, length float64) (*LineLength, error) {
	c := &LineLength{
		Base: NewBase(line),
		line: line,
	}
	if err := c.SetLength(length); err != nil {
		return nil, err
	}
	return c, nil
}

// Line returns the constrained line.
func (c *LineLength) Line() geometry.Line { return c.line }

// Length returns the target length.
func (c *LineLength) Length() float64 { return c.length }

// SetLength changes the target length. Negative values are rejected and leave
// the current target unchanged.
func (c *LineLength) SetLength(length float64) error {
	if length < 0 || math.IsNaN(length) {
		return &ValidationError{Field: "length", Value: length, cause: ErrNegativeLength}
	}
	c.length = length
	return nil
}

// Kind implements Constraint.
func (c *LineLength) Kind() Kind { return KindLineLength }

// Error implements Constraint.
func (c *LineLength) Error() float64 {
	return c.ErrorAt(geometry.Live)
}

// ErrorAt implements Constraint.
func (c *LineLength) ErrorAt(v geometry.Valuer) float64 {
	return math.Abs(c.line.LengthAt(v) - c.length)
}
