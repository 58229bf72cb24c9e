package constraint

import (
	"fmt"
	"slices"

	"github.com/hupe1980/geosolve/geometry"
)

// Kind identifies a constraint type.
type Kind int

const (
	KindLineLength Kind = iota
	KindAngular
	KindPointDistance
)

func (k Kind) String() string {
	switch k {
	case KindLineLength:
		return "LineLength"
	case KindAngular:
		return "Angular"
	case KindPointDistance:
		return "PointDistance"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Constraint is an error function over geometry primitives.
type Constraint interface {
	// Kind returns the constraint type.
	Kind() Kind

	// Primitives returns the constrained primitives in registration order.
	Primitives() []geometry.Primitive

	// Points returns the points of all primitives, concatenated.
	// Points shared between primitives appear once per primitive.
	Points() []geometry.Point

	// Params returns the parameters of Points without duplicates,
	// x before y, in first-seen order.
	Params() []geometry.Param

	// Error returns the discrepancy for the current parameter values.
	// It is never negative; zero means satisfied.
	Error() float64

	// ErrorAt is Error with parameter values resolved by v.
	ErrorAt(v geometry.Valuer) float64
}

// Base implements the primitive bookkeeping shared by all constraints.
type Base struct {
	primitives []geometry.Primitive
}

// NewBase creates a Base over the given primitives.
func NewBase(primitives ...geometry.Primitive) Base {
	return Base{primitives: primitives}
}

// Primitives implements Constraint.
func (b *Base) Primitives() []geometry.Primitive {
	return slices.Clone(b.primitives)
}

// Points implements Constraint.
func (b *Base) Points() []geometry.Point {
	var points []geometry.Point
	for _, p := range b.primitives {
		points = append(points, p.Points()...)
	}
	return points
}

// Params implements Constraint.
func (b *Base) Params() []geometry.Param {
	var params []geometry.Param
	for _, pt := range b.Points() {
		if !slices.Contains(params, pt.X) {
			params = append(params, pt.X)
		}
		if !slices.Contains(params, pt.Y) {
			params = append(params, pt.Y)
		}
	}
	return params
}
