package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vector is an unparameterized 2-D displacement.
type Vector r2.Vec

// Magnitude returns the Euclidean norm of v.
func (v Vector) Magnitude() float64 {
	return r2.Norm(r2.Vec(v))
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return r2.Dot(r2.Vec(v), r2.Vec(w))
}

// Cross returns the z-component of the 3-D cross product of v and w.
func (v Vector) Cross(w Vector) float64 {
	return r2.Cross(r2.Vec(v), r2.Vec(w))
}

// Angle returns the direction of v in degrees, in (-180, 180].
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// Point is a 2-D position whose coordinates are parameters.
type Point struct {
	X, Y Param
}

// NewPoint creates a point from existing parameters.
func NewPoint(x, y Param) Point {
	return Point{X: x, Y: y}
}

// Points implements Primitive.
func (p Point) Points() []Point {
	return []Point{p}
}

// Equal reports whether p and q share both parameters.
func (p Point) Equal(q Point) bool {
	return p == q
}

// Vector returns the live coordinates of p as a Vector.
func (p Point) Vector() Vector {
	return p.VectorAt(Live)
}

// VectorAt returns the coordinates of p as resolved by v.
func (p Point) VectorAt(v Valuer) Vector {
	return Vector{X: v.Value(p.X), Y: v.Value(p.Y)}
}

// Sub returns p - q component-wise.
func (p Point) Sub(q Point) Vector {
	return p.SubAt(Live, q)
}

// SubAt returns p - q with values resolved by v.
func (p Point) SubAt(v Valuer, q Point) Vector {
	return Vector(r2.Sub(r2.Vec(p.VectorAt(v)), r2.Vec(q.VectorAt(v))))
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X.Value(), p.Y.Value())
}
