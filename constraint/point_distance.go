package constraint

import (
	"math"

	"github.com/hupe1980/geosolve/geometry"
)

// PointDistance constrains the distance between two points.
//
// The target is not validated: a negative distance is accepted but can never
// be satisfied.
type PointDistance struct {
	Base
	pointA   geometry.Point
	pointB   geometry.Point
	distance float64
}

// NewPointDistance creates a point-to-point distance constraint.
func NewPointDistance(pointA, pointB geometry.Point, distance float64) *PointDistance {
	return &PointDistance{
		Base:     NewBase(pointA, pointB),
		pointA:   pointA,
		pointB:   pointB,
		distance: distance,
	}
}

// PointA returns the first point.
func (c *PointDistance) PointA() geometry.Point { return c.pointA }

// PointB returns the second point.
func (c *PointDistance) PointB() geometry.Point { return c.pointB }

// Distance returns the target distance.
func (c *PointDistance) Distance() float64 { return c.distance }

// SetDistance changes the target distance.
func (c *PointDistance) SetDistance(distance float64) { c.distance = distance }

// Kind implements Constraint.
func (c *PointDistance) Kind() Kind { return KindPointDistance }

// Error implements Constraint.
func (c *PointDistance) Error() float64 {
	return c.ErrorAt(geometry.Live)
}

// ErrorAt implements Constraint.
func (c *PointDistance) ErrorAt(v geometry.Valuer) float64 {
	return math.Abs(c.pointA.SubAt(v, c.pointB).Magnitude() - c.distance)
}

var (
	_ Constraint = (*LineLength)(nil)
	_ Constraint = (*Angular)(nil)
	_ Constraint = (*PointDistance)(nil)
)
