package constraint

import (
	"math"

	"github.com/hupe1980/geosolve/geometry"
)

// DegenerateAngleError is the error reported by an Angular constraint when
// either line has zero length and no direction.
const DegenerateAngleError = 360.0

// Angular constrains the angle between two lines, in degrees.
//
// The angle is measured counter-clockwise from lineA's direction to lineB's
// direction, so endpoint order matters.
type Angular struct {
	Base
	lineA geometry.Line
	lineB geometry.Line
	angle float64
}

// NewAngular creates an angular constraint. The target is not normalized.
func NewAngular(lineA, lineB geometry.Line, angle float64) *Angular {
	return &Angular{
		Base:  NewBase(lineA, lineB),
		lineA: lineA,
		lineB: lineB,
		angle: angle,
	}
}

// LineA returns the first line.
func (c *Angular) LineA() geometry.Line { return c.lineA }

// LineB returns the second line.
func (c *Angular) LineB() geometry.Line { return c.lineB }

// Angle returns the target angle in degrees.
func (c *Angular) Angle() float64 { return c.angle }

// SetAngle changes the target angle. Any value is accepted.
func (c *Angular) SetAngle(angle float64) { c.angle = angle }

// Kind implements Constraint.
func (c *Angular) Kind() Kind { return KindAngular }

// Error implements Constraint.
func (c *Angular) Error() float64 {
	return c.ErrorAt(geometry.Live)
}

// ErrorAt implements Constraint.
//
// NOTE: the difference is not taken modulo 360. A target of 10 against an
// actual 350 reports 340, not 20. Targets should be given in [0, 360).
func (c *Angular) ErrorAt(v geometry.Valuer) float64 {
	actual, ok := angleBetween(c.lineA.VectorAt(v), c.lineB.VectorAt(v))
	if !ok {
		return DegenerateAngleError
	}
	return math.Abs(actual - c.angle)
}

// AngleBetween returns the counter-clockwise angle in degrees, in [0, 360),
// from a's direction to b's direction. It returns false if either line has
// zero length.
func AngleBetween(a, b geometry.Line) (float64, bool) {
	return angleBetween(a.Vector(), b.Vector())
}

func angleBetween(u, w geometry.Vector) (float64, bool) {
	mu, mw := u.Magnitude(), w.Magnitude()
	if mu == 0 || mw == 0 || math.IsNaN(mu) || math.IsNaN(mw) || math.IsInf(mu, 0) || math.IsInf(mw, 0) {
		return 0, false
	}

	deg := math.Atan2(u.Cross(w), u.Dot(w)) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg, true
}
