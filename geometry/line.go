package geometry

import "fmt"

// Line is a directed segment between two points.
// Endpoint order defines its direction.
type Line struct {
	Start, End Point
}

// NewLine creates a line from start to end. The points are shared, not copied.
func NewLine(start, end Point) Line {
	return Line{Start: start, End: end}
}

// Points implements Primitive.
func (l Line) Points() []Point {
	return []Point{l.Start, l.End}
}

// Vector returns End - Start.
func (l Line) Vector() Vector {
	return l.VectorAt(Live)
}

// VectorAt returns End - Start with values resolved by v.
func (l Line) VectorAt(v Valuer) Vector {
	return l.End.SubAt(v, l.Start)
}

// Length returns the Euclidean length of the line.
func (l Line) Length() float64 {
	return l.Vector().Magnitude()
}

// LengthAt returns the length with values resolved by v.
func (l Line) LengthAt(v Valuer) float64 {
	return l.VectorAt(v).Magnitude()
}

func (l Line) String() string {
	return fmt.Sprintf("%s -> %s", l.Start, l.End)
}
