package geometry

// Primitive is a geometric object built from points.
type Primitive interface {
	// Points returns the points the primitive is built from, in order.
	Points() []Point
}

var (
	_ Primitive = Point{}
	_ Primitive = Line{}
)
