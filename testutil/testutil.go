package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/geosolve/geometry"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Uniform returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Uniform(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// Point allocates a point with coordinates uniform in [-extent, extent).
func (r *RNG) Point(a *geometry.Arena, extent float64) geometry.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	x := (r.rand.Float64()*2 - 1) * extent
	y := (r.rand.Float64()*2 - 1) * extent
	return a.NewPoint(x, y)
}

// Line allocates a line between two random points.
func (r *RNG) Line(a *geometry.Arena, extent float64) geometry.Line {
	return geometry.NewLine(r.Point(a, extent), r.Point(a, extent))
}

// Polygon allocates n points placed counter-clockwise on a circle of the
// given radius, each jittered by up to 10% of the radius.
func (r *RNG) Polygon(a *geometry.Arena, n int, radius float64) []geometry.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geometry.Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		jx := (r.rand.Float64()*2 - 1) * 0.1 * radius
		jy := (r.rand.Float64()*2 - 1) * 0.1 * radius
		points[i] = a.NewPoint(radius*math.Cos(theta)+jx, radius*math.Sin(theta)+jy)
	}
	return points
}

// Distance returns the live distance between two points.
func Distance(p, q geometry.Point) float64 {
	return p.Sub(q).Magnitude()
}
