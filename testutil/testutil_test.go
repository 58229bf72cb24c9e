package testutil

import (
	"testing"

	"github.com/hupe1980/geosolve/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)

	for j := 0; j < 10; j++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}

	first := NewRNG(1).Float64()
	r := NewRNG(1)
	r.Float64()
	r.Reset()
	assert.Equal(t, first, r.Float64())
	assert.Equal(t, int64(1), r.Seed())
}

func TestRNG_Uniform(t *testing.T) {
	rng := NewRNG(4711)
	for j := 0; j < 100; j++ {
		v := rng.Uniform(-2, 3)
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 3.0)
	}
}

func TestRNG_Geometry(t *testing.T) {
	rng := NewRNG(4711)
	a := geometry.NewArena()

	p := rng.Point(a, 5)
	assert.LessOrEqual(t, p.X.Value(), 5.0)
	assert.GreaterOrEqual(t, p.Y.Value(), -5.0)

	l := rng.Line(a, 5)
	assert.NotEqual(t, l.Start, l.End)

	pts := rng.Polygon(a, 4, 2)
	require.Len(t, pts, 4)
	for _, pt := range pts {
		d := Distance(pt, a.NewPoint(0, 0))
		assert.InDelta(t, 2, d, 0.3)
	}
	assert.Equal(t, 2+4+8+8, a.Len())
}
