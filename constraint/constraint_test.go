package constraint

import (
	"errors"
	"math"
	"testing"

	"github.com/hupe1980/geosolve/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineLength(t *testing.T) {
	a := geometry.NewArena()
	line := geometry.NewLine(a.NewPoint(0, 0), a.NewPoint(3, 4))

	tests := []struct {
		name     string
		length   float64
		expected float64
	}{
		{"Satisfied", 5, 0},
		{"TooShortTarget", 4, 1},
		{"TooLongTarget", 7.5, 2.5},
		{"Zero", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewLineLength(line, tt.length)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.Error())
			assert.Equal(t, KindLineLength, c.Kind())
			assert.Equal(t, tt.length, c.Length())
			assert.Equal(t, line, c.Line())
		})
	}
}

func TestLineLength_Validation(t *testing.T) {
	a := geometry.NewArena()
	line := geometry.NewLine(a.NewPoint(0, 0), a.NewPoint(1, 0))

	t.Run("NegativeOnConstruction", func(t *testing.T) {
		c, err := NewLineLength(line, -1)
		require.Error(t, err)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrNegativeLength)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "length", ve.Field)
		assert.Equal(t, -1.0, ve.Value)
	})

	t.Run("NegativeOnSet", func(t *testing.T) {
		c, err := NewLineLength(line, 2)
		require.NoError(t, err)

		err = c.SetLength(-0.5)
		assert.ErrorIs(t, err, ErrNegativeLength)
		assert.Equal(t, 2.0, c.Length())

		require.NoError(t, c.SetLength(0))
		assert.Equal(t, 0.0, c.Length())
	})
}

func TestPointDistance(t *testing.T) {
	a := geometry.NewArena()
	p := a.NewPoint(0, 0)
	q := a.NewPoint(1, 1)

	c := NewPointDistance(p, q, math.Sqrt2)
	assert.Equal(t, 0.0, c.Error())
	assert.Equal(t, KindPointDistance, c.Kind())

	c.SetDistance(1)
	assert.InDelta(t, math.Sqrt2-1, c.Error(), 1e-15)

	t.Run("NegativeTargetNeverSatisfied", func(t *testing.T) {
		c := NewPointDistance(p, p, -1)
		assert.Equal(t, 1.0, c.Error())
	})
}

func TestAngular(t *testing.T) {
	a := geometry.NewArena()
	origin := a.NewPoint(0, 0)
	xAxis := geometry.NewLine(origin, a.NewPoint(1, 0))
	yAxis := geometry.NewLine(origin, a.NewPoint(0, 2))

	tests := []struct {
		name     string
		lineA    geometry.Line
		lineB    geometry.Line
		target   float64
		expected float64
	}{
		{"RightAngle", xAxis, yAxis, 90, 0},
		{"Directed", yAxis, xAxis, 270, 0},
		{"Parallel", xAxis, xAxis, 0, 0},
		{"Off", xAxis, yAxis, 60, 30},
		{"Reversed", xAxis, geometry.NewLine(yAxis.End, origin), 270, 0},
		{"NoWraparound", xAxis, geometry.NewLine(origin, a.NewPoint(1, -math.Tan(10*math.Pi/180))), 10, 340},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewAngular(tt.lineA, tt.lineB, tt.target)
			assert.InDelta(t, tt.expected, c.Error(), 1e-9)
			assert.Equal(t, KindAngular, c.Kind())
		})
	}

	t.Run("Degenerate", func(t *testing.T) {
		dot := geometry.NewLine(origin, origin)
		c := NewAngular(xAxis, dot, 0)
		assert.Equal(t, DegenerateAngleError, c.Error())

		_, ok := AngleBetween(dot, xAxis)
		assert.False(t, ok)
	})

	t.Run("AngleBetween", func(t *testing.T) {
		deg, ok := AngleBetween(xAxis, yAxis)
		require.True(t, ok)
		assert.InDelta(t, 90, deg, 1e-12)

		c := NewAngular(xAxis, yAxis, 0)
		c.SetAngle(45)
		assert.Equal(t, 45.0, c.Angle())
		assert.InDelta(t, 45, c.Error(), 1e-12)
	})
}

func TestBase_PointsAndParams(t *testing.T) {
	a := geometry.NewArena()
	origin := a.NewPoint(0, 0)
	l1 := geometry.NewLine(origin, a.NewPoint(1, 0))
	l2 := geometry.NewLine(origin, a.NewPoint(0, 1))

	c := NewAngular(l1, l2, 90)

	t.Run("PointsKeepDuplicates", func(t *testing.T) {
		points := c.Points()
		require.Len(t, points, 4)
		assert.Equal(t, []geometry.Point{origin, l1.End, origin, l2.End}, points)
	})

	t.Run("ParamsDeduplicated", func(t *testing.T) {
		params := c.Params()
		assert.Equal(t, []geometry.Param{
			origin.X, origin.Y,
			l1.End.X, l1.End.Y,
			l2.End.X, l2.End.Y,
		}, params)
	})

	t.Run("EqualValuesAreDistinct", func(t *testing.T) {
		p := a.NewPoint(5, 5)
		q := a.NewPoint(5, 5)
		params := NewPointDistance(p, q, 0).Params()
		assert.Len(t, params, 4)
	})

	t.Run("SharedParamWithinPoint", func(t *testing.T) {
		s := a.NewParam(2)
		diag := geometry.NewPoint(s, s)
		params := NewPointDistance(diag, origin, 0).Params()
		assert.Equal(t, []geometry.Param{s, origin.X, origin.Y}, params)
	})

	t.Run("Primitives", func(t *testing.T) {
		prims := c.Primitives()
		require.Len(t, prims, 2)
		assert.Equal(t, l1, prims[0])
		assert.Equal(t, l2, prims[1])
	})
}

type fixed map[geometry.Param]float64

func (f fixed) Value(p geometry.Param) float64 {
	if v, ok := f[p]; ok {
		return v
	}
	return p.Value()
}

func TestErrorAt(t *testing.T) {
	a := geometry.NewArena()
	end := a.NewPoint(1, 0)
	line := geometry.NewLine(a.NewPoint(0, 0), end)

	c, err := NewLineLength(line, 5)
	require.NoError(t, err)

	overlay := fixed{end.X: 3, end.Y: 4}
	assert.Equal(t, 0.0, c.ErrorAt(overlay))
	assert.Equal(t, 4.0, c.Error())
	assert.Equal(t, 1.0, end.X.Value())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "LineLength", KindLineLength.String())
	assert.Equal(t, "Angular", KindAngular.String())
	assert.Equal(t, "PointDistance", KindPointDistance.String())
	assert.Equal(t, "Unknown(9)", Kind(9).String())
}
