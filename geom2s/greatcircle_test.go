package geom2s

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreatCircleFromPole(t *testing.T) {
	g, err := GreatCircleFromPole(r3.Vector{X: 0, Y: 0, Z: 2})
	require.NoError(t, err)

	assert.True(t, pointsNear(g.Pole(), northPole, 1e-15))
	assert.True(t, g.Circle().IsGreatCircle())
	assert.Equal(t, 2*math.Pi, g.Length())
	assert.True(t, g.IsClosed())
	assert.True(t, g.Contains(xAxis))
	assert.True(t, g.Contains(s2.PointFromCoords(-1, 1, 0)))
	assert.False(t, g.Contains(northPole))
	assert.False(t, g.Contains(s2.PointFromCoords(1, 0, 0.01)))
	assert.True(t, g.ContainsWithin(s2.PointFromCoords(1, 0, 0.01), 0.011))

	_, err = GreatCircleFromPole(r3.Vector{})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
	_, err = GreatCircleFromPole(r3.Vector{X: math.NaN(), Y: 0, Z: 1})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestGreatCircleThrough(t *testing.T) {
	g, err := GreatCircleThrough(xAxis, yAxis)
	require.NoError(t, err)
	assert.True(t, pointsNear(g.Pole(), northPole, 1e-14), "pole = %v", g.Pole())

	// Counterclockwise about the pole, y follows x a quarter turn later.
	assert.True(t, azimuthNear(g.Position(yAxis)-g.Position(xAxis), math.Pi/2, 1e-14))

	tests := []struct {
		a, b s2.Point
	}{
		{xAxis, xAxis},
		{xAxis, s2.PointFromCoords(-1, 0, 0)},
		{northPole, southPole},
	}
	for _, test := range tests {
		if _, err := GreatCircleThrough(test.a, test.b); err == nil {
			t.Errorf("GreatCircleThrough(%v, %v) succeeded, want error", test.a, test.b)
		}
	}
}

func TestGreatCircleReverse(t *testing.T) {
	g, err := GreatCircleFromPole(s2.PointFromCoords(1, 2, 3).Vector)
	require.NoError(t, err)

	rev := g.Reverse()
	assert.True(t, pointsNear(rev.Pole(), s2.Point{Vector: g.Pole().Mul(-1)}, 1e-15))
	assert.True(t, rev.Circle().IsGreatCircle())
	for _, p := range g.Samples(12) {
		assert.True(t, rev.ContainsWithin(p, 1e-14), "%v is not on %v", p, rev)
	}
}

func TestGreatCircleSamples(t *testing.T) {
	g, err := GreatCircleFromPole(yAxis.Vector)
	require.NoError(t, err)

	count := 0
	for i, p := range g.Samples(8) {
		assert.Equal(t, count, i)
		assert.InDelta(t, 0, p.Y, 1e-15)
		assert.True(t, pointsNear(p, g.PointAt(float64(i)*math.Pi/4), 0))
		count++
	}
	assert.Equal(t, 8, count)
}

func TestGreatCircleString(t *testing.T) {
	g, err := GreatCircleFromPole(northPole.Vector)
	require.NoError(t, err)
	assert.Contains(t, g.String(), "GreatCircle")
}
