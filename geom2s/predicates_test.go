package geom2s

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

func TestOrientation(t *testing.T) {
	tests := []struct {
		a, b, c s2.Point
		want    int
	}{
		{xAxis, yAxis, northPole, 1},
		{northPole, yAxis, xAxis, -1},
		{yAxis, northPole, xAxis, 1},
		// All on the equator.
		{xAxis, yAxis, s2.PointFromCoords(-1, 0, 0), 0},
		{xAxis, yAxis, s2.PointFromCoords(1, 1, 0), 0},
		// Too close to call in floating point, but not degenerate.
		{xAxis, yAxis, s2.Point{Vector: r3.Vector{X: 1, Y: 1, Z: 1e-20}}, 1},
		{xAxis, yAxis, s2.Point{Vector: r3.Vector{X: 1, Y: 1, Z: -1e-20}}, -1},
	}
	for _, test := range tests {
		if got := orientation(test.a, test.b, test.c); got != test.want {
			t.Errorf("orientation(%v, %v, %v) = %d, want %d", test.a, test.b, test.c, got, test.want)
		}
	}
}

func TestTriageDefersToExact(t *testing.T) {
	c := s2.Point{Vector: r3.Vector{X: 1, Y: 1, Z: 1e-20}}
	if got := triageSign(xAxis.Cross(yAxis.Vector), c); got != 0 {
		t.Errorf("triageSign near-degenerate = %d, want 0", got)
	}
	if got := exactSign(xAxis, yAxis, c); got != 1 {
		t.Errorf("exactSign near-degenerate = %d, want 1", got)
	}
}
