package geom2s

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

func TestFrameFromPole(t *testing.T) {
	for _, pole := range testPoles {
		m := frameFromPole(pole.Vector)
		u, v, w := m.col(0), m.col(1), m.col(2)

		if w != pole.Vector {
			t.Errorf("frameFromPole(%v) third column = %v, want the pole", pole, w)
		}
		for i, col := range []r3.Vector{u, v, w} {
			if !float64Near(col.Norm(), 1, 1e-14) {
				t.Errorf("frameFromPole(%v) column %d norm = %v, want 1", pole, i, col.Norm())
			}
		}
		if x := u.Dot(v); !float64Near(x, 0, 1e-14) {
			t.Errorf("frameFromPole(%v) u · v = %v, want 0", pole, x)
		}
		if x := u.Dot(w); !float64Near(x, 0, 1e-14) {
			t.Errorf("frameFromPole(%v) u · w = %v, want 0", pole, x)
		}
		// Right-handed.
		if !vectorsNear(u.Cross(v), w, 1e-14) {
			t.Errorf("frameFromPole(%v) u ⨯ v = %v, want %v", pole, u.Cross(v), w)
		}
	}
}

func TestFrameRoundTrip(t *testing.T) {
	vectors := []r3.Vector{
		{X: 1, Y: 2, Z: 3},
		{X: -0.5, Y: 0, Z: 0.25},
		{X: 0, Y: 0, Z: 0},
	}
	for _, pole := range testPoles {
		m := frameFromPole(pole.Vector)
		for _, v := range vectors {
			if got := m.toWorld(m.toLocal(v)); !vectorsNear(got, v, 1e-14) {
				t.Errorf("frame %v round trip of %v = %v", pole, v, got)
			}
		}
		if local := m.toLocal(pole.Vector); !vectorsNear(local, r3.Vector{X: 0, Y: 0, Z: 1}, 1e-14) {
			t.Errorf("frame %v maps its pole to %v, want (0, 0, 1)", pole, local)
		}
	}
}

func TestFrameIsDeterministic(t *testing.T) {
	p := s2.PointFromCoords(0.3, -0.4, 0.8)
	if frameFromPole(p.Vector) != frameFromPole(p.Vector) {
		t.Error("frameFromPole is not a pure function of the pole")
	}
}
