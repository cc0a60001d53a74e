package geom2s

import (
	"math"

	"github.com/golang/geo/s1"
)

const (
	twoPi = 2 * math.Pi
	piOn2 = math.Pi / 2

	// minPoleNorm is the smallest pole magnitude that is still normalized.
	minPoleNorm = 1e-12

	// minTriangleSine bounds the smallest angle of the chord triangle
	// accepted by FromThreePoints.
	minTriangleSine = 1e-6
)

// DefaultTolerance is the absolute angular tolerance used by the query
// methods that do not take one explicitly.
const DefaultTolerance = 1e-9 * s1.Radian

// normalizeAzimuth maps t into [0, 2π).
func normalizeAzimuth(t float64) float64 {
	t = math.Mod(t, twoPi)
	if t < 0 {
		t += twoPi
	}
	if t >= twoPi {
		t = 0
	}
	return t
}

// toIntervalAzimuth maps an azimuth into the (-π, π] range used by s1.Interval.
func toIntervalAzimuth(t float64) float64 {
	t = math.Remainder(t, twoPi)
	if t == -math.Pi {
		t = math.Pi
	}
	return t
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
