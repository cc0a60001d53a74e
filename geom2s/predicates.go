package geom2s

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

const (
	maxDetError = 0.8e-15 // 14 * (2**-54)
)

// triageSign returns the sign of the determinant of a, b, c when it can be
// decided in floating point, and 0 when the result is uncertain. aCrossB
// must be a.Cross(b).
func triageSign(aCrossB r3.Vector, c s2.Point) int {
	det := aCrossB.Dot(c.Vector)
	if det > maxDetError {
		return 1
	}
	if det < -maxDetError {
		return -1
	}
	return 0
}

// exactSign computes the sign of the determinant of a, b, c exactly. Unlike
// s2.RobustSign it applies no symbolic perturbation, so it reports 0 for
// points that lie exactly on one great circle.
func exactSign(a, b, c s2.Point) int {
	xa := r3.PreciseVectorFromVector(a.Vector)
	xb := r3.PreciseVectorFromVector(b.Vector)
	xc := r3.PreciseVectorFromVector(c.Vector)
	return xa.Dot(xb.Cross(xc)).Sign()
}

// orientation returns +1 if a, b, c are counterclockwise, -1 if they are
// clockwise and 0 if they lie exactly on a common great circle.
func orientation(a, b, c s2.Point) int {
	if sign := triageSign(a.Cross(b.Vector), c); sign != 0 {
		return sign
	}
	return exactSign(a, b, c)
}
