package geom2s

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Curve is a curve embedded on the unit sphere.
//
// The set of implementations is closed: SmallCircle, GreatCircle and Arc.
// Every curve is carried by a small circle (a great circle being the small
// circle of radius π/2), and is parameterized by azimuth about that circle's
// pole. Closed curves are parameterized over [0, 2π); an arc of extent e is
// parameterized over [0, e].
type Curve interface {
	// Contains reports whether p lies on the curve within DefaultTolerance.
	Contains(p s2.Point) bool
	// ContainsWithin reports whether p lies on the curve within tol.
	ContainsWithin(p s2.Point, tol s1.Angle) bool
	// Length returns the length of the curve on the unit sphere.
	Length() float64
	// PointAt returns the point of the curve at parameter t.
	PointAt(t float64) s2.Point
	// Intersections returns the points shared with other.
	Intersections(other Curve) ([]s2.Point, error)
	// IsClosed reports whether the curve's last point is its first.
	IsClosed() bool

	// support returns the small circle carrying the curve and the range of
	// azimuths on that circle covered by the curve.
	support() (SmallCircle, s1.Interval)
	// span returns the length of the parameter domain.
	span() float64
}

var (
	_ Curve = SmallCircle{}
	_ Curve = GreatCircle{}
	_ Curve = Arc{}
)
