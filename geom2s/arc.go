package geom2s

import (
	"fmt"
	"iter"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Arc is a connected piece of a small circle. It starts at azimuth Start on
// its supporting circle and runs counterclockwise about the circle's pole for
// Extent radians of azimuth. The arc's own parameter t runs over [0, Extent].
type Arc struct {
	circle SmallCircle
	start  float64
	extent float64
}

// NewArc returns the arc of c starting at azimuth start and covering extent
// radians of azimuth. The extent must lie in (0, 2π]; an extent of 2π covers
// the whole circle.
func NewArc(c SmallCircle, start, extent float64) (Arc, error) {
	if !c.IsValid() {
		return Arc{}, fmt.Errorf("%w: invalid supporting circle %v", ErrInvalidGeometry, c)
	}
	if math.IsNaN(start) || math.IsInf(start, 0) {
		return Arc{}, fmt.Errorf("%w: start azimuth %v", ErrInvalidGeometry, start)
	}
	if math.IsNaN(extent) || extent <= 0 || extent > twoPi {
		return Arc{}, fmt.Errorf("%w: extent %v outside (0, 2π]", ErrInvalidGeometry, extent)
	}
	return Arc{circle: c, start: normalizeAzimuth(start), extent: extent}, nil
}

// ArcBetween returns the shorter great-circle arc from a to b. It returns
// ErrInvalidGeometry if the points coincide or are antipodal.
func ArcBetween(a, b s2.Point) (Arc, error) {
	g, err := GreatCircleThrough(a, b)
	if err != nil {
		return Arc{}, err
	}
	return NewArc(g.circle, g.circle.Position(a), a.Distance(b).Radians())
}

// Circle returns the supporting circle of the arc.
func (a Arc) Circle() SmallCircle { return a.circle }

// Start returns the azimuth in [0, 2π) at which the arc begins.
func (a Arc) Start() float64 { return a.start }

// Extent returns the azimuthal extent of the arc.
func (a Arc) Extent() float64 { return a.extent }

// FirstPoint returns the point at which the arc begins.
func (a Arc) FirstPoint() s2.Point { return a.PointAt(0) }

// LastPoint returns the point at which the arc ends.
func (a Arc) LastPoint() s2.Point { return a.PointAt(a.extent) }

// Length returns the length of the arc, extent·sin(radius).
func (a Arc) Length() float64 { return a.extent * a.circle.sinR }

// PointAt returns the point at parameter t in [0, Extent].
func (a Arc) PointAt(t float64) s2.Point {
	return a.circle.PointAt(a.start + t)
}

// Position returns the arc parameter of p projected onto the supporting
// circle, in [0, 2π). Values beyond Extent mean the projection falls outside
// the arc.
func (a Arc) Position(p s2.Point) float64 {
	return normalizeAzimuth(a.circle.Position(p) - a.start)
}

// Contains reports whether p lies on the arc within DefaultTolerance.
func (a Arc) Contains(p s2.Point) bool {
	return a.ContainsWithin(p, DefaultTolerance)
}

// ContainsWithin reports whether p lies within tol of the arc's supporting
// circle and projects inside the arc, allowing tol past either endpoint.
func (a Arc) ContainsWithin(p s2.Point, tol s1.Angle) bool {
	if !a.circle.ContainsWithin(p, tol) {
		return false
	}
	return a.covers(a.circle.Position(p), tol)
}

// covers reports whether azimuth t of the supporting circle is within the
// arc, widened by the azimuth equivalent of tol.
func (a Arc) covers(t float64, tol s1.Angle) bool {
	return a.interval().Expanded(tol.Radians()/a.circle.sinR).Contains(toIntervalAzimuth(t))
}

// interval returns the azimuth range of the arc on its supporting circle.
func (a Arc) interval() s1.Interval {
	if a.extent >= twoPi {
		return s1.FullInterval()
	}
	return s1.IntervalFromEndpoints(toIntervalAzimuth(a.start), toIntervalAzimuth(a.start+a.extent))
}

// Samples returns n points equally spaced along the arc, including both
// endpoints when n > 1.
func (a Arc) Samples(n int) iter.Seq2[int, s2.Point] { return Sample(a, n) }

// Intersections returns the points shared by the arc and other.
func (a Arc) Intersections(other Curve) ([]s2.Point, error) {
	return IntersectWithin(a, other, DefaultTolerance)
}

// IsClosed reports whether the arc covers its whole supporting circle.
func (a Arc) IsClosed() bool { return a.extent >= twoPi }

// Reverse returns the arc covering the same points traversed from the last
// point to the first.
func (a Arc) Reverse() Arc {
	rc := a.circle.Reverse()
	return Arc{circle: rc, start: rc.Position(a.LastPoint()), extent: a.extent}
}

func (a Arc) String() string {
	return fmt.Sprintf("[Arc Circle=%v, Start=%f, Extent=%f]", a.circle, a.start, a.extent)
}

func (a Arc) support() (SmallCircle, s1.Interval) { return a.circle, a.interval() }

func (a Arc) span() float64 { return a.extent }
