package geom2s

import (
	"fmt"
	"iter"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// GreatCircle is the intersection of the sphere with a plane through its
// center, the sphere's analogue of a straight line. It is the small circle of
// radius exactly π/2 about its pole, and is oriented counterclockwise about
// that pole.
type GreatCircle struct {
	circle SmallCircle
}

// GreatCircleFromPole returns the great circle whose plane is orthogonal to
// pole. It returns ErrInvalidGeometry if pole cannot be normalized.
func GreatCircleFromPole(pole r3.Vector) (GreatCircle, error) {
	c, err := FromPoleAndRadius(pole, piOn2*s1.Radian)
	if err != nil {
		return GreatCircle{}, err
	}
	return GreatCircle{circle: c}, nil
}

// GreatCircleThrough returns the great circle that passes through a and then
// b. It returns ErrInvalidGeometry if the points coincide or are antipodal,
// since no unique great circle passes through them.
func GreatCircleThrough(a, b s2.Point) (GreatCircle, error) {
	d := a.Distance(b)
	if d <= DefaultTolerance || d >= s1.Angle(math.Pi)-DefaultTolerance {
		return GreatCircle{}, fmt.Errorf("%w: points %v and %v coincide or are antipodal", ErrInvalidGeometry, a, b)
	}
	return GreatCircleFromPole(a.PointCross(b).Vector)
}

// Pole returns the pole of the circle's plane.
func (g GreatCircle) Pole() s2.Point { return g.circle.pole }

// Circle returns the great circle as a small circle of radius π/2.
func (g GreatCircle) Circle() SmallCircle { return g.circle }

// Contains reports whether p lies on the great circle within DefaultTolerance.
func (g GreatCircle) Contains(p s2.Point) bool { return g.circle.Contains(p) }

// ContainsWithin reports whether p lies within tol of the great circle.
func (g GreatCircle) ContainsWithin(p s2.Point, tol s1.Angle) bool {
	return g.circle.ContainsWithin(p, tol)
}

// Length returns 2π.
func (g GreatCircle) Length() float64 { return twoPi }

// PointAt returns the point of the great circle at azimuth t about its pole.
func (g GreatCircle) PointAt(t float64) s2.Point { return g.circle.PointAt(t) }

// Position returns the azimuth in [0, 2π) of p projected onto the circle.
func (g GreatCircle) Position(p s2.Point) float64 { return g.circle.Position(p) }

// Samples returns n points equally spaced along the great circle.
func (g GreatCircle) Samples(n int) iter.Seq2[int, s2.Point] { return Sample(g, n) }

// Intersections returns the points shared by the great circle and other.
func (g GreatCircle) Intersections(other Curve) ([]s2.Point, error) {
	return IntersectWithin(g, other, DefaultTolerance)
}

// IsClosed reports true.
func (g GreatCircle) IsClosed() bool { return true }

// Reverse returns the great circle with the opposite orientation.
func (g GreatCircle) Reverse() GreatCircle {
	return GreatCircle{circle: g.circle.Reverse()}
}

func (g GreatCircle) String() string {
	return fmt.Sprintf("[GreatCircle Pole=%v]", g.circle.pole.Vector)
}

func (g GreatCircle) support() (SmallCircle, s1.Interval) { return g.circle.support() }

func (g GreatCircle) span() float64 { return twoPi }
