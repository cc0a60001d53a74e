package geom2s

import (
	"fmt"
	"iter"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// SmallCircle represents a circle on the unit sphere defined by its Eulerian
// pole and an angular radius: every point of the circle lies at exactly the
// radius from the pole, measured along the surface of the sphere. A small
// circle of radius π/2 is a great circle.
//
// A small circle is oriented: it is traversed counterclockwise about its pole.
// The circles (pole, r) and (-pole, π-r) cover the same points with opposite
// orientations; Reverse maps one to the other.
//
// SmallCircle is an immutable value. The zero value is an invalid circle;
// use FromPoleAndRadius or FromThreePoints to construct one.
type SmallCircle struct {
	pole   s2.Point
	radius s1.Angle
	sinR   float64
	cosR   float64
	frame  frame
}

// FromPoleAndRadius constructs a small circle from a pole, which need not be
// unit length, and a radius in (0, π).
//
// It returns ErrInvalidGeometry if the radius is out of range or the pole
// cannot be normalized, and ErrDegenerateGeometry if the radius is within
// DefaultTolerance of 0 or π, where the circle collapses to a point.
func FromPoleAndRadius(pole r3.Vector, radius s1.Angle) (SmallCircle, error) {
	r := radius.Radians()
	if math.IsNaN(r) || r <= 0 || r >= math.Pi {
		return SmallCircle{}, fmt.Errorf("%w: radius %v outside (0, π)", ErrInvalidGeometry, r)
	}
	if eps := DefaultTolerance.Radians(); r <= eps || r >= math.Pi-eps {
		return SmallCircle{}, fmt.Errorf("%w: radius %v collapses to a point", ErrDegenerateGeometry, r)
	}
	n := pole.Norm()
	if math.IsNaN(n) || math.IsInf(n, 0) || n < minPoleNorm {
		return SmallCircle{}, fmt.Errorf("%w: pole %v cannot be normalized", ErrInvalidGeometry, pole)
	}
	return newSmallCircle(pole.Mul(1/n), radius), nil
}

// FromThreePoints returns the unique small circle passing through p1, p2 and
// p3. The circle is oriented so that it visits p1, p2, p3 in that order;
// permuting the points yields either the same circle or its reverse.
//
// It returns ErrInvalidGeometry if any two points coincide, if the three
// points lie on a single great circle, or if they are so nearly collinear in
// space that the fitted pole would not be accurate.
func FromThreePoints(p1, p2, p3 s2.Point) (SmallCircle, error) {
	tol := DefaultTolerance
	if p1.Distance(p2) <= tol || p2.Distance(p3) <= tol || p3.Distance(p1) <= tol {
		return SmallCircle{}, fmt.Errorf("%w: coincident points", ErrInvalidGeometry)
	}
	if orientation(p1, p2, p3) == 0 {
		return SmallCircle{}, fmt.Errorf("%w: points lie on a great circle", ErrInvalidGeometry)
	}

	// The normal of the plane through the three points. This is the
	// spherical analogue of intersecting the perpendicular bisectors:
	// every bisector great circle passes through ±n.
	n := p1.Cross(p2.Vector).Add(p2.Cross(p3.Vector)).Add(p3.Cross(p1.Vector))
	norm := n.Norm()
	if norm < minPoleNorm {
		return SmallCircle{}, fmt.Errorf("%w: coincident points", ErrInvalidGeometry)
	}
	// n is twice the area of the chord triangle, so this is the sine of its
	// smallest angle. A thin triangle leaves the plane, and the pole, poorly
	// determined.
	a, b, c := p1.Sub(p2.Vector).Norm(), p2.Sub(p3.Vector).Norm(), p3.Sub(p1.Vector).Norm()
	if sin := norm * math.Min(a, math.Min(b, c)) / (a * b * c); sin < minTriangleSine {
		return SmallCircle{}, fmt.Errorf("%w: points are too close to collinear to fit a circle", ErrInvalidGeometry)
	}
	pole := s2.Point{Vector: n.Mul(1 / norm)}

	r := (float64(pole.Distance(p1)) + float64(pole.Distance(p2)) + float64(pole.Distance(p3))) / 3
	if math.Abs(r-piOn2) <= tol.Radians() {
		return SmallCircle{}, fmt.Errorf("%w: points lie on a great circle", ErrInvalidGeometry)
	}
	return FromPoleAndRadius(pole.Vector, s1.Angle(r))
}

// newSmallCircle builds a circle from a unit pole and a valid radius.
func newSmallCircle(pole r3.Vector, radius s1.Angle) SmallCircle {
	sinR, cosR := math.Sincos(radius.Radians())
	if radius.Radians() == piOn2 {
		// cos(π/2) evaluates to 6e-17; keep great circles exact.
		sinR, cosR = 1, 0
	}
	return SmallCircle{
		pole:   s2.Point{Vector: pole},
		radius: radius,
		sinR:   sinR,
		cosR:   cosR,
		frame:  frameFromPole(pole),
	}
}

// Pole returns the circle's Eulerian pole.
func (c SmallCircle) Pole() s2.Point { return c.pole }

// Radius returns the angular radius of the circle.
func (c SmallCircle) Radius() s1.Angle { return c.radius }

// IsValid reports whether the circle has a unit pole and a radius in (0, π).
func (c SmallCircle) IsValid() bool {
	r := c.radius.Radians()
	return c.pole.IsUnit() && r > 0 && r < math.Pi
}

// IsGreatCircle reports whether the circle has a radius of exactly π/2.
func (c SmallCircle) IsGreatCircle() bool {
	return c.cosR == 0
}

// Contains reports whether p lies on the circle within DefaultTolerance.
func (c SmallCircle) Contains(p s2.Point) bool {
	return c.ContainsWithin(p, DefaultTolerance)
}

// ContainsWithin reports whether the angular distance between p and the
// circle is at most tol.
func (c SmallCircle) ContainsWithin(p s2.Point, tol s1.Angle) bool {
	return c.Distance(p) <= tol
}

// Distance returns the angular distance between p and the nearest point of
// the circle.
func (c SmallCircle) Distance(p s2.Point) s1.Angle {
	return c.SignedDistance(p).Abs()
}

// SignedDistance returns the angular distance between p and the circle,
// negative when p is closer to the pole than the circle is.
func (c SmallCircle) SignedDistance(p s2.Point) s1.Angle {
	return c.pole.Distance(p) - c.radius
}

// IsInside reports whether p lies strictly on the pole's side of the circle.
func (c SmallCircle) IsInside(p s2.Point) bool {
	return c.pole.Distance(p) < c.radius
}

// Length returns the circumference of the circle, 2π·sin(radius).
func (c SmallCircle) Length() float64 {
	return twoPi * c.sinR
}

// Cap returns the spherical cap bounded by the circle on the pole's side.
func (c SmallCircle) Cap() s2.Cap {
	return s2.CapFromCenterAngle(c.pole, c.radius)
}

// Area returns the area of the cap bounded by the circle.
func (c SmallCircle) Area() float64 {
	return c.Cap().Area()
}

// PointAt returns the point of the circle at azimuth t, measured
// counterclockwise about the pole from the circle's reference direction.
func (c SmallCircle) PointAt(t float64) s2.Point {
	sin, cos := math.Sincos(t)
	local := r3.Vector{X: c.sinR * cos, Y: c.sinR * sin, Z: c.cosR}
	return s2.Point{Vector: c.frame.toWorld(local).Normalize()}
}

// Position returns the azimuth in [0, 2π) of p projected onto the circle.
// It is the inverse of PointAt for points on the circle.
func (c SmallCircle) Position(p s2.Point) float64 {
	q := c.frame.toLocal(p.Vector)
	return normalizeAzimuth(math.Atan2(q.Y, q.X))
}

// Tangent returns the derivative of PointAt at t.
func (c SmallCircle) Tangent(t float64) r3.Vector {
	sin, cos := math.Sincos(t)
	return c.frame.toWorld(r3.Vector{X: -c.sinR * sin, Y: c.sinR * cos, Z: 0})
}

// Samples returns n points equally spaced in azimuth, starting at azimuth 0.
func (c SmallCircle) Samples(n int) iter.Seq2[int, s2.Point] {
	return Sample(c, n)
}

// Intersections returns the points shared by the circle and other, using
// DefaultTolerance. See IntersectWithin.
func (c SmallCircle) Intersections(other Curve) ([]s2.Point, error) {
	return IntersectWithin(c, other, DefaultTolerance)
}

// IsClosed reports true: a circle is a closed curve.
func (c SmallCircle) IsClosed() bool { return true }

// Reverse returns the circle covering the same points with the opposite
// orientation.
func (c SmallCircle) Reverse() SmallCircle {
	return newSmallCircle(c.pole.Mul(-1), s1.Angle(math.Pi)-c.radius)
}

// SubCurve returns the arc of the circle running counterclockwise from
// azimuth t0 to azimuth t1.
func (c SmallCircle) SubCurve(t0, t1 float64) (Arc, error) {
	return NewArc(c, t0, normalizeAzimuth(t1-t0))
}

// ApproxEqual reports whether the circles have the same pole and radius
// within DefaultTolerance.
func (c SmallCircle) ApproxEqual(other SmallCircle) bool {
	return c.ApproxEqualWithin(other, DefaultTolerance)
}

// ApproxEqualWithin reports whether both the poles and the radii of the
// circles differ by at most tol.
func (c SmallCircle) ApproxEqualWithin(other SmallCircle, tol s1.Angle) bool {
	return c.pole.Distance(other.pole) <= tol && (c.radius-other.radius).Abs() <= tol
}

// SameLocus reports whether the circles cover the same points within tol,
// regardless of orientation.
func (c SmallCircle) SameLocus(other SmallCircle, tol s1.Angle) bool {
	return c.ApproxEqualWithin(other, tol) || c.ApproxEqualWithin(other.Reverse(), tol)
}

func (c SmallCircle) String() string {
	return fmt.Sprintf("[Pole=%v, Radius=%f]", c.pole.Vector, c.radius.Degrees())
}

func (c SmallCircle) support() (SmallCircle, s1.Interval) {
	return c, s1.FullInterval()
}

func (c SmallCircle) span() float64 { return twoPi }
