package geom2s

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Intersect returns the points shared by a and b using DefaultTolerance.
func Intersect(a, b Curve) ([]s2.Point, error) {
	return IntersectWithin(a, b, DefaultTolerance)
}

// IntersectWithin returns the points shared by a and b, treating angular
// differences of at most tol as zero.
//
// Curves that touch yield one point and curves that cross yield two, ordered
// so the first lies to the left of the path from a's pole to b's pole. When
// there are no shared points the error is ErrNoIntersection. When the curves
// overlap along a stretch of positive length, so that the intersection is
// not a finite set, the error is ErrCoincident.
//
// Arcs are intersected through their supporting circles, keeping only the
// points that fall within both arcs.
func IntersectWithin(a, b Curve, tol s1.Angle) ([]s2.Point, error) {
	ca, ra := a.support()
	cb, rb := b.support()

	points, err := intersectCircles(ca, cb, tol.Radians())
	if errors.Is(err, ErrCoincident) {
		return overlap(ca, ra, cb, rb, tol)
	}
	if err != nil {
		return nil, err
	}

	kept := points[:0]
	for _, p := range points {
		if inRange(ca, ra, p, tol) && inRange(cb, rb, p, tol) {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: crossings of the supporting circles lie outside the arcs", ErrNoIntersection)
	}
	return kept, nil
}

// intersectCircles intersects two full small circles.
//
// The solution is found in the frame of a, where a point of a is fixed by its
// azimuth φ. With b's pole at azimuth θ and distance d from a's pole, the
// spherical law of cosines gives
//
//	cos(φ-θ) = (cos r2 - cos r1·cos d) / (sin r1·sin d).
//
// Points are generated on a, and an error in φ moves them along a, which
// changes their distance from b by only about sin(d) times that error. This
// keeps the residuals small even when the poles are nearly coincident or
// antipodal.
func intersectCircles(a, b SmallCircle, tol float64) ([]s2.Point, error) {
	d := a.pole.Distance(b.pole).Radians()
	r1, r2 := a.radius.Radians(), b.radius.Radians()

	// Poles that are coincident or antipodal within tol leave θ undefined.
	// Such circles either share their locus or are nested.
	switch {
	case d <= tol:
		if math.Abs(r1-r2) <= tol {
			return nil, ErrCoincident
		}
		return nil, fmt.Errorf("%w: concentric circles of radius %v and %v", ErrNoIntersection, r1, r2)
	case d >= math.Pi-tol:
		if math.Abs(r1-(math.Pi-r2)) <= tol {
			return nil, ErrCoincident
		}
		return nil, fmt.Errorf("%w: circles about antipodal poles with radius %v and %v", ErrNoIntersection, r1, r2)
	}

	// An intersection point forms a spherical triangle with the two poles
	// whose sides are r1, r2 and d. It exists iff all margins are >= 0 and
	// is a tangency iff one of them is 0.
	margin := math.Min(r1+r2-d, math.Min(d-math.Abs(r1-r2), twoPi-(r1+r2+d)))
	if margin < -tol {
		return nil, fmt.Errorf("%w: poles %v apart with radius %v and %v", ErrNoIntersection, d, r1, r2)
	}

	q := a.frame.toLocal(b.pole.Vector)
	sinD := math.Hypot(q.X, q.Y)
	if sinD == 0 {
		return nil, fmt.Errorf("%w: poles %v apart have no defined bearing", ErrDegenerateGeometry, d)
	}
	theta := math.Atan2(q.Y, q.X)
	cosPhi := (b.cosR - a.cosR*q.Z) / (a.sinR * sinD)

	if margin <= tol {
		if cosPhi < 0 {
			return []s2.Point{a.PointAt(theta + math.Pi)}, nil
		}
		return []s2.Point{a.PointAt(theta)}, nil
	}
	// Azimuth θ+π/2 points along a.pole × b.pole, so θ+h is on the left.
	h := math.Acos(clamp(cosPhi, -1, 1))
	return []s2.Point{a.PointAt(theta + h), a.PointAt(theta - h)}, nil
}

// inRange reports whether p, a point of c, lies within azimuth range r
// widened by tol.
func inRange(c SmallCircle, r s1.Interval, p s2.Point, tol s1.Angle) bool {
	if r.IsFull() {
		return true
	}
	return r.Expanded(tol.Radians()/c.sinR).Contains(toIntervalAzimuth(c.Position(p)))
}

// overlap intersects two curves whose supporting circles share a locus.
//
// The azimuth ranges may overlap in two pieces when together they wrap the
// whole circle, so the shared length is measured through their union rather
// than their intersection. Without a shared stretch the curves can still
// meet at their endpoints, at up to two points.
func overlap(ca SmallCircle, ra s1.Interval, cb SmallCircle, rb s1.Interval, tol s1.Angle) ([]s2.Point, error) {
	rb = rangeOn(ca, cb, rb)
	margin := tol.Radians() / ca.sinR

	if shared := ra.Length() + rb.Length() - ra.Union(rb).Length(); shared > margin {
		return nil, ErrCoincident
	}

	var touches []float64
	addTouch := func(t float64, other s1.Interval) {
		if !other.Expanded(margin).Contains(t) {
			return
		}
		for _, u := range touches {
			if math.Abs(math.Remainder(t-u, twoPi)) <= margin {
				return
			}
		}
		touches = append(touches, t)
	}
	for _, ends := range [][2]s1.Interval{{ra, rb}, {rb, ra}} {
		if r := ends[0]; !r.IsFull() {
			addTouch(r.Lo, ends[1])
			addTouch(r.Hi, ends[1])
		}
	}
	if len(touches) == 0 {
		return nil, fmt.Errorf("%w: disjoint arcs of one circle", ErrNoIntersection)
	}

	points := make([]s2.Point, 0, len(touches))
	for _, t := range touches {
		points = append(points, ca.PointAt(t))
	}
	return points, nil
}

// rangeOn re-expresses azimuth range r of src as a range of dst, where the
// two circles share a locus but may differ in orientation and frame.
func rangeOn(dst, src SmallCircle, r s1.Interval) s1.Interval {
	if r.IsFull() {
		return r
	}
	lo := dst.Position(src.PointAt(r.Lo))
	hi := dst.Position(src.PointAt(r.Hi))
	if dst.pole.Dot(src.pole.Vector) < 0 {
		lo, hi = hi, lo
	}
	return s1.IntervalFromEndpoints(toIntervalAzimuth(lo), toIntervalAzimuth(hi))
}
