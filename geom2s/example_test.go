package geom2s_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/davidreynolds/sphere/geom2s"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

func ExampleFromPoleAndRadius() {
	c, err := geom2s.FromPoleAndRadius(r3.Vector{X: 0, Y: 0, Z: 1}, math.Pi/4*s1.Radian)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("length: %.4f\n", c.Length())
	fmt.Println(c.Contains(s2.PointFromCoords(1, 0, 1)))
	fmt.Println(c.Contains(s2.PointFromCoords(1, 0, 0)))
	// Output:
	// length: 4.4429
	// true
	// false
}

func ExampleFromThreePoints() {
	c, err := geom2s.FromThreePoints(
		s2.PointFromCoords(1, 0, 1),
		s2.PointFromCoords(0, 1, 1),
		s2.PointFromCoords(-1, 0, 1),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("radius: %.1f°\n", c.Radius().Degrees())
	fmt.Printf("pole z: %.3f\n", c.Pole().Z)
	// Output:
	// radius: 45.0°
	// pole z: 1.000
}

func ExampleIntersect() {
	inner, _ := geom2s.FromPoleAndRadius(r3.Vector{X: 0, Y: 0, Z: 1}, math.Pi/6*s1.Radian)
	outer, _ := geom2s.FromPoleAndRadius(r3.Vector{X: 0, Y: 0, Z: 1}, math.Pi/3*s1.Radian)

	points, err := geom2s.Intersect(inner, outer)
	fmt.Println(len(points), errors.Is(err, geom2s.ErrNoIntersection))

	_, err = geom2s.Intersect(inner, inner)
	fmt.Println(errors.Is(err, geom2s.ErrCoincident), errors.Is(err, geom2s.ErrDegenerateGeometry))
	// Output:
	// 0 true
	// true true
}

func ExampleSmallCircle_Samples() {
	c, _ := geom2s.FromPoleAndRadius(r3.Vector{X: 0, Y: 0, Z: 1}, math.Pi/2*s1.Radian)
	for i, p := range c.Samples(4) {
		ll := s2.LatLngFromPoint(p)
		fmt.Printf("%d: lat=%.0f lng=%.0f\n", i, ll.Lat.Degrees(), ll.Lng.Degrees())
	}
	// Output:
	// 0: lat=0 lng=0
	// 1: lat=0 lng=90
	// 2: lat=0 lng=180
	// 3: lat=0 lng=-90
}
