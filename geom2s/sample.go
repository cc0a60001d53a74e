package geom2s

import (
	"iter"

	"github.com/golang/geo/s2"
)

// Sample returns a lazy sequence of n points equally spaced in parameter
// along c, each paired with its index. Points are computed as the sequence is
// consumed, and ranging over it again restarts from the first point.
//
// Closed curves are sampled over [0, 2π) so the first point is not repeated;
// open arcs are sampled over [0, Extent] including both endpoints.
func Sample(c Curve, n int) iter.Seq2[int, s2.Point] {
	return func(yield func(int, s2.Point) bool) {
		if n <= 0 {
			return
		}
		step := c.span() / float64(n)
		if !c.IsClosed() {
			step = 0
			if n > 1 {
				step = c.span() / float64(n-1)
			}
		}
		for i := 0; i < n; i++ {
			if !yield(i, c.PointAt(float64(i)*step)) {
				return
			}
		}
	}
}
