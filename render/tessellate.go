// Package render discretizes spherical curves into polylines and exports
// them for drawing on maps.
package render

import (
	"slices"
	"sync"

	"github.com/golang/geo/s2"
	"github.com/golang/groupcache/lru"

	"github.com/davidreynolds/sphere/geom2s"
)

// Polyline samples n points along c. The first point of a closed curve is
// appended again at the end so that the polyline forms a ring.
func Polyline(c geom2s.Curve, n int) s2.Polyline {
	line := make(s2.Polyline, 0, max(n, 0)+1)
	for _, p := range geom2s.Sample(c, n) {
		line = append(line, p)
	}
	if c.IsClosed() && len(line) > 0 {
		line = append(line, line[0])
	}
	return line
}

type tessKey struct {
	curve geom2s.Curve
	n     int
}

// Tessellator memoizes polylines of recently drawn curves. It is safe for
// concurrent use.
type Tessellator struct {
	cache *lru.Cache
	lock  sync.Mutex
}

// NewTessellator returns a Tessellator that keeps at most maxEntries
// polylines. Zero means no limit.
func NewTessellator(maxEntries int) *Tessellator {
	return &Tessellator{cache: lru.New(maxEntries)}
}

// Polyline returns the polyline of c with n samples, computing it only if it
// is not cached. The returned slice is owned by the caller.
func (t *Tessellator) Polyline(c geom2s.Curve, n int) s2.Polyline {
	key := tessKey{curve: c, n: n}
	t.lock.Lock()
	cached, ok := t.cache.Get(key)
	t.lock.Unlock()
	if ok {
		return slices.Clone(cached.(s2.Polyline))
	}

	line := Polyline(c, n)
	t.lock.Lock()
	t.cache.Add(key, line)
	t.lock.Unlock()
	return slices.Clone(line)
}

// Len returns the number of cached polylines.
func (t *Tessellator) Len() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.cache.Len()
}
