package geom2s

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry indicates malformed construction input: a radius
	// outside (0, π), a pole that cannot be normalized, or input points that
	// coincide or lie on a single great circle.
	ErrInvalidGeometry = errors.New("geom2s: invalid geometry")
	// ErrDegenerateGeometry indicates inputs on a numerically unstable
	// boundary, such as a radius within tolerance of 0 or π.
	ErrDegenerateGeometry = errors.New("geom2s: degenerate geometry")
	// ErrNoIntersection indicates a well-defined query with no solutions.
	ErrNoIntersection = errors.New("geom2s: no intersection")
	// ErrCoincident indicates two curves share a locus of positive length,
	// so their intersection is not a finite point set.
	ErrCoincident = fmt.Errorf("%w: coincident curves", ErrDegenerateGeometry)
)
