package geom2s

import (
	"math"

	"github.com/golang/geo/r3"
)

var (
	worldX = r3.Vector{X: 1, Y: 0, Z: 0}
	worldY = r3.Vector{X: 0, Y: 1, Z: 0}
)

// frame is a 3x3 rotation matrix whose columns are the orthonormal basis
// (u, v, w) of a curve. The w column is the pole; azimuths are measured
// counterclockwise about it starting from u.
type frame [3][3]float64

func frameFromCols(u, v, w r3.Vector) frame {
	return frame{
		{u.X, v.X, w.X},
		{u.Y, v.Y, w.Y},
		{u.Z, v.Z, w.Z},
	}
}

// frameFromPole builds the frame for a unit pole. The reference direction is
// world X orthogonalized against the pole; when the pole is too close to X to
// do that accurately, world Y is used instead. The choice is a pure function
// of the pole so equal circles always get equal frames.
func frameFromPole(pole r3.Vector) frame {
	axis := worldX
	if math.Abs(pole.X) >= 0.9 {
		axis = worldY
	}
	u := axis.Sub(pole.Mul(axis.Dot(pole))).Normalize()
	v := pole.Cross(u) // Already unit-length.
	return frameFromCols(u, v, pole)
}

func (m frame) col(i int) r3.Vector {
	return r3.Vector{X: m[0][i], Y: m[1][i], Z: m[2][i]}
}

func (m frame) transpose() frame {
	return frame{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

func (m frame) mulVector(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// toLocal expresses a world vector in frame coordinates.
func (m frame) toLocal(p r3.Vector) r3.Vector {
	return m.transpose().mulVector(p)
}

// toWorld is the inverse of toLocal.
func (m frame) toWorld(q r3.Vector) r3.Vector {
	return m.mulVector(q)
}
