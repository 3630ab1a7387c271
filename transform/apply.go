// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/lvgeom/bounds"
	"github.com/katalvlaran/lvgeom/geom"
)

// Point applies the full homogeneous map to p. The result is divided by
// the homogeneous weight only when it differs from 1.
func (t Transform) Point(p geom.Point3f) geom.Point3f {
	m := &t.m
	x, y, z := p[0], p[1], p[2]
	xp := m[0]*x + m[1]*y + m[2]*z + m[3]
	yp := m[4]*x + m[5]*y + m[6]*z + m[7]
	zp := m[8]*x + m[9]*y + m[10]*z + m[11]
	wp := m[12]*x + m[13]*y + m[14]*z + m[15]
	if wp == 1 {
		return geom.Point3f{xp, yp, zp}
	}
	return geom.Point3f{xp / wp, yp / wp, zp / wp}
}

// Vector applies the upper-left 3×3 block to v.
func (t Transform) Vector(v geom.Vector3f) geom.Vector3f {
	m := &t.m
	x, y, z := v[0], v[1], v[2]
	return geom.Vector3f{
		m[0]*x + m[1]*y + m[2]*z,
		m[4]*x + m[5]*y + m[6]*z,
		m[8]*x + m[9]*y + m[10]*z,
	}
}

// Normal applies the transpose of the inverse to n:
// n'_i = Σ_j inv[j][i]·n_j. The result is not renormalized.
func (t Transform) Normal(n geom.Normal3f) geom.Normal3f {
	inv := &t.mInv
	x, y, z := n[0], n[1], n[2]
	return geom.Normal3f{
		inv[0]*x + inv[4]*y + inv[8]*z,
		inv[1]*x + inv[5]*y + inv[9]*z,
		inv[2]*x + inv[6]*y + inv[10]*z,
	}
}

// Bounds returns the box enclosing the eight transformed corners of b.
func (t Transform) Bounds(b bounds.Bounds3f) bounds.Bounds3f {
	out := bounds.Empty3[float32]()
	for i := 0; i < 8; i++ {
		out = out.UnionPoint(t.Point(b.Corner(i)))
	}
	return out
}
