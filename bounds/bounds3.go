// SPDX-License-Identifier: MIT

package bounds

import (
	"github.com/katalvlaran/lvgeom/geom"
	"github.com/katalvlaran/lvgeom/scalar"
)

// New3 returns the box spanned by two arbitrary corners.
func New3[T scalar.Number](p1, p2 geom.Point3[T]) Bounds3[T] {
	return Bounds3[T]{
		Min: geom.MinPoint3(p1, p2),
		Max: geom.MaxPoint3(p1, p2),
	}
}

// FromPoint3 returns the degenerate box holding only p.
func FromPoint3[T scalar.Number](p geom.Point3[T]) Bounds3[T] {
	return Bounds3[T]{Min: p, Max: p}
}

// FromCorners3 trusts lo and hi as given; the caller guarantees
// lo ≤ hi on every axis.
func FromCorners3[T scalar.Number](lo, hi geom.Point3[T]) Bounds3[T] {
	return Bounds3[T]{Min: lo, Max: hi}
}

// Universe3 spans the whole coordinate domain of T.
func Universe3[T scalar.Number]() Bounds3[T] {
	lo, hi := scalar.Lowest[T](), scalar.Highest[T]()
	return Bounds3[T]{Min: geom.Point3[T]{lo, lo, lo}, Max: geom.Point3[T]{hi, hi, hi}}
}

// Empty3 contains no point; it is the identity of Union.
func Empty3[T scalar.Number]() Bounds3[T] {
	lo, hi := scalar.Lowest[T](), scalar.Highest[T]()
	return Bounds3[T]{Min: geom.Point3[T]{hi, hi, hi}, Max: geom.Point3[T]{lo, lo, lo}}
}

// Diagonal returns Max - Min.
func (b Bounds3[T]) Diagonal() geom.Vector3[T] {
	return b.Max.Sub(b.Min)
}

// Volume returns the product of the three diagonal components.
func (b Bounds3[T]) Volume() T {
	d := b.Diagonal()
	return d[0] * d[1] * d[2]
}

// SurfaceArea returns the total area of the six faces.
func (b Bounds3[T]) SurfaceArea() T {
	d := b.Diagonal()
	return 2 * (d[0]*d[1] + d[0]*d[2] + d[1]*d[2])
}

// MaximumExtent returns the axis of the longest diagonal component.
//
// Tie-break policy: X wins only when strictly greater than both Y and Z;
// otherwise Y wins when strictly greater than Z; otherwise Z. Equal
// extents therefore resolve toward the later axis.
func (b Bounds3[T]) MaximumExtent() Axis {
	d := b.Diagonal()
	switch {
	case d[0] > d[1] && d[0] > d[2]:
		return X
	case d[1] > d[2]:
		return Y
	default:
		return Z
	}
}

// Corner returns one of the eight corners: bit 0 of i selects Max.x, bit 1
// Max.y and bit 2 Max.z.
func (b Bounds3[T]) Corner(i int) geom.Point3[T] {
	var p geom.Point3[T]
	for axis := 0; axis < 3; axis++ {
		if i&(1<<axis) != 0 {
			p[axis] = b.Max[axis]
		} else {
			p[axis] = b.Min[axis]
		}
	}
	return p
}

// IsEmpty reports whether Min exceeds Max on some axis.
func (b Bounds3[T]) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Inside reports whether p lies in the closed box.
func (b Bounds3[T]) Inside(p geom.Point3[T]) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// Union returns the smallest box holding b and o.
func (b Bounds3[T]) Union(o Bounds3[T]) Bounds3[T] {
	return Bounds3[T]{Min: geom.MinPoint3(b.Min, o.Min), Max: geom.MaxPoint3(b.Max, o.Max)}
}

// UnionPoint returns the smallest box holding b and p.
func (b Bounds3[T]) UnionPoint(p geom.Point3[T]) Bounds3[T] {
	return Bounds3[T]{Min: geom.MinPoint3(b.Min, p), Max: geom.MaxPoint3(b.Max, p)}
}

// Intersect returns the overlap of b and o; the result IsEmpty when they
// are disjoint.
func (b Bounds3[T]) Intersect(o Bounds3[T]) Bounds3[T] {
	return Bounds3[T]{Min: geom.MaxPoint3(b.Min, o.Min), Max: geom.MinPoint3(b.Max, o.Max)}
}

// Overlaps reports whether b and o share at least one point.
func (b Bounds3[T]) Overlaps(o Bounds3[T]) bool {
	return !b.Intersect(o).IsEmpty()
}

// Lerp maps a per-axis parameter t ∈ [0,1]³ to the point
// lerp(t_i, Min_i, Max_i), using the fused multiply-add form of
// scalar.Lerp.
func Lerp[T scalar.Float](b Bounds3[T], t geom.Point3[T]) geom.Point3[T] {
	return geom.Point3[T]{
		scalar.Lerp(t[0], b.Min[0], b.Max[0]),
		scalar.Lerp(t[1], b.Min[1], b.Max[1]),
		scalar.Lerp(t[2], b.Min[2], b.Max[2]),
	}
}

// Offset is the inverse of Lerp: the position of p relative to the box,
// (0,0,0) at Min and (1,1,1) at Max. Degenerate axes map to zero offset.
func Offset[T scalar.Float](b Bounds3[T], p geom.Point3[T]) geom.Vector3[T] {
	o := p.Sub(b.Min)
	for axis := 0; axis < 3; axis++ {
		if b.Max[axis] > b.Min[axis] {
			o[axis] /= b.Max[axis] - b.Min[axis]
		}
	}
	return o
}

// Centroid returns the midpoint of the box.
func Centroid[T scalar.Float](b Bounds3[T]) geom.Point3[T] {
	return geom.LerpPoint3(0.5, b.Min, b.Max)
}
