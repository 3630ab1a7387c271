// SPDX-License-Identifier: MIT

package bounds

import (
	"github.com/katalvlaran/lvgeom/geom"
	"github.com/katalvlaran/lvgeom/scalar"
)

// New2 returns the rectangle spanned by two arbitrary corners.
func New2[T scalar.Number](p1, p2 geom.Point2[T]) Bounds2[T] {
	return Bounds2[T]{
		Min: geom.MinPoint2(p1, p2),
		Max: geom.MaxPoint2(p1, p2),
	}
}

// FromPoint2 returns the degenerate rectangle holding only p.
func FromPoint2[T scalar.Number](p geom.Point2[T]) Bounds2[T] {
	return Bounds2[T]{Min: p, Max: p}
}

// FromCorners2 trusts lo and hi as given; the caller guarantees
// lo ≤ hi on every axis.
func FromCorners2[T scalar.Number](lo, hi geom.Point2[T]) Bounds2[T] {
	return Bounds2[T]{Min: lo, Max: hi}
}

// Universe2 spans the whole coordinate domain of T.
func Universe2[T scalar.Number]() Bounds2[T] {
	lo, hi := scalar.Lowest[T](), scalar.Highest[T]()
	return Bounds2[T]{Min: geom.Point2[T]{lo, lo}, Max: geom.Point2[T]{hi, hi}}
}

// Empty2 contains no point; it is the identity of Union.
func Empty2[T scalar.Number]() Bounds2[T] {
	lo, hi := scalar.Lowest[T](), scalar.Highest[T]()
	return Bounds2[T]{Min: geom.Point2[T]{hi, hi}, Max: geom.Point2[T]{lo, lo}}
}

// Diagonal returns Max - Min.
func (b Bounds2[T]) Diagonal() geom.Vector2[T] {
	return b.Max.Sub(b.Min)
}

// Area returns the product of the diagonal components.
func (b Bounds2[T]) Area() T {
	d := b.Diagonal()
	return d[0] * d[1]
}

// MaximumExtent returns X if the x extent is strictly the largest,
// otherwise Y.
func (b Bounds2[T]) MaximumExtent() Axis {
	d := b.Diagonal()
	if d[0] > d[1] {
		return X
	}
	return Y
}

// IsEmpty reports whether Min exceeds Max on some axis.
func (b Bounds2[T]) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1]
}

// Inside reports whether p lies in the closed rectangle.
func (b Bounds2[T]) Inside(p geom.Point2[T]) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1]
}

// Union returns the smallest rectangle holding b and o.
func (b Bounds2[T]) Union(o Bounds2[T]) Bounds2[T] {
	return Bounds2[T]{Min: geom.MinPoint2(b.Min, o.Min), Max: geom.MaxPoint2(b.Max, o.Max)}
}

// UnionPoint returns the smallest rectangle holding b and p.
func (b Bounds2[T]) UnionPoint(p geom.Point2[T]) Bounds2[T] {
	return Bounds2[T]{Min: geom.MinPoint2(b.Min, p), Max: geom.MaxPoint2(b.Max, p)}
}

// Intersect returns the overlap of b and o; the result IsEmpty when they
// are disjoint.
func (b Bounds2[T]) Intersect(o Bounds2[T]) Bounds2[T] {
	return Bounds2[T]{Min: geom.MaxPoint2(b.Min, o.Min), Max: geom.MinPoint2(b.Max, o.Max)}
}

// Overlaps reports whether b and o share at least one point.
func (b Bounds2[T]) Overlaps(o Bounds2[T]) bool {
	return !b.Intersect(o).IsEmpty()
}

// Lerp2 maps t ∈ [0,1]² to the point lerp(t_i, Min_i, Max_i) per axis.
func Lerp2[T scalar.Float](b Bounds2[T], t geom.Point2[T]) geom.Point2[T] {
	return geom.Point2[T]{
		scalar.Lerp(t[0], b.Min[0], b.Max[0]),
		scalar.Lerp(t[1], b.Min[1], b.Max[1]),
	}
}
