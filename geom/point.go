// SPDX-License-Identifier: MIT

// Package geom: point constructors and affine operations.
// This file defines:
//   - Pt2 / Pt3, the NaN-checked constructors,
//   - Point ± Vector → Point and Point - Point → Vector,
//   - tuple export (Tuple, XY) and lexicographic ordering,
//   - component-wise MinPoint* / MaxPoint*, used by bounds construction.
//
// Point + Point is not defined.

package geom

import (
	"github.com/katalvlaran/lvgeom/internal/tuple"
	"github.com/katalvlaran/lvgeom/scalar"
)

// Pt2 returns the point (x, y). Panics on NaN.
func Pt2[T scalar.Number](x, y T) Point2[T] {
	scalar.CheckNotNaN(opPt2, x, y)
	return Point2[T]{x, y}
}

// Pt3 returns the point (x, y, z). Panics on NaN.
func Pt3[T scalar.Number](x, y, z T) Point3[T] {
	scalar.CheckNotNaN(opPt3, x, y, z)
	return Point3[T]{x, y, z}
}

// ---------- Point2 ----------

// X returns the first coordinate.
func (p Point2[T]) X() T { return p[0] }

// Y returns the second coordinate.
func (p Point2[T]) Y() T { return p[1] }

// Add returns p displaced by v.
func (p Point2[T]) Add(v Vector2[T]) Point2[T] {
	tuple.Add(p[:], p[:], v[:])
	return p
}

// Sub returns the vector from q to p.
func (p Point2[T]) Sub(q Point2[T]) Vector2[T] {
	var v Vector2[T]
	tuple.Sub(v[:], p[:], q[:])
	return v
}

// SubVector returns p displaced by -v.
func (p Point2[T]) SubVector(v Vector2[T]) Point2[T] {
	tuple.Sub(p[:], p[:], v[:])
	return p
}

// Vector returns the displacement of p from the origin.
func (p Point2[T]) Vector() Vector2[T] { return Vector2[T](p) }

// Tuple returns the coordinates of p.
func (p Point2[T]) Tuple() (x, y T) { return p[0], p[1] }

// Compare orders points lexicographically.
func (p Point2[T]) Compare(q Point2[T]) int { return tuple.Compare(p[:], q[:]) }

// Less reports p < q in lexicographic order.
func (p Point2[T]) Less(q Point2[T]) bool { return p.Compare(q) < 0 }

// ---------- Point3 ----------

// X returns the first coordinate.
func (p Point3[T]) X() T { return p[0] }

// Y returns the second coordinate.
func (p Point3[T]) Y() T { return p[1] }

// Z returns the third coordinate.
func (p Point3[T]) Z() T { return p[2] }

// Add returns p displaced by v.
func (p Point3[T]) Add(v Vector3[T]) Point3[T] {
	tuple.Add(p[:], p[:], v[:])
	return p
}

// Sub returns the vector from q to p.
func (p Point3[T]) Sub(q Point3[T]) Vector3[T] {
	var v Vector3[T]
	tuple.Sub(v[:], p[:], q[:])
	return v
}

// SubVector returns p displaced by -v.
func (p Point3[T]) SubVector(v Vector3[T]) Point3[T] {
	tuple.Sub(p[:], p[:], v[:])
	return p
}

// Vector returns the displacement of p from the origin.
func (p Point3[T]) Vector() Vector3[T] { return Vector3[T](p) }

// XY drops the z coordinate.
func (p Point3[T]) XY() Point2[T] { return Point2[T]{p[0], p[1]} }

// Tuple returns the coordinates of p in x, y, z order.
func (p Point3[T]) Tuple() (x, y, z T) { return p[0], p[1], p[2] }

// Compare orders points lexicographically.
func (p Point3[T]) Compare(q Point3[T]) int { return tuple.Compare(p[:], q[:]) }

// Less reports p < q in lexicographic order.
func (p Point3[T]) Less(q Point3[T]) bool { return p.Compare(q) < 0 }

// MinPoint2 returns the component-wise minimum of a and b.
func MinPoint2[T scalar.Number](a, b Point2[T]) Point2[T] {
	tuple.Min(a[:], a[:], b[:])
	return a
}

// MaxPoint2 returns the component-wise maximum of a and b.
func MaxPoint2[T scalar.Number](a, b Point2[T]) Point2[T] {
	tuple.Max(a[:], a[:], b[:])
	return a
}

// MinPoint3 returns the component-wise minimum of a and b.
func MinPoint3[T scalar.Number](a, b Point3[T]) Point3[T] {
	tuple.Min(a[:], a[:], b[:])
	return a
}

// MaxPoint3 returns the component-wise maximum of a and b.
func MaxPoint3[T scalar.Number](a, b Point3[T]) Point3[T] {
	tuple.Max(a[:], a[:], b[:])
	return a
}
