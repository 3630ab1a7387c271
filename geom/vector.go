// SPDX-License-Identifier: MIT

// Package geom: vector constructors and arithmetic.
// This file defines:
//   - Vec2 / Vec3, the NaN-checked constructors,
//   - component-wise arithmetic on Vector2 and Vector3 via internal/tuple,
//   - Cross and CrossWide (float64-widened cross product),
//   - component reductions (MinComponent, MaxComponent, MaxDimension, Permute),
//   - component-wise MinVector3 / MaxVector3.
//
// Arithmetic results are not NaN-checked; only constructors and Neg are.

package geom

import (
	"github.com/katalvlaran/lvgeom/internal/tuple"
	"github.com/katalvlaran/lvgeom/scalar"
)

// Vec2 returns the vector (x, y). Panics on NaN.
func Vec2[T scalar.Number](x, y T) Vector2[T] {
	scalar.CheckNotNaN(opVec2, x, y)
	return Vector2[T]{x, y}
}

// Vec3 returns the vector (x, y, z). Panics on NaN.
func Vec3[T scalar.Number](x, y, z T) Vector3[T] {
	scalar.CheckNotNaN(opVec3, x, y, z)
	return Vector3[T]{x, y, z}
}

// ---------- Vector2 ----------

// X returns the first component.
func (v Vector2[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vector2[T]) Y() T { return v[1] }

// Add returns v + w.
func (v Vector2[T]) Add(w Vector2[T]) Vector2[T] {
	tuple.Add(v[:], v[:], w[:])
	return v
}

// Sub returns v - w.
func (v Vector2[T]) Sub(w Vector2[T]) Vector2[T] {
	tuple.Sub(v[:], v[:], w[:])
	return v
}

// Mul returns v scaled by s.
func (v Vector2[T]) Mul(s T) Vector2[T] {
	tuple.Scale(v[:], v[:], s)
	return v
}

// Div returns v divided by s.
func (v Vector2[T]) Div(s T) Vector2[T] {
	tuple.Div(v[:], v[:], s)
	return v
}

// Neg returns -v.
func (v Vector2[T]) Neg() Vector2[T] {
	tuple.Neg(v[:], v[:])
	scalar.CheckNotNaN(opNeg, v[:]...)
	return v
}

// Abs returns the component-wise absolute value.
func (v Vector2[T]) Abs() Vector2[T] {
	tuple.Abs(v[:], v[:])
	return v
}

// Dot returns v·w.
func (v Vector2[T]) Dot(w Vector2[T]) T {
	return tuple.Dot(v[:], w[:])
}

// Compare orders vectors lexicographically (x, then y).
func (v Vector2[T]) Compare(w Vector2[T]) int {
	return tuple.Compare(v[:], w[:])
}

// Less reports v < w in lexicographic order.
func (v Vector2[T]) Less(w Vector2[T]) bool {
	return v.Compare(w) < 0
}

// ---------- Vector3 ----------

// X returns the first component.
func (v Vector3[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vector3[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vector3[T]) Z() T { return v[2] }

// Add returns v + w.
func (v Vector3[T]) Add(w Vector3[T]) Vector3[T] {
	tuple.Add(v[:], v[:], w[:])
	return v
}

// Sub returns v - w.
func (v Vector3[T]) Sub(w Vector3[T]) Vector3[T] {
	tuple.Sub(v[:], v[:], w[:])
	return v
}

// Mul returns v scaled by s.
func (v Vector3[T]) Mul(s T) Vector3[T] {
	tuple.Scale(v[:], v[:], s)
	return v
}

// Div returns v divided by s. Dividing a float vector by zero yields
// infinities or NaN; no check is made here.
func (v Vector3[T]) Div(s T) Vector3[T] {
	tuple.Div(v[:], v[:], s)
	return v
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] {
	tuple.Neg(v[:], v[:])
	scalar.CheckNotNaN(opNeg, v[:]...)
	return v
}

// Abs returns the component-wise absolute value.
func (v Vector3[T]) Abs() Vector3[T] {
	tuple.Abs(v[:], v[:])
	return v
}

// Dot returns v·w. See the package-level Dot for Vector/Normal pairings.
func (v Vector3[T]) Dot(w Vector3[T]) T {
	return tuple.Dot(v[:], w[:])
}

// Cross returns v × w.
//
// For float32 operands the product runs through CrossWide: the generic
// formula subtracts nearly equal products for nearly parallel inputs and
// single precision loses most of the result. The choice is made by a type
// assertion on Vector3[float32]; derived ~float32 types take the generic
// formula and must call CrossWide explicitly. Every other domain uses the
// generic formula.
func (v Vector3[T]) Cross(w Vector3[T]) Vector3[T] {
	if a, ok := any(v).(Vector3[float32]); ok {
		return any(CrossWide(a, any(w).(Vector3[float32]))).(Vector3[T])
	}
	return crossGeneric(v, w)
}

func crossGeneric[T scalar.Number](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// CrossWide returns a × b with both operands promoted to float64 and the
// result narrowed once. It accepts any float domain, derived types
// included; for float64 it equals the generic formula.
func CrossWide[T scalar.Float](a, b Vector3[T]) Vector3[T] {
	x0, y0, z0 := float64(a[0]), float64(a[1]), float64(a[2])
	x1, y1, z1 := float64(b[0]), float64(b[1]), float64(b[2])
	return Vector3[T]{
		T(y0*z1 - z0*y1),
		T(z0*x1 - x0*z1),
		T(x0*y1 - y0*x1),
	}
}

// Compare orders vectors lexicographically (x, then y, then z).
func (v Vector3[T]) Compare(w Vector3[T]) int {
	return tuple.Compare(v[:], w[:])
}

// Less reports v < w in lexicographic order.
func (v Vector3[T]) Less(w Vector3[T]) bool {
	return v.Compare(w) < 0
}

// MinComponent returns the smallest of x, y, z.
func (v Vector3[T]) MinComponent() T {
	return tuple.Reduce(v[:], func(a, b T) T { return min(a, b) })
}

// MaxComponent returns the largest of x, y, z.
func (v Vector3[T]) MaxComponent() T {
	return tuple.Reduce(v[:], func(a, b T) T { return max(a, b) })
}

// MaxDimension returns the index (0, 1, 2) of the largest component;
// ties resolve to the lower index.
func (v Vector3[T]) MaxDimension() int {
	return tuple.ArgMax(v[:])
}

// Permute returns (v[x], v[y], v[z]). Panics if an index is outside [0,3).
func (v Vector3[T]) Permute(x, y, z int) Vector3[T] {
	return Vector3[T]{v[x], v[y], v[z]}
}

// Normal reinterprets v as a surface normal. Panics on NaN.
func (v Vector3[T]) Normal() Normal3[T] {
	return Norm3(v[0], v[1], v[2])
}

// MinVector3 returns the component-wise minimum of a and b.
func MinVector3[T scalar.Number](a, b Vector3[T]) Vector3[T] {
	tuple.Min(a[:], a[:], b[:])
	return a
}

// MaxVector3 returns the component-wise maximum of a and b.
func MaxVector3[T scalar.Number](a, b Vector3[T]) Vector3[T] {
	tuple.Max(a[:], a[:], b[:])
	return a
}
