// SPDX-License-Identifier: MIT

// Package geom: surface normals.
// This file defines Norm3 (NaN-checked), normal arithmetic, the conversion
// to Vector3 and FaceForward. Normals transform by the inverse-transpose,
// which lives in lvgeom/transform.

package geom

import (
	"github.com/katalvlaran/lvgeom/internal/tuple"
	"github.com/katalvlaran/lvgeom/scalar"
)

// Norm3 returns the normal (x, y, z). Panics on NaN.
func Norm3[T scalar.Number](x, y, z T) Normal3[T] {
	scalar.CheckNotNaN(opNorm3, x, y, z)
	return Normal3[T]{x, y, z}
}

// X returns the first component.
func (n Normal3[T]) X() T { return n[0] }

// Y returns the second component.
func (n Normal3[T]) Y() T { return n[1] }

// Z returns the third component.
func (n Normal3[T]) Z() T { return n[2] }

// Add returns n + m.
func (n Normal3[T]) Add(m Normal3[T]) Normal3[T] {
	tuple.Add(n[:], n[:], m[:])
	return n
}

// Sub returns n - m.
func (n Normal3[T]) Sub(m Normal3[T]) Normal3[T] {
	tuple.Sub(n[:], n[:], m[:])
	return n
}

// Mul returns n scaled by s.
func (n Normal3[T]) Mul(s T) Normal3[T] {
	tuple.Scale(n[:], n[:], s)
	return n
}

// Div returns n divided by s.
func (n Normal3[T]) Div(s T) Normal3[T] {
	tuple.Div(n[:], n[:], s)
	return n
}

// Neg returns -n.
func (n Normal3[T]) Neg() Normal3[T] {
	tuple.Neg(n[:], n[:])
	scalar.CheckNotNaN(opNeg, n[:]...)
	return n
}

// Abs returns the component-wise absolute value.
func (n Normal3[T]) Abs() Normal3[T] {
	tuple.Abs(n[:], n[:])
	return n
}

// Vector reinterprets n as a free vector.
func (n Normal3[T]) Vector() Vector3[T] { return Vector3[T](n) }

// Compare orders normals lexicographically.
func (n Normal3[T]) Compare(m Normal3[T]) int { return tuple.Compare(n[:], m[:]) }

// FaceForward flips n into the hemisphere of v.
func (n Normal3[T]) FaceForward(v Vector3[T]) Normal3[T] {
	if Dot(n, v) < 0 {
		return n.Neg()
	}
	return n
}
