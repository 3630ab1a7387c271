// SPDX-License-Identifier: MIT

package geom

import "github.com/katalvlaran/lvgeom/scalar"

// Dot returns the component sum a·b for any pairing of Vector3 and
// Normal3: Vector·Vector, Normal·Normal, Normal·Vector and Vector·Normal
// all share this formula, and the result is symmetric in a and b.
func Dot[A Direction[T], B Direction[T], T scalar.Number](a A, b B) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// AbsDot returns |a·b|.
func AbsDot[A Direction[T], B Direction[T], T scalar.Float](a A, b B) T {
	return scalar.Abs(Dot[A, B, T](a, b))
}

// LengthSquared returns v·v.
func LengthSquared[V Direction[T], T scalar.Float](v V) T {
	return Dot[V, V, T](v, v)
}

// Length returns the Euclidean norm sqrt(v·v).
func Length[V Direction[T], T scalar.Float](v V) T {
	return scalar.Sqrt(LengthSquared[V, T](v))
}

// Normalize returns v / Length(v). A zero-length input yields NaN
// components; callers that can see degenerate input must check first.
func Normalize[V Direction[T], T scalar.Float](v V) V {
	l := Length[V, T](v)
	v[0] /= l
	v[1] /= l
	v[2] /= l
	return v
}

// Length2 returns the Euclidean norm of a 2D vector.
func Length2[T scalar.Float](v Vector2[T]) T {
	return scalar.Sqrt(v.Dot(v))
}

// Normalize2 returns v / Length2(v).
func Normalize2[T scalar.Float](v Vector2[T]) Vector2[T] {
	return v.Div(Length2(v))
}

// Distance returns |p - q|.
func Distance[T scalar.Float](p, q Point3[T]) T {
	return Length[Vector3[T], T](p.Sub(q))
}

// DistanceSquared returns |p - q|².
func DistanceSquared[T scalar.Float](p, q Point3[T]) T {
	return LengthSquared[Vector3[T], T](p.Sub(q))
}

// Distance2 returns |p - q| for 2D points.
func Distance2[T scalar.Float](p, q Point2[T]) T {
	return Length2(p.Sub(q))
}

// LerpPoint3 returns the point a fraction t of the way from a to b.
func LerpPoint3[T scalar.Float](t T, a, b Point3[T]) Point3[T] {
	return Point3[T]{
		scalar.Lerp(t, a[0], b[0]),
		scalar.Lerp(t, a[1], b[1]),
		scalar.Lerp(t, a[2], b[2]),
	}
}

// CoordinateSystem completes v1 (unit length) to a right-handed
// orthonormal basis (v1, v2, v3).
func CoordinateSystem[T scalar.Float](v1 Vector3[T]) (v2, v3 Vector3[T]) {
	if scalar.Abs(v1[0]) > scalar.Abs(v1[1]) {
		v2 = Vector3[T]{-v1[2], 0, v1[0]}.Div(scalar.Sqrt(v1[0]*v1[0] + v1[2]*v1[2]))
	} else {
		v2 = Vector3[T]{0, v1[2], -v1[1]}.Div(scalar.Sqrt(v1[1]*v1[1] + v1[2]*v1[2]))
	}
	return v2, v1.Cross(v2)
}
