// SPDX-License-Identifier: MIT

package geom

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Conversions to and from the vector types of neighbouring libraries.
// Imports go through the checked constructors, so a NaN coming from outside
// is caught at the boundary.

// F32 converts v to an x/image float32 vector.
func (v Vector3[T]) F32() f32.Vec3 {
	return f32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// F32 converts p to an x/image float32 vector.
func (p Point3[T]) F32() f32.Vec3 {
	return f32.Vec3{float32(p[0]), float32(p[1]), float32(p[2])}
}

// F32 converts n to an x/image float32 vector.
func (n Normal3[T]) F32() f32.Vec3 {
	return f32.Vec3{float32(n[0]), float32(n[1]), float32(n[2])}
}

// VectorFromF32 imports an x/image vector.
func VectorFromF32(a f32.Vec3) Vector3f { return Vec3(a[0], a[1], a[2]) }

// PointFromF32 imports an x/image vector as a position.
func PointFromF32(a f32.Vec3) Point3f { return Pt3(a[0], a[1], a[2]) }

// Mgl converts v to a mathgl vector.
func (v Vector3[T]) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// Mgl converts p to a mathgl vector.
func (p Point3[T]) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{float32(p[0]), float32(p[1]), float32(p[2])}
}

// VectorFromMgl imports a mathgl vector.
func VectorFromMgl(a mgl32.Vec3) Vector3f { return Vec3(a[0], a[1], a[2]) }

// PointFromMgl imports a mathgl vector as a position.
func PointFromMgl(a mgl32.Vec3) Point3f { return Pt3(a[0], a[1], a[2]) }

// R3 converts v to a gonum spatial vector.
func (v Vector3[T]) R3() r3.Vec {
	return r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// R3 converts p to a gonum spatial vector.
func (p Point3[T]) R3() r3.Vec {
	return r3.Vec{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
}

// VectorFromR3 imports a gonum vector into the domain T.
func VectorFromR3[T scalar.Float](a r3.Vec) Vector3[T] {
	return Vec3(T(a.X), T(a.Y), T(a.Z))
}

// PointFromR3 imports a gonum vector as a position in the domain T.
func PointFromR3[T scalar.Float](a r3.Vec) Point3[T] {
	return Pt3(T(a.X), T(a.Y), T(a.Z))
}
