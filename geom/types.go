// SPDX-License-Identifier: MIT

package geom

import "github.com/katalvlaran/lvgeom/scalar"

// Vector2 is a free 2D displacement.
type Vector2[T scalar.Number] [2]T

// Vector3 is a free 3D displacement.
type Vector3[T scalar.Number] [3]T

// Point2 is an affine 2D position.
type Point2[T scalar.Number] [2]T

// Point3 is an affine 3D position.
type Point3[T scalar.Number] [3]T

// Normal3 is a surface normal. It is kept apart from Vector3 because it
// transforms by the inverse-transpose of an affine map.
type Normal3[T scalar.Number] [3]T

// Direction is satisfied by the 3D types that carry a direction; Dot,
// Length and Normalize accept either.
type Direction[T scalar.Number] interface {
	Vector3[T] | Normal3[T]
}

// Common instantiations.
type (
	Vector2f = Vector2[float32]
	Vector2i = Vector2[int32]
	Vector3f = Vector3[float32]
	Vector3i = Vector3[int32]
	Point2f  = Point2[float32]
	Point2i  = Point2[int32]
	Point3f  = Point3[float32]
	Point3i  = Point3[int32]
	Normal3f = Normal3[float32]
)

// Constructor names used in NaN panics.
const (
	opVec2  = "geom.Vec2"
	opVec3  = "geom.Vec3"
	opPt2   = "geom.Pt2"
	opPt3   = "geom.Pt3"
	opNorm3 = "geom.Norm3"
	opNeg   = "geom.Neg"
)
