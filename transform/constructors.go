// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/lvgeom"
	"github.com/katalvlaran/lvgeom/geom"
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/scalar"
)

// Translate moves points by delta. Vectors and normals are unaffected.
func Translate(delta geom.Vector3f) Transform {
	return pair(
		matrix.New(
			1, 0, 0, delta[0],
			0, 1, 0, delta[1],
			0, 0, 1, delta[2],
			0, 0, 0, 1,
		),
		matrix.New(
			1, 0, 0, -delta[0],
			0, 1, 0, -delta[1],
			0, 0, 1, -delta[2],
			0, 0, 0, 1,
		),
	)
}

// Scale scales each axis independently. The inverse holds the reciprocal
// factors, so a zero factor puts ±Inf in the inverse instead of failing.
func Scale(x, y, z float32) Transform {
	return pair(matrix.Diag(x, y, z, 1), matrix.Diag(1/x, 1/y, 1/z, 1))
}

// orthogonal pairs a rotation matrix with its transpose.
func orthogonal(m matrix.Matrix4x4) Transform {
	return pair(m, m.Transpose())
}

// RotateX rotates by theta degrees about the x axis.
func RotateX(theta float32) Transform {
	sin, cos := math32.Sincos(scalar.Radians(theta))
	return orthogonal(matrix.New(
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	))
}

// RotateY rotates by theta degrees about the y axis.
func RotateY(theta float32) Transform {
	sin, cos := math32.Sincos(scalar.Radians(theta))
	return orthogonal(matrix.New(
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	))
}

// RotateZ rotates by theta degrees about the z axis.
func RotateZ(theta float32) Transform {
	sin, cos := math32.Sincos(scalar.Radians(theta))
	return orthogonal(matrix.New(
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	))
}

// Rotate rotates by theta degrees about axis, which need not be unit
// length. A zero axis yields a NaN matrix.
func Rotate(theta float32, axis geom.Vector3f) Transform {
	a := geom.Normalize(axis)
	sin, cos := math32.Sincos(scalar.Radians(theta))
	k := 1 - cos

	return orthogonal(matrix.New(
		a[0]*a[0]+(1-a[0]*a[0])*cos, a[0]*a[1]*k-a[2]*sin, a[0]*a[2]*k+a[1]*sin, 0,
		a[0]*a[1]*k+a[2]*sin, a[1]*a[1]+(1-a[1]*a[1])*cos, a[1]*a[2]*k-a[0]*sin, 0,
		a[0]*a[2]*k-a[1]*sin, a[1]*a[2]*k+a[0]*sin, a[2]*a[2]+(1-a[2]*a[2])*cos, 0,
		0, 0, 0, 1,
	))
}

// LookAt returns the world-to-camera transform of a camera at eye looking
// at target. The camera basis is left-handed: +z toward target, +y along
// the component of up orthogonal to it.
//
// It fails with ErrDegenerateBasis when eye == target or up is parallel to
// the viewing direction, and with ErrSingular if the camera-to-world
// matrix cannot be inverted.
func LookAt(eye, target geom.Point3f, up geom.Vector3f, opts ...Option) (Transform, error) {
	dir := target.Sub(eye)
	if geom.LengthSquared(dir) == 0 {
		lvgeom.Logger().Debug("transform: look-at eye equals target", "eye", eye)
		return Transform{}, transformErrorf(opLookAt, ErrDegenerateBasis)
	}
	dir = geom.Normalize(dir)
	if geom.LengthSquared(up) == 0 {
		lvgeom.Logger().Debug("transform: look-at zero up vector")
		return Transform{}, transformErrorf(opLookAt, ErrDegenerateBasis)
	}
	right := geom.Normalize(up).Cross(dir)
	if geom.LengthSquared(right) == 0 {
		lvgeom.Logger().Debug("transform: look-at up parallel to view direction", "up", up, "dir", dir)
		return Transform{}, transformErrorf(opLookAt, ErrDegenerateBasis)
	}
	right = geom.Normalize(right)
	newUp := dir.Cross(right)

	cameraToWorld := matrix.New(
		right[0], newUp[0], dir[0], eye[0],
		right[1], newUp[1], dir[1], eye[1],
		right[2], newUp[2], dir[2], eye[2],
		0, 0, 0, 1,
	)
	t, err := New(cameraToWorld, opts...)
	if err != nil {
		return Transform{}, transformErrorf(opLookAt, err)
	}
	return t.Inverse(), nil
}

// Perspective returns the projection of camera space onto the image plane
// z = 1: x and y are divided by z and scaled by 1/tan(fov/2), z in
// [near, far] maps to [0, 1].
func Perspective(fov, near, far float32, opts ...Option) (Transform, error) {
	if !(fov > 0 && fov < 180) || !(near > 0 && far > near) {
		return Transform{}, transformErrorf(opPerspective, ErrInvalidProjection)
	}
	invTan := 1 / math32.Tan(scalar.Radians(fov)/2)
	persp := matrix.New(
		invTan, 0, 0, 0,
		0, invTan, 0, 0,
		0, 0, far/(far-near), -far*near/(far-near),
		0, 0, 1, 0,
	)
	t, err := New(persp, opts...)
	if err != nil {
		return Transform{}, transformErrorf(opPerspective, err)
	}
	return t, nil
}
