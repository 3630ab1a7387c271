// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

// Mat4 returns m as an x/image matrix. Both are row-major.
func (m Matrix4x4) Mat4() f32.Mat4 { return f32.Mat4(m) }

// FromMat4 converts an x/image matrix.
func FromMat4(a f32.Mat4) Matrix4x4 { return Matrix4x4(a) }

// Mgl returns m as a mathgl matrix, which stores columns contiguously.
func (m Matrix4x4) Mgl() mgl32.Mat4 { return mgl32.Mat4(m.Transpose()) }

// FromMgl converts a column-major mathgl matrix.
func FromMgl(a mgl32.Mat4) Matrix4x4 { return Matrix4x4(a.Transpose()) }

// Float64 widens every element.
func (m Matrix4x4) Float64() [16]float64 {
	var a [16]float64
	for i, v := range m {
		a[i] = float64(v)
	}
	return a
}

// FromFloat64 narrows a float64 row-major matrix. Negative zeros become
// positive zeros, so an inverse from any backend prints and compares the
// same way as a hand-built matrix.
func FromFloat64(a [16]float64) Matrix4x4 {
	var m Matrix4x4
	for i, v := range a {
		m[i] = float32(v) + 0 // -0 + 0 == +0
	}
	return m
}
