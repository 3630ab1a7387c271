// SPDX-License-Identifier: MIT

// Package matrix provides Matrix4x4, the fixed-size row-major 4×4 float32
// matrix behind lvgeom/transform.
//
// 🚀 Layout
//
//	m[4*row + col], same memory layout as golang.org/x/image/math/f32.Mat4.
//	mathgl's mgl32.Mat4 is column-major; Mgl/FromMgl transpose on the way.
//
// ✨ Arithmetic
//
//	Mul and Gemm run through a linalg.Backend (gonum by default).
//	Inverse promotes to float64, inverts with LU + partial pivoting and
//	narrows back. A singular input yields (Zero, false); the backend
//	rejecting its arguments is a programmer error and panics.
//
// ⚙️ Comparison
//
//	Equal is exact. ApproxEqual uses |a-b| ≤ atol + rtol·|b| per element,
//	with DefaultRelTol / DefaultAbsTol as the conventional tolerances.
//
// The zero value is the zero matrix. Values are plain arrays: comparable,
// copied on assignment, no allocation.
package matrix
