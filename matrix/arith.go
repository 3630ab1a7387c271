// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvgeom"
	"github.com/katalvlaran/lvgeom/linalg"
)

// Mul returns m·rhs computed on the default backend.
func (m Matrix4x4) Mul(rhs Matrix4x4) Matrix4x4 {
	return m.MulWith(linalg.Default(), rhs)
}

// MulWith returns m·rhs computed on be, as a single Gemm(1, m, rhs, 0, C).
func (m Matrix4x4) MulWith(be linalg.Backend, rhs Matrix4x4) Matrix4x4 {
	var c Matrix4x4
	m.Gemm(be, 1, rhs, 0, &c)
	return c
}

// Gemm overwrites c with alpha·m·rhs + beta·c. c must not alias m or rhs.
func (m Matrix4x4) Gemm(be linalg.Backend, alpha float32, rhs Matrix4x4, beta float32, c *Matrix4x4) {
	be.Gemm(alpha, (*[16]float32)(&m), (*[16]float32)(&rhs), beta, (*[16]float32)(c))
}

// Inverse returns m⁻¹ computed on the default backend.
func (m Matrix4x4) Inverse() (Matrix4x4, bool) {
	return m.InverseWith(linalg.Default())
}

// InverseWith returns m⁻¹ computed on be.
//
// The factorization runs in float64 and the result is narrowed to float32.
// A zero pivot yields (Zero(), false). A negative backend status is a
// programmer error and panics with an error wrapping
// linalg.ErrInvalidParameter.
func (m Matrix4x4) InverseWith(be linalg.Backend) (Matrix4x4, bool) {
	a := m.Float64()
	status := be.Invert(&a)
	switch {
	case status < 0:
		panic(matrixErrorf(opInverse, linalg.Status(status)))
	case status > 0:
		lvgeom.Logger().Debug("matrix: singular inverse", "pivot", status)
		return Zero(), false
	}
	return FromFloat64(a), true
}
