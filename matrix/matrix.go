// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Matrix4x4 is a row-major 4×4 float32 matrix.
type Matrix4x4 [16]float32

// Default tolerances for ApproxEqual.
const (
	DefaultRelTol = 1e-5
	DefaultAbsTol = 1e-6
)

// New builds a matrix from its sixteen elements in row-major order.
func New(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) Matrix4x4 {
	return Matrix4x4{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	}
}

// Zero returns the zero matrix.
func Zero() Matrix4x4 { return Matrix4x4{} }

// Identity returns the identity matrix.
func Identity() Matrix4x4 { return Diag(1, 1, 1, 1) }

// Diag returns the diagonal matrix diag(a, b, c, d).
func Diag(a, b, c, d float32) Matrix4x4 {
	return Matrix4x4{
		a, 0, 0, 0,
		0, b, 0, 0,
		0, 0, c, 0,
		0, 0, 0, d,
	}
}

// FromRows assembles a matrix from four rows.
func FromRows(r0, r1, r2, r3 [4]float32) Matrix4x4 {
	var m Matrix4x4
	copy(m[0:4], r0[:])
	copy(m[4:8], r1[:])
	copy(m[8:12], r2[:])
	copy(m[12:16], r3[:])
	return m
}

func inRange(i, j int) bool {
	return i >= 0 && i < 4 && j >= 0 && j < 4
}

// At returns element (i, j).
func (m Matrix4x4) At(i, j int) (float32, error) {
	if !inRange(i, j) {
		return 0, indexError(opAt, i, j)
	}
	return m[4*i+j], nil
}

// Set assigns element (i, j).
func (m *Matrix4x4) Set(i, j int, v float32) error {
	if !inRange(i, j) {
		return indexError(opSet, i, j)
	}
	m[4*i+j] = v
	return nil
}

// Row returns row i. It panics if i is out of range.
func (m Matrix4x4) Row(i int) [4]float32 {
	return [4]float32(m[4*i : 4*i+4])
}

// Swap exchanges elements (i0, j0) and (i1, j1).
// An out-of-range index is a programmer error and panics.
func (m *Matrix4x4) Swap(i0, j0, i1, j1 int) {
	if !inRange(i0, j0) {
		panic(indexError(opSwap, i0, j0))
	}
	if !inRange(i1, j1) {
		panic(indexError(opSwap, i1, j1))
	}
	a, b := 4*i0+j0, 4*i1+j1
	m[a], m[b] = m[b], m[a]
}

// Transpose returns mᵀ.
func (m Matrix4x4) Transpose() Matrix4x4 {
	m.TransposeInPlace()
	return m
}

// TransposeInPlace swaps the six off-diagonal pairs.
func (m *Matrix4x4) TransposeInPlace() {
	m.Swap(0, 1, 1, 0)
	m.Swap(0, 2, 2, 0)
	m.Swap(0, 3, 3, 0)
	m.Swap(1, 2, 2, 1)
	m.Swap(1, 3, 3, 1)
	m.Swap(2, 3, 3, 2)
}

// Equal reports element-wise exact equality. NaN never compares equal.
func (m Matrix4x4) Equal(o Matrix4x4) bool {
	return m == o
}

// ApproxEqual reports whether |m-o| ≤ atol + rtol·|o| holds for every
// element. Negative tolerances are treated as their absolute value.
// Infinities compare equal only to the same infinity.
func (m Matrix4x4) ApproxEqual(o Matrix4x4, rtol, atol float64) bool {
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	var a, b, diff, absb float64
	for i := range m {
		a, b = float64(m[i]), float64(o[i])
		if a == b {
			continue
		}
		diff = a - b
		if diff < 0 {
			diff = -diff
		}
		absb = b
		if absb < 0 {
			absb = -absb
		}
		if !(diff <= atol+rtol*absb) {
			return false
		}
	}
	return true
}

// NaNIndex returns the flat index of the first NaN element, or -1.
func (m Matrix4x4) NaNIndex() int {
	for i, v := range m {
		if scalar.IsNaN(v) {
			return i
		}
	}
	return -1
}

// IsIdentity reports exact equality with the identity.
func (m Matrix4x4) IsIdentity() bool {
	return m == Identity()
}

// Determinant returns det(m) by Laplace expansion over 2×2 minors of the
// top and bottom row pairs, accumulated in float64.
func (m Matrix4x4) Determinant() float64 {
	a := m.Float64()
	s0 := a[0]*a[5] - a[4]*a[1]
	s1 := a[0]*a[6] - a[4]*a[2]
	s2 := a[0]*a[7] - a[4]*a[3]
	s3 := a[1]*a[6] - a[5]*a[2]
	s4 := a[1]*a[7] - a[5]*a[3]
	s5 := a[2]*a[7] - a[6]*a[3]

	c5 := a[10]*a[15] - a[14]*a[11]
	c4 := a[9]*a[15] - a[13]*a[11]
	c3 := a[9]*a[14] - a[13]*a[10]
	c2 := a[8]*a[15] - a[12]*a[11]
	c1 := a[8]*a[14] - a[12]*a[10]
	c0 := a[8]*a[13] - a[12]*a[9]

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// String formats m row by row.
func (m Matrix4x4) String() string {
	return fmt.Sprintf("Matrix4x4[%v %v %v %v]", m.Row(0), m.Row(1), m.Row(2), m.Row(3))
}
