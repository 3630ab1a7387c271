// SPDX-License-Identifier: MIT

// Package linalg is the dense 4×4 linear-algebra backend used by
// lvgeom/matrix.
//
// 🚀 What is here?
//
//	Backend: the two primitives the kernel consumes:
//	    Gemm(alpha, A, B, beta, C)  C = alpha·A·B + beta·C, float32, row-major
//	    Invert(A)                   LU with partial pivoting then inverse,
//	                                float64, in place, LAPACK-style status
//	Gonum:   the default: gonum blas32 sgemm, lapack64 dgetrf/dgetri.
//	Native:  a pure-Go Doolittle LU with row pivoting, solving one identity
//	          column at a time; kept as a reference and selectable.
//
// ✨ Status convention (Invert)
//
//	 0  success, A now holds A⁻¹
//	<0  invalid argument; -status is the offending parameter position
//	>0  exactly singular: U(status, status) == 0, 1-based; A is clobbered
//
// Status converts a code to an error wrapping ErrSingular or
// ErrInvalidParameter.
//
// Operands are pointers to fixed arrays: shapes are checked by the compiler,
// the only runtime argument failure left is a nil operand.
package linalg
