// SPDX-License-Identifier: MIT

package linalg

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// Gonum runs Gemm through blas32 and Invert through lapack64 Getrf/Getri.
type Gonum struct{}

var _ Backend = Gonum{}

func general32(data *[16]float32) blas32.General {
	return blas32.General{Rows: Order, Cols: Order, Stride: Order, Data: data[:]}
}

// Gemm implements Backend.
func (Gonum) Gemm(alpha float32, a, b *[16]float32, beta float32, c *[16]float32) {
	blas32.Gemm(blas.NoTrans, blas.NoTrans, alpha, general32(a), general32(b), beta, general32(c))
}

// Invert implements Backend.
func (Gonum) Invert(a *[16]float64) int {
	if a == nil {
		return -1
	}
	g := blas64.General{Rows: Order, Cols: Order, Stride: Order, Data: a[:]}
	var ipiv [Order]int

	// Getrf only reports singularity as a bool; recover the LAPACK info
	// value from the first zero on the diagonal of U.
	if !lapack64.Getrf(g, ipiv[:]) {
		return firstZeroPivot(a)
	}

	var work [Order * Order]float64
	if !lapack64.Getri(g, ipiv[:], work[:], len(work)) {
		return firstZeroPivot(a)
	}
	return 0
}

// firstZeroPivot returns the 1-based index of the first zero diagonal
// entry of the factored matrix, or Order if none is exactly zero.
func firstZeroPivot(lu *[16]float64) int {
	for i := 0; i < Order; i++ {
		if lu[i*Order+i] == 0 {
			return i + 1
		}
	}
	return Order
}
