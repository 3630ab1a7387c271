// SPDX-License-Identifier: MIT

package linalg

import "math"

// Native is a dependency-free backend: row-major i→k→j Gemm and Doolittle
// LU with partial pivoting.
type Native struct{}

var _ Backend = Native{}

// Gemm implements Backend.
func (Native) Gemm(alpha float32, a, b *[16]float32, beta float32, c *[16]float32) {
	var (
		i, j, k int
		aik     float32
	)
	if beta == 0 {
		*c = [16]float32{}
	} else if beta != 1 {
		for i = range c {
			c[i] *= beta
		}
	}
	if alpha == 0 {
		return
	}
	// i→k→j keeps the inner loop on contiguous rows of b and c.
	for i = 0; i < Order; i++ {
		for k = 0; k < Order; k++ {
			aik = alpha * a[i*Order+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < Order; j++ {
				c[i*Order+j] += aik * b[k*Order+j]
			}
		}
	}
}

// Invert implements Backend.
//
// Blueprint:
//
//	Stage 1 (Validate): reject a nil operand.
//	Stage 2 (Decompose): P·A = L·U in place, L unit-lower below the diagonal.
//	Stage 3 (Execute): for each identity column e_col solve L·y = P·e_col,
//	                   then U·x = y.
//	Stage 4 (Finalize): write the columns back over a.
//
// Like dgetrf, factorization runs to the end on a zero pivot so the status
// names the first one.
func (Native) Invert(a *[16]float64) int {
	// Stage 1: Validate
	if a == nil {
		return -1
	}

	// Stage 2: Decompose with partial pivoting
	var (
		i, j, k, p int
		perm       = [Order]int{0, 1, 2, 3} // perm[i] = source row of row i
		info       int                      // first zero pivot, 1-based
		pivot, f   float64
	)
	for k = 0; k < Order; k++ {
		// choose the largest |a[i][k]| for i >= k
		p = k
		for i = k + 1; i < Order; i++ {
			if math.Abs(a[i*Order+k]) > math.Abs(a[p*Order+k]) {
				p = i
			}
		}
		if p != k {
			for j = 0; j < Order; j++ {
				a[k*Order+j], a[p*Order+j] = a[p*Order+j], a[k*Order+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		pivot = a[k*Order+k]
		if pivot == 0 {
			if info == 0 {
				info = k + 1
			}
			continue
		}
		for i = k + 1; i < Order; i++ {
			f = a[i*Order+k] / pivot
			a[i*Order+k] = f // L multiplier
			for j = k + 1; j < Order; j++ {
				a[i*Order+j] -= f * a[k*Order+j]
			}
		}
	}
	if info != 0 {
		return info
	}

	// Stage 3: Solve per identity column
	var (
		inv    [16]float64
		y, x   [Order]float64
		sum    float64
		col, r int
	)
	for col = 0; col < Order; col++ {
		// Forward substitution: L·y = P·e_col
		for i = 0; i < Order; i++ {
			sum = 0
			for r = 0; r < i; r++ {
				sum += a[i*Order+r] * y[r]
			}
			if perm[i] == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U·x = y
		for i = Order - 1; i >= 0; i-- {
			sum = 0
			for r = i + 1; r < Order; r++ {
				sum += a[i*Order+r] * x[r]
			}
			x[i] = (y[i] - sum) / a[i*Order+i]
		}
		for i = 0; i < Order; i++ {
			inv[i*Order+col] = x[i]
		}
	}

	// Stage 4: Finalize
	*a = inv
	return 0
}
