// SPDX-License-Identifier: MIT

package linalg

// Order is the dimension of every operand.
const Order = 4

// Backend is the pair of dense primitives behind matrix multiplication and
// inversion. Implementations must be safe for concurrent use; both shipped
// backends are stateless.
type Backend interface {
	// Gemm computes C = alpha·A·B + beta·C on row-major 4×4 operands.
	// When beta is zero C is not read.
	Gemm(alpha float32, a, b *[16]float32, beta float32, c *[16]float32)

	// Invert overwrites a with its inverse and returns a status code
	// (see package doc).
	Invert(a *[16]float64) int
}

var defaultBackend Backend = Gonum{}

// Default returns the backend used when none is configured.
func Default() Backend { return defaultBackend }
