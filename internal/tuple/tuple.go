// SPDX-License-Identifier: MIT

// Package tuple holds the component-wise kernels shared by every geometric
// type. Vector2, Vector3, Point2, Point3 and Normal3 are fixed-size arrays;
// their methods slice themselves and call into here, so each formula is
// written exactly once regardless of dimension.
//
// All kernels write into dst, which must have the length of the inputs.
// Callers pass array slices of equal length; no kernel allocates.
package tuple

import "github.com/katalvlaran/lvgeom/scalar"

// Add writes a+b into dst.
func Add[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub writes a-b into dst.
func Sub[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Scale writes a·s into dst.
func Scale[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

// Div writes a/s into dst. Integer division truncates; a zero s is the
// caller's problem, exactly as for the scalar operator.
func Div[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

// Neg writes -a into dst.
func Neg[T scalar.Number](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

// Abs writes |a| into dst.
func Abs[T scalar.Number](dst, a []T) {
	for i := range dst {
		if a[i] < 0 {
			dst[i] = -a[i]
		} else {
			dst[i] = a[i]
		}
	}
}

// Min writes the component-wise minimum of a and b into dst.
func Min[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = min(a[i], b[i])
	}
}

// Max writes the component-wise maximum of a and b into dst.
func Max[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = max(a[i], b[i])
	}
}

// Dot returns Σ a[i]·b[i].
func Dot[T scalar.Number](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Compare orders a and b lexicographically by component: -1, 0 or +1.
// This is a total order for sorting and map keys, not a geometric
// partial order. NaN components compare as equal to everything.
func Compare[T scalar.Number](a, b []T) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// ArgMax returns the index of the largest component; ties keep the first.
func ArgMax[T scalar.Number](a []T) int {
	best := 0
	for i := 1; i < len(a); i++ {
		if a[i] > a[best] {
			best = i
		}
	}
	return best
}

// Reduce folds a with f starting from a[0].
func Reduce[T scalar.Number](a []T, f func(x, y T) T) T {
	acc := a[0]
	for i := 1; i < len(a); i++ {
		acc = f(acc, a[i])
	}
	return acc
}
