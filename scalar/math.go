// SPDX-License-Identifier: MIT

package scalar

import "math"

// Lerp interpolates between v0 (t=0) and v1 (t=1) as v0 + t·(v1-v0),
// evaluated with a single fused multiply-add so the product is not rounded
// before the sum.
func Lerp[T Float](t, v0, v1 T) T {
	return T(math.FMA(float64(t), float64(v1-v0), float64(v0)))
}

// LerpClassic is the two-product form (1-t)·v0 + t·v1. It is exact at both
// endpoints but rounds twice in between.
func LerpClassic[T Float](t, v0, v1 T) T {
	return (1-t)*v0 + t*v1
}

// Abs returns |v|.
func Abs[T Signed | Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Radians converts degrees to radians.
func Radians[T Float](deg T) T {
	return deg * T(math.Pi/180)
}

// Sqrt returns the square root of v computed in float64.
// For float32 inputs the single rounding back is still correctly rounded.
func Sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}
