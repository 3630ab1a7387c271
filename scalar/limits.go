// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"unsafe"
)

// isFloat reports whether T keeps a fractional part.
func isFloat[T Number]() bool {
	half := 0.5
	return T(half) != 0
}

// isSigned reports whether T has negative values (wrap-around 0-1 stays
// below zero only for signed integers and floats).
func isSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

// Highest returns the largest finite value representable by T.
// For floats this is MaxFloat32/MaxFloat64, not +Inf.
func Highest[T Number]() T {
	var zero T
	size := unsafe.Sizeof(zero)
	switch {
	case isFloat[T]():
		if size == 4 {
			v := float64(math.MaxFloat32)
			return T(v)
		}
		v := math.MaxFloat64
		return T(v)
	case isSigned[T]():
		bits := size * 8
		v := int64(1)<<(bits-1) - 1
		return T(v)
	default:
		return zero - 1
	}
}

// Lowest returns the most negative finite value representable by T:
// -Highest for floats, the two's-complement minimum for signed integers and
// zero for unsigned ones.
func Lowest[T Number]() T {
	var zero T
	switch {
	case isFloat[T]():
		return -Highest[T]()
	case isSigned[T]():
		return -Highest[T]() - 1
	default:
		return zero
	}
}
