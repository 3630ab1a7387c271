// SPDX-License-Identifier: MIT

package scalar

// IsNaN reports whether v is a floating-point NaN.
// NaN is the only value that compares unequal to itself, so for integer
// instantiations the comparison folds to false.
func IsNaN[T Number](v T) bool {
	return v != v
}

// CheckNotNaN enforces the construction policy: it panics with an error
// wrapping ErrNaN when any of vs is NaN. op names the constructor.
//
// The policy is always on, for every float width. It is the single place
// where the kernel decides what a NaN at construction means.
func CheckNotNaN[T Number](op string, vs ...T) {
	for i, v := range vs {
		if v != v {
			panic(nanPanicf(op, i))
		}
	}
}
