// SPDX-License-Identifier: MIT

package scalar

import "golang.org/x/exp/constraints"

// Signed is any signed integer type.
type Signed interface {
	constraints.Signed
}

// Unsigned is any unsigned integer type.
type Unsigned interface {
	constraints.Unsigned
}

// Integer is any integer type.
type Integer interface {
	constraints.Integer
}

// Float is any floating-point type. Only Float domains support length,
// normalization and interpolation.
type Float interface {
	constraints.Float
}

// Number is the full scalar domain of vectors, points, normals and bounds.
type Number interface {
	constraints.Integer | constraints.Float
}
