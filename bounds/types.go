// SPDX-License-Identifier: MIT

package bounds

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/geom"
	"github.com/katalvlaran/lvgeom/scalar"
)

// Bounds2 is an axis-aligned rectangle.
type Bounds2[T scalar.Number] struct {
	Min geom.Point2[T]
	Max geom.Point2[T]
}

// Bounds3 is an axis-aligned box.
type Bounds3[T scalar.Number] struct {
	Min geom.Point3[T]
	Max geom.Point3[T]
}

// Common instantiations.
type (
	Bounds2f = Bounds2[float32]
	Bounds2i = Bounds2[int32]
	Bounds3f = Bounds3[float32]
	Bounds3i = Bounds3[int32]
)

// Axis names a coordinate axis.
type Axis int

// Axes in component order; the value is the component index.
const (
	X Axis = iota
	Y
	Z
)

// String returns "X", "Y" or "Z", or "Axis(n)" for other values.
func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// String formats the corners as "Bounds2{min max}".
func (b Bounds2[T]) String() string { return fmt.Sprintf("Bounds2{%v %v}", b.Min, b.Max) }

// String formats the corners as "Bounds3{min max}".
func (b Bounds3[T]) String() string { return fmt.Sprintf("Bounds3{%v %v}", b.Min, b.Max) }
