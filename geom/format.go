// SPDX-License-Identifier: MIT

package geom

import "fmt"

// String methods print the type name followed by the components, e.g.
// "Vector3[1 2 3]". The type name keeps points, vectors and normals apart
// in logs.

// String implements fmt.Stringer.
func (v Vector2[T]) String() string { return fmt.Sprintf("Vector2%v", [2]T(v)) }

// String implements fmt.Stringer.
func (v Vector3[T]) String() string { return fmt.Sprintf("Vector3%v", [3]T(v)) }

// String implements fmt.Stringer.
func (p Point2[T]) String() string { return fmt.Sprintf("Point2%v", [2]T(p)) }

// String implements fmt.Stringer.
func (p Point3[T]) String() string { return fmt.Sprintf("Point3%v", [3]T(p)) }

// String implements fmt.Stringer.
func (n Normal3[T]) String() string { return fmt.Sprintf("Normal3%v", [3]T(n)) }
