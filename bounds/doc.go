// Package bounds implements axis-aligned bounding boxes over the geom
// point types.
//
// A box is an ordered corner pair (Min, Max) with Min ≤ Max on every axis.
// New2/New3 establish that from two arbitrary corners by taking, per axis,
// the min and max of the same coordinate of both inputs.
//
// There is no implicit "no bounds" value:
//
//	Universe3[T](): Min = scalar.Lowest, Max = scalar.Highest. Covers the
//	                 whole coordinate domain; identity for Intersect.
//	Empty3[T]():    Min = scalar.Highest, Max = scalar.Lowest. Contains
//	                 nothing; identity for Union and UnionPoint.
//
// The zero value is the degenerate box at the origin.
package bounds
