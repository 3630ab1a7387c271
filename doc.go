// Package lvgeom is the geometric kernel of a physically-based renderer:
// semantically distinct vector, point and normal types, axis-aligned
// bounding boxes, dense 4×4 matrices and affine transforms that carry their
// own inverse.
//
// 🚀 What is in lvgeom?
//
//   - scalar/    — numeric constraints, NaN policy, per-type bounds, lerp
//   - geom/      — Vector2/3, Point2/3, Normal3, dot & cross products
//   - bounds/    — Bounds2/3 with area, volume, extent, lerp and set ops
//   - linalg/    — pluggable dense backend (gonum BLAS/LAPACK or pure Go LU)
//   - matrix/    — row-major Matrix4x4 with transpose, multiply, inverse
//   - transform/ — forward/inverse pairs, named constructors, application
//
// ✨ Why a separate type per meaning?
//
//   - Points translate, vectors do not, normals follow the inverse-transpose.
//     Conflating them is a classic renderer bug; here it does not compile.
//   - Every value is an immutable array value: no allocation, no locks,
//     any two calls on independent values may run in parallel.
//
// Quick example:
//
//	t := transform.Translate(geom.Vec3[float32](1, 2, 3))
//	p := t.Point(geom.Pt3[float32](0, 0, 0)) // Point3[1 2 3]
//
// Logging is silent by default; see SetLogger.
//
//	go get github.com/katalvlaran/lvgeom
package lvgeom
