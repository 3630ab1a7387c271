// Package geom provides the semantically distinct 2D/3D tuple types of the
// kernel:
//
//	Vector2, Vector3 — free displacements (magnitude + direction, no origin)
//	Point2,  Point3  — affine positions
//	Normal3          — surface normals (transform by the inverse-transpose)
//
// Each type is a fixed-size array of a scalar.Number, so values are
// comparable with ==, copy by value and never allocate. Only the operations
// that make sense for a meaning are defined on it: Point - Point is a
// Vector, Point + Vector is a Point, Point + Point does not exist.
//
// Float-only operations (Length, Normalize, Distance, Lerp...) are package
// functions constrained on scalar.Float; Dot accepts any Vector/Normal
// pairing.
//
// Constructors (Vec2, Vec3, Pt2, Pt3, Norm3) reject NaN components with a
// panic wrapping scalar.ErrNaN. Composite literals bypass that check.
package geom
