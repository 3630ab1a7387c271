// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/lvgeom"
	"github.com/katalvlaran/lvgeom/geom"
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/scalar"
)

// Transform is a forward matrix m and its inverse mInv.
// The zero value is not a valid transform; start from Identity.
type Transform struct {
	m, mInv matrix.Matrix4x4
}

// pair builds a Transform from a pair known to be consistent by
// construction.
func pair(m, inv matrix.Matrix4x4) Transform {
	return Transform{m: m, mInv: inv}
}

// Identity returns the identity transform.
func Identity() Transform {
	return pair(matrix.Identity(), matrix.Identity())
}

// New returns the transform of m, computing its inverse.
//
// Errors:
//   - scalar.ErrNaN (wrapped) when m holds a NaN entry;
//   - ErrSingular when m has no inverse, or the computed inverse holds NaN
//     (infinite entries in m typically produce this).
func New(m matrix.Matrix4x4, opts ...Option) (Transform, error) {
	if i := m.NaNIndex(); i >= 0 {
		lvgeom.Logger().Debug("transform: rejected NaN matrix", "index", i)
		return Transform{}, transformErrorf(opNew, fmt.Errorf("element %d: %w", i, scalar.ErrNaN))
	}
	o := gatherOptions(opts...)
	inv, ok := m.InverseWith(o.backend)
	if !ok || inv.NaNIndex() >= 0 {
		lvgeom.Logger().Debug("transform: rejected singular matrix", "matrix", m)
		return Transform{}, transformErrorf(opNew, ErrSingular)
	}
	return pair(m, inv), nil
}

// MustNew is New that panics on any New error.
func MustNew(m matrix.Matrix4x4, opts ...Option) Transform {
	t, err := New(m, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// FromPair returns the transform with forward matrix m and inverse inv.
//
// The caller guarantees m·inv ≈ I. Nothing is checked unless the binary is
// built with the lvgeomdebug tag, in which case an inconsistent pair panics
// with an error wrapping ErrInconsistentPair.
func FromPair(m, inv matrix.Matrix4x4, opts ...Option) Transform {
	verifyPair(m, inv, opts)
	return pair(m, inv)
}

// Matrix returns the forward matrix.
func (t Transform) Matrix() matrix.Matrix4x4 { return t.m }

// InverseMatrix returns the inverse matrix.
func (t Transform) InverseMatrix() matrix.Matrix4x4 { return t.mInv }

// Inverse swaps the forward and inverse matrices.
func (t Transform) Inverse() Transform {
	return pair(t.mInv, t.m)
}

// Transpose transposes both matrices; (Mᵀ)⁻¹ = (M⁻¹)ᵀ.
func (t Transform) Transpose() Transform {
	return pair(t.m.Transpose(), t.mInv.Transpose())
}

// Compose returns the transform that applies o first, then t:
// forward t.m·o.m, inverse o.mInv·t.mInv. Both products run on the
// configured backend.
func (t Transform) Compose(o Transform, opts ...Option) Transform {
	be := gatherOptions(opts...).backend
	return pair(t.m.MulWith(be, o.m), o.mInv.MulWith(be, t.mInv))
}

// IsIdentity reports whether the forward matrix is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t.m.IsIdentity()
}

// Equal reports exact equality of both matrices.
func (t Transform) Equal(o Transform) bool {
	return t.m == o.m && t.mInv == o.mInv
}

// ApproxEqual compares both matrices within the configured tolerances.
func (t Transform) ApproxEqual(o Transform, opts ...Option) bool {
	c := gatherOptions(opts...)
	return t.m.ApproxEqual(o.m, c.rtol, c.atol) &&
		t.mInv.ApproxEqual(o.mInv, c.rtol, c.atol)
}

// Verify checks that both m·mInv and mInv·m are the identity within the
// absolute tolerance tol. The products run on the configured backend.
func (t Transform) Verify(tol float64, opts ...Option) error {
	be := gatherOptions(opts...).backend
	id := matrix.Identity()
	if !t.m.MulWith(be, t.mInv).ApproxEqual(id, 0, tol) || !t.mInv.MulWith(be, t.m).ApproxEqual(id, 0, tol) {
		return transformErrorf(opVerify, ErrInconsistentPair)
	}
	return nil
}

// HasScale reports whether the transform changes the length of any
// coordinate axis by more than tol in squared length.
func (t Transform) HasScale(tol float32) bool {
	la2 := geom.LengthSquared(t.Vector(geom.Vector3f{1, 0, 0}))
	lb2 := geom.LengthSquared(t.Vector(geom.Vector3f{0, 1, 0}))
	lc2 := geom.LengthSquared(t.Vector(geom.Vector3f{0, 0, 1}))
	notOne := func(x float32) bool { return x < 1-tol || x > 1+tol }
	return notOne(la2) || notOne(lb2) || notOne(lc2)
}

// SwapsHandedness reports whether the linear part has a negative
// determinant.
func (t Transform) SwapsHandedness() bool {
	m := t.m
	det := m[0]*(m[5]*m[10]-m[6]*m[9]) -
		m[1]*(m[4]*m[10]-m[6]*m[8]) +
		m[2]*(m[4]*m[9]-m[5]*m[8])
	return det < 0
}

// String formats the forward matrix.
func (t Transform) String() string {
	return "Transform" + t.m.String()[len("Matrix4x4"):]
}
