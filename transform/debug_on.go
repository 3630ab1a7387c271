// SPDX-License-Identifier: MIT

//go:build lvgeomdebug

package transform

import (
	"github.com/katalvlaran/lvgeom"
	"github.com/katalvlaran/lvgeom/matrix"
)

// debugChecks reports whether FromPair verifies its arguments.
const debugChecks = true

// verifyPair panics unless m·inv is the identity within the configured
// pair tolerance.
func verifyPair(m, inv matrix.Matrix4x4, opts []Option) {
	o := gatherOptions(opts...)
	prod := m.MulWith(o.backend, inv)
	if prod.ApproxEqual(matrix.Identity(), 0, o.pairTol) {
		return
	}
	lvgeom.Logger().Error("transform: inconsistent forward/inverse pair",
		"forward", m, "inverse", inv, "product", prod)
	panic(transformErrorf(opFromPair, ErrInconsistentPair))
}
