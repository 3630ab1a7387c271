// SPDX-License-Identifier: MIT

//go:build !lvgeomdebug

package transform

import "github.com/katalvlaran/lvgeom/matrix"

// debugChecks reports whether FromPair verifies its arguments.
const debugChecks = false

func verifyPair(matrix.Matrix4x4, matrix.Matrix4x4, []Option) {}
