// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/lvgeom/linalg"
	"github.com/katalvlaran/lvgeom/matrix"
)

// ---------- Defaults ----------

const (
	// DefaultRelTol is the relative tolerance for ApproxEqual and the
	// lvgeomdebug pair check.
	DefaultRelTol = matrix.DefaultRelTol

	// DefaultAbsTol is the absolute tolerance for ApproxEqual.
	DefaultAbsTol = matrix.DefaultAbsTol

	// DefaultPairTol is the absolute tolerance applied to m·m⁻¹ - I by the
	// lvgeomdebug pair check. Off-diagonal targets are zero, so the relative
	// term does not help there and a float32 product needs more slack.
	DefaultPairTol = 1e-4
)

const (
	panicBackendNil       = "transform: WithBackend: backend must not be nil"
	panicToleranceInvalid = "transform: WithTolerance: tolerances must be finite, non-negative"
)

// ---------- Public option type ----------

// Option configures checked construction and comparison.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; use the
// With* constructors.
type Options struct {
	backend linalg.Backend
	rtol    float64
	atol    float64
	pairTol float64
}

// WithBackend selects the backend used to invert matrices.
// A nil backend is a programmer error and panics.
func WithBackend(be linalg.Backend) Option {
	if be == nil {
		panic(panicBackendNil)
	}
	return func(o *Options) { o.backend = be }
}

// WithTolerance sets the relative and absolute tolerances. The absolute
// tolerance also replaces DefaultPairTol.
// NaN, ±Inf or negative values panic.
func WithTolerance(rtol, atol float64) Option {
	if isNonFinite(rtol) || isNonFinite(atol) || rtol < 0 || atol < 0 {
		panic(panicToleranceInvalid)
	}
	return func(o *Options) {
		o.rtol = rtol
		o.atol = atol
		o.pairTol = atol
	}
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// gatherOptions applies user options over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		backend: linalg.Default(),
		rtol:    DefaultRelTol,
		atol:    DefaultAbsTol,
		pairTol: DefaultPairTol,
	}
	for _, set := range user {
		set(&o)
	}
	return o
}
