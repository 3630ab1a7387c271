package geom_test

import (
	"errors"
	"testing"

	"github.com/MichaelTJones/pcg"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/scalar"
)

// propertyRuns is the number of random cases drawn per property.
const propertyRuns = 2000

// newRNG returns a deterministic generator for property tests.
func newRNG(seed uint64) *pcg.PCG32 {
	r := pcg.NewPCG32()
	r.Seed(seed, 0xda3e39cb94b95bdb)
	return r
}

// float32In draws a float32 uniformly from [-span, span].
func float32In(r *pcg.PCG32, span float32) float32 {
	u := float32(r.Random()) / (1<<32 - 1)
	return (2*u - 1) * span
}

// float64In draws a float64 uniformly from [-span, span].
func float64In(r *pcg.PCG32, span float64) float64 {
	u := float64(r.Random()) / (1<<32 - 1)
	return (2*u - 1) * span
}

// requireNaNPanic asserts that fn panics with an error wrapping scalar.ErrNaN.
func requireNaNPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a NaN panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		require.True(t, errors.Is(err, scalar.ErrNaN), "got %v", err)
	}()
	fn()
}
