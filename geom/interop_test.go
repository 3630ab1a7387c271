package geom_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvgeom/geom"
)

func TestInterop_F32(t *testing.T) {
	v := geom.Vec3[float32](1, 2, 3)
	require.Equal(t, f32.Vec3{1, 2, 3}, v.F32())
	require.Equal(t, v, geom.VectorFromF32(v.F32()))

	p := geom.Pt3[float32](4, 5, 6)
	require.Equal(t, p, geom.PointFromF32(p.F32()))
	require.Equal(t, f32.Vec3{0, 0, 1}, geom.Norm3[float32](0, 0, 1).F32())

	requireNaNPanic(t, func() { geom.VectorFromF32(f32.Vec3{float32(math.NaN()), 0, 0}) })
}

func TestInterop_Mgl(t *testing.T) {
	v := geom.Vec3[float32](1, -2, 3)
	require.Equal(t, mgl32.Vec3{1, -2, 3}, v.Mgl())
	require.Equal(t, v, geom.VectorFromMgl(v.Mgl()))

	p := geom.Pt3[int](1, 2, 3)
	require.Equal(t, geom.Pt3[float32](1, 2, 3), geom.PointFromMgl(p.Mgl()))
}

func TestInterop_R3(t *testing.T) {
	v := geom.Vec3(1.5, -2.0, 0.25)
	require.Equal(t, r3.Vec{X: 1.5, Y: -2, Z: 0.25}, v.R3())
	require.Equal(t, v, geom.VectorFromR3[float64](v.R3()))

	p := geom.Pt3[float32](1, 2, 3)
	require.Equal(t, p, geom.PointFromR3[float32](p.R3()))
	require.InDelta(t, r3.Norm(v.R3()), geom.Length(v), 1e-15)
}
