package transform_test

import (
	"errors"
	"math"
	"testing"

	"github.com/MichaelTJones/pcg"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvgeom/bounds"
	"github.com/katalvlaran/lvgeom/geom"
	"github.com/katalvlaran/lvgeom/linalg"
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/transform"
)

const eps = 1e-5

func requirePointNear(t *testing.T, want, got geom.Point3f, tol float64) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], tol, "component %d of %v", i, got)
	}
}

func uniform(r *pcg.PCG32, lo, hi float32) float32 {
	return lo + (hi-lo)*float32(r.Random())/(1<<32-1)
}

// TransformSuite covers the named constructors against a shared set of
// sample points.
type TransformSuite struct {
	suite.Suite
	points []geom.Point3f
}

func (s *TransformSuite) SetupTest() {
	s.points = []geom.Point3f{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, -2, 3},
		{-4.5, 0.25, 7},
	}
}

func (s *TransformSuite) TestTranslate() {
	tr := transform.Translate(geom.Vec3[float32](1, 2, 3))
	s.Require().Equal(geom.Pt3[float32](1, 2, 3), tr.Point(geom.Pt3[float32](0, 0, 0)))
	for _, p := range s.points {
		s.Require().Equal(geom.Point3f{p[0] + 1, p[1] + 2, p[2] + 3}, tr.Point(p))
		s.Require().Equal(p, tr.Inverse().Point(tr.Point(p)))
	}
	// vectors and normals ignore translation
	s.Require().Equal(geom.Vec3[float32](1, 0, 0), tr.Vector(geom.Vec3[float32](1, 0, 0)))
	s.Require().Equal(geom.Norm3[float32](0, 1, 0), tr.Normal(geom.Norm3[float32](0, 1, 0)))
}

func (s *TransformSuite) TestRotateZ() {
	rz := transform.RotateZ(90)
	got := rz.Point(geom.Pt3[float32](1, 0, 0))
	requirePointNear(s.T(), geom.Pt3[float32](0, 1, 0), got, eps)

	for _, p := range s.points {
		requirePointNear(s.T(), p, rz.Inverse().Point(rz.Point(p)), eps)
	}
	s.Require().NoError(rz.Verify(eps))
	s.Require().False(rz.HasScale(1e-5))
	s.Require().False(rz.SwapsHandedness())
}

func (s *TransformSuite) TestRotateXY() {
	rx := transform.RotateX(90)
	requirePointNear(s.T(), geom.Pt3[float32](0, 0, 1), rx.Point(geom.Pt3[float32](0, 1, 0)), eps)
	ry := transform.RotateY(90)
	requirePointNear(s.T(), geom.Pt3[float32](1, 0, 0), ry.Point(geom.Pt3[float32](0, 0, 1)), eps)
	s.Require().NoError(rx.Verify(eps))
	s.Require().NoError(ry.Verify(eps))
}

func (s *TransformSuite) TestRotateAxisMatchesPrincipal() {
	for _, deg := range []float32{-120, -30, 0, 45, 90, 200} {
		s.Require().True(transform.Rotate(deg, geom.Vec3[float32](0, 0, 2)).ApproxEqual(transform.RotateZ(deg)), "z %v", deg)
		s.Require().True(transform.Rotate(deg, geom.Vec3[float32](3, 0, 0)).ApproxEqual(transform.RotateX(deg)), "x %v", deg)
		s.Require().True(transform.Rotate(deg, geom.Vec3[float32](0, 1, 0)).ApproxEqual(transform.RotateY(deg)), "y %v", deg)
	}
	r := transform.Rotate(33, geom.Vec3[float32](1, 2, 3))
	s.Require().NoError(r.Verify(eps))
}

func (s *TransformSuite) TestScale() {
	sc := transform.Scale(2, 3, 4)
	s.Require().Equal(geom.Pt3[float32](2, 3, 4), sc.Point(geom.Pt3[float32](1, 1, 1)))
	s.Require().True(sc.HasScale(1e-5))
	s.Require().False(sc.SwapsHandedness())
	s.Require().True(transform.Scale(-1, 1, 1).SwapsHandedness())
}

func TestTransformSuite(t *testing.T) {
	suite.Run(t, new(TransformSuite))
}

func TestScale_ZeroFactorKeepsInfInverse(t *testing.T) {
	sc := transform.Scale(0, 1, 1)
	inv := sc.InverseMatrix()
	require.True(t, math.IsInf(float64(inv[0]), 1))
	require.Equal(t, float32(1), inv[5])
	require.Equal(t, geom.Pt3[float32](0, 2, 3), sc.Point(geom.Pt3[float32](5, 2, 3)))
}

func TestNew(t *testing.T) {
	m := matrix.New(
		2, 0, 0, 1,
		0, 4, 0, 2,
		0, 0, 8, 3,
		0, 0, 0, 1,
	)
	for _, be := range []linalg.Backend{linalg.Gonum{}, linalg.Native{}} {
		tr, err := transform.New(m, transform.WithBackend(be))
		require.NoError(t, err)
		require.Equal(t, m, tr.Matrix())
		require.NoError(t, tr.Verify(eps))
		p := geom.Pt3[float32](1, 1, 1)
		requirePointNear(t, p, tr.Inverse().Point(tr.Point(p)), eps)
	}

	_, err := transform.New(matrix.Diag(1, 0, 1, 1))
	require.True(t, errors.Is(err, transform.ErrSingular))
	require.Panics(t, func() { transform.MustNew(matrix.Zero()) })
	require.NotPanics(t, func() { transform.MustNew(matrix.Identity()) })
}

func TestNew_RejectsNaN(t *testing.T) {
	m := matrix.Identity()
	m[6] = float32(math.NaN())
	_, err := transform.New(m)
	require.True(t, errors.Is(err, scalar.ErrNaN), "got %v", err)
	require.Panics(t, func() { transform.MustNew(m) })
}

func TestNew_RejectsNaNInverse(t *testing.T) {
	// An infinite entry poisons the elimination: 0·Inf is NaN.
	m := matrix.Identity()
	m[1] = float32(math.Inf(1))
	_, err := transform.New(m, transform.WithBackend(linalg.Native{}))
	require.True(t, errors.Is(err, transform.ErrSingular), "got %v", err)
}

// countingBackend records how many products run through it.
type countingBackend struct {
	linalg.Native
	gemms *int
}

func (c countingBackend) Gemm(alpha float32, a, b *[16]float32, beta float32, out *[16]float32) {
	*c.gemms++
	c.Native.Gemm(alpha, a, b, beta, out)
}

func TestComposeAndVerify_UseConfiguredBackend(t *testing.T) {
	var n int
	be := transform.WithBackend(countingBackend{gemms: &n})

	c := transform.Translate(geom.Vec3[float32](1, 0, 0)).Compose(transform.Scale(2, 2, 2), be)
	require.Equal(t, 2, n)
	require.Equal(t, geom.Pt3[float32](3, 2, 2), c.Point(geom.Pt3[float32](1, 1, 1)))

	require.NoError(t, c.Verify(eps, be))
	require.Equal(t, 4, n)
}

func TestIdentityAndEquality(t *testing.T) {
	id := transform.Identity()
	require.True(t, id.IsIdentity())
	require.True(t, id.Equal(transform.Translate(geom.Vector3f{})))
	require.False(t, transform.Translate(geom.Vec3[float32](1, 0, 0)).IsIdentity())
	require.Equal(t, "Transform[[1 0 0 0] [0 1 0 0] [0 0 1 0] [0 0 0 1]]", id.String())
}

func TestInverseAndTransposeAreSwaps(t *testing.T) {
	tr := transform.Translate(geom.Vec3[float32](1, 2, 3))
	require.Equal(t, tr.InverseMatrix(), tr.Inverse().Matrix())
	require.Equal(t, tr.Matrix(), tr.Inverse().InverseMatrix())
	require.True(t, tr.Inverse().Inverse().Equal(tr))

	tt := tr.Transpose()
	require.Equal(t, tr.Matrix().Transpose(), tt.Matrix())
	require.Equal(t, tr.InverseMatrix().Transpose(), tt.InverseMatrix())
	require.NoError(t, tt.Verify(eps))
}

func TestCompose(t *testing.T) {
	tr := transform.Translate(geom.Vec3[float32](1, 0, 0))
	sc := transform.Scale(2, 2, 2)

	// sc first, then tr
	c := tr.Compose(sc)
	require.Equal(t, geom.Pt3[float32](3, 2, 2), c.Point(geom.Pt3[float32](1, 1, 1)))
	require.NoError(t, c.Verify(eps))
	require.Equal(t, geom.Pt3[float32](1, 1, 1), c.Inverse().Point(geom.Pt3[float32](3, 2, 2)))

	r := newRNG(9)
	for i := 0; i < 200; i++ {
		a := transform.RotateX(uniform(r, -180, 180)).Compose(transform.Translate(geom.Vec3(uniform(r, -5, 5), uniform(r, -5, 5), uniform(r, -5, 5))))
		b := transform.Scale(uniform(r, 0.5, 2), uniform(r, 0.5, 2), uniform(r, 0.5, 2)).Compose(transform.RotateY(uniform(r, -180, 180)))
		require.NoError(t, a.Compose(b).Verify(1e-4))
	}
}

func TestPointDividesOnlyWhenWNotOne(t *testing.T) {
	// w' = 2 for every point: the result is halved.
	tr := transform.FromPair(matrix.Diag(1, 1, 1, 2), matrix.Diag(1, 1, 1, 0.5))
	require.Equal(t, geom.Pt3[float32](1, 2, 3), tr.Point(geom.Pt3[float32](2, 4, 6)))
}

func TestVectorIgnoresTranslation(t *testing.T) {
	tr := transform.Translate(geom.Vec3[float32](10, 20, 30)).Compose(transform.Scale(2, 1, 1))
	require.Equal(t, geom.Vec3[float32](2, 1, 1), tr.Vector(geom.Vec3[float32](1, 1, 1)))
}

func TestNormalStaysPerpendicular(t *testing.T) {
	r := newRNG(17)
	for i := 0; i < 500; i++ {
		tr := transform.Scale(uniform(r, 0.2, 5), uniform(r, 0.2, 5), uniform(r, 0.2, 5)).
			Compose(transform.Rotate(uniform(r, -180, 180), geom.Vec3(uniform(r, 0.1, 1), uniform(r, 0.1, 1), uniform(r, 0.1, 1))))

		n := geom.Normalize(geom.Vec3(uniform(r, -1, 1), uniform(r, -1, 1), uniform(r, 0.1, 1)))
		tangent, _ := geom.CoordinateSystem(n)

		tn := tr.Normal(n.Normal())
		tt := tr.Vector(tangent)
		require.InDelta(t, 0, geom.Dot(tn, tt), 1e-4, "iteration %d", i)
	}

	// Under non-uniform scale the linear part alone tilts a normal off the surface.
	sc := transform.Scale(4, 1, 1)
	n := geom.Norm3[float32](1, 1, 0)
	tangent := geom.Vec3[float32](1, -1, 0)
	require.NotEqual(t, float32(0), geom.Dot(sc.Vector(n.Vector()), sc.Vector(tangent)))
	require.InDelta(t, 0, geom.Dot(sc.Normal(n), sc.Vector(tangent)), 1e-6)
}

func TestBounds(t *testing.T) {
	b := bounds.New3(geom.Pt3[float32](0, 0, 0), geom.Pt3[float32](1, 2, 3))

	moved := transform.Translate(geom.Vec3[float32](1, 1, 1)).Bounds(b)
	require.Equal(t, bounds.New3(geom.Pt3[float32](1, 1, 1), geom.Pt3[float32](2, 3, 4)), moved)

	rotated := transform.RotateZ(90).Bounds(bounds.New3(geom.Pt3[float32](0, 0, 0), geom.Pt3[float32](1, 1, 1)))
	requirePointNear(t, geom.Pt3[float32](-1, 0, 0), rotated.Min, eps)
	requirePointNear(t, geom.Pt3[float32](0, 1, 1), rotated.Max, eps)

	for i := 0; i < 8; i++ {
		require.True(t, moved.Inside(transform.Translate(geom.Vec3[float32](1, 1, 1)).Point(b.Corner(i))))
	}
}

func TestLookAt(t *testing.T) {
	// Camera on the -z axis looking at the origin keeps the world axes.
	tr, err := transform.LookAt(geom.Pt3[float32](0, 0, -5), geom.Pt3[float32](0, 0, 0), geom.Vec3[float32](0, 1, 0))
	require.NoError(t, err)
	requirePointNear(t, geom.Pt3[float32](0, 0, 5), tr.Point(geom.Pt3[float32](0, 0, 0)), eps)
	requirePointNear(t, geom.Pt3[float32](0, 1, 5), tr.Point(geom.Pt3[float32](0, 1, 0)), eps)
	requirePointNear(t, geom.Pt3[float32](0, 0, -5), tr.Inverse().Point(geom.Pt3[float32](0, 0, 0)), eps)
	require.NoError(t, tr.Verify(eps))

	// The viewing direction maps to camera +z.
	eye := geom.Pt3[float32](3, 4, 5)
	target := geom.Pt3[float32](-1, 2, 0)
	tr, err = transform.LookAt(eye, target, geom.Vec3[float32](0, 1, 0), transform.WithBackend(linalg.Native{}))
	require.NoError(t, err)
	dir := tr.Vector(geom.Normalize(target.Sub(eye)))
	require.InDelta(t, 0, dir[0], eps)
	require.InDelta(t, 0, dir[1], eps)
	require.InDelta(t, 1, dir[2], eps)
	require.False(t, tr.HasScale(1e-4))
}

func TestLookAt_Degenerate(t *testing.T) {
	p := geom.Pt3[float32](1, 2, 3)
	_, err := transform.LookAt(p, p, geom.Vec3[float32](0, 1, 0))
	require.True(t, errors.Is(err, transform.ErrDegenerateBasis))

	_, err = transform.LookAt(geom.Pt3[float32](0, 0, 0), geom.Pt3[float32](0, 5, 0), geom.Vec3[float32](0, 1, 0))
	require.True(t, errors.Is(err, transform.ErrDegenerateBasis))

	_, err = transform.LookAt(geom.Pt3[float32](0, 0, 0), geom.Pt3[float32](0, 0, 1), geom.Vector3f{})
	require.True(t, errors.Is(err, transform.ErrDegenerateBasis))
}

func TestPerspective(t *testing.T) {
	p, err := transform.Perspective(90, 1, 100)
	require.NoError(t, err)

	near := p.Point(geom.Pt3[float32](0, 0, 1))
	far := p.Point(geom.Pt3[float32](0, 0, 100))
	require.InDelta(t, 0, near[2], eps)
	require.InDelta(t, 1, far[2], eps)

	// x/z projected with tan(45°) = 1
	q := p.Point(geom.Pt3[float32](2, -3, 10))
	require.InDelta(t, 0.2, q[0], eps)
	require.InDelta(t, -0.3, q[1], eps)

	require.NoError(t, p.Verify(1e-3))

	for _, bad := range [][3]float32{{0, 1, 2}, {180, 1, 2}, {90, 0, 2}, {90, 2, 2}, {90, 3, 2}} {
		_, err := transform.Perspective(bad[0], bad[1], bad[2])
		require.True(t, errors.Is(err, transform.ErrInvalidProjection), "%v", bad)
	}
}

func TestVerify_DetectsInconsistentPair(t *testing.T) {
	if transform.DebugChecks {
		require.Panics(t, func() { transform.FromPair(matrix.Diag(2, 1, 1, 1), matrix.Identity()) })
		return
	}
	tr := transform.FromPair(matrix.Diag(2, 1, 1, 1), matrix.Identity())
	err := tr.Verify(eps)
	require.True(t, errors.Is(err, transform.ErrInconsistentPair))
}

func TestOptions_Validate(t *testing.T) {
	require.Panics(t, func() { transform.WithBackend(nil) })
	require.Panics(t, func() { transform.WithTolerance(-1, 0) })
	require.Panics(t, func() { transform.WithTolerance(0, math.NaN()) })
	require.NotPanics(t, func() { transform.WithTolerance(0, 1e-3) })

	a := transform.Scale(1, 1, 1)
	b := transform.Scale(1.001, 1, 1)
	require.False(t, a.ApproxEqual(b))
	require.True(t, a.ApproxEqual(b, transform.WithTolerance(0, 1e-2)))
}
