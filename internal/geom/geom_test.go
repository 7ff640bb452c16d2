package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gorotate/pnpbnb/internal/geom"
)

func TestAxisAngleIdentityAtZeroAngle(t *testing.T) {
	r := geom.AxisAngle(geom.Vec3{X: 0, Y: 0, Z: 1}, 0)
	v := geom.Vec3{X: 1, Y: 2, Z: 3}
	got := r.Apply(v)
	require.InDelta(t, v.X, got.X, 1e-9)
	require.InDelta(t, v.Y, got.Y, 1e-9)
	require.InDelta(t, v.Z, got.Z, 1e-9)
}

func TestAxisAngleZeroAxisIsIdentity(t *testing.T) {
	r := geom.AxisAngle(geom.Vec3{}, 1.234)
	require.Equal(t, geom.IdentityRotation(), r)
}

func TestAxisAngleQuarterTurnZ(t *testing.T) {
	// Rotating X by +90 deg about Z should land on Y.
	r := geom.AxisAngle(geom.Vec3{Z: 1}, math.Pi/2)
	got := r.Apply(geom.Vec3{X: 1})
	require.InDelta(t, 0.0, got.X, 1e-6)
	require.InDelta(t, 1.0, got.Y, 1e-6)
	require.InDelta(t, 0.0, got.Z, 1e-6)
}

func TestAxisAngleVecMatchesAxisAngle(t *testing.T) {
	axis := geom.Unit(geom.Vec3{X: 1, Y: 1, Z: 0})
	angle := 0.7
	v := geom.Scale(angle, axis)

	a := geom.AxisAngleVec(v)
	b := geom.AxisAngle(axis, angle)
	require.InDelta(t, a.Mat()[0][0], b.Mat()[0][0], 1e-9)
	require.InDelta(t, a.Mat()[1][2], b.Mat()[1][2], 1e-9)
}

func TestRotationIsOrthonormal(t *testing.T) {
	r := geom.AxisAngle(geom.Vec3{X: 0.3, Y: 0.1, Z: 0.9}, 1.1)
	m := r.Mat()
	rt := m.Transpose()
	prod := m.Mul(rt)
	id := geom.Identity3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, id[i][j], prod[i][j], 1e-6)
		}
	}
}

func TestAngleOrthogonal(t *testing.T) {
	got := geom.Angle(geom.Vec3{X: 1}, geom.Vec3{Y: 1})
	require.InDelta(t, math.Pi/2, got, 1e-9)
}

func TestAngleParallel(t *testing.T) {
	got := geom.Angle(geom.Vec3{X: 2}, geom.Vec3{X: 5})
	require.InDelta(t, 0.0, got, 1e-9)
}

func TestAngleZeroVectorIsNaN(t *testing.T) {
	got := geom.Angle(geom.Vec3{}, geom.Vec3{X: 1})
	require.True(t, math.IsNaN(got))
}

func TestCalibrationBearingRoundTrip(t *testing.T) {
	c := geom.Calibration{FX: 718.856, FY: 718.856, CX: 607.1928, CY: 185.2157}
	b, err := c.Bearing(geom.ImagePoint{X: 607, Y: 185})
	require.NoError(t, err)
	require.InDelta(t, 0.0, b.X, 0.01)
	require.InDelta(t, 0.0, b.Y, 0.01)
	require.Equal(t, 1.0, b.Z)
}

func TestCalibrationSingularIsFatal(t *testing.T) {
	c := geom.Calibration{FX: 0, FY: 1, CX: 0, CY: 0}
	_, err := c.Bearing(geom.ImagePoint{})
	require.ErrorIs(t, err, geom.ErrSingularCalibration)
}
