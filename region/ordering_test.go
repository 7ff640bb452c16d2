package region_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gorotate/pnpbnb/corr"
	"github.com/gorotate/pnpbnb/internal/geom"
	"github.com/gorotate/pnpbnb/region"
)

func boundedCube(center geom.Vec3, edge float64, pairs int, tau float64) *region.AxisAngleCube {
	c := region.NewAxisAngleCube(center, edge)
	c.Bound(nil, tau)
	_ = pairs
	return c
}

func TestLessOrdersByUpperDescending(t *testing.T) {
	// Same geometry, but a is scored against one pair that is an exact
	// inlier of its center (u ⟂ v under the identity), so Upper(a)=1 while
	// Upper(b)=0: a must pop first.
	a := region.NewAxisAngleCube(geom.Vec3{}, 1.0)
	a.Bound([]corr.Pair{{U: geom.Vec3{X: 1}, V: geom.Vec3{Y: 1}}}, 0.1)
	b := boundedCube(geom.Vec3{}, 1.0, 0, 0.1)
	require.True(t, region.Less(a, b))
	require.False(t, region.Less(b, a))
}

func TestLessTieBreaksOnExtentThenLower(t *testing.T) {
	small := region.NewAxisAngleCube(geom.Vec3{}, 0.5)
	big := region.NewAxisAngleCube(geom.Vec3{}, 1.0)
	small.Bound(nil, 0.1)
	big.Bound(nil, 0.1)

	// Equal Upper (both 0, no pairs): smaller Extent must win.
	require.True(t, region.Less(small, big))
	require.False(t, region.Less(big, small))

	// Equal Upper and Extent: larger Lower must win. The pair's residual at
	// the identity is π/4: an inlier at tau=1.0, not at tau=0.1, but within
	// tau+α (α = √3/2 for edge 1) in both cases, so both Uppers are 1.
	pair := []corr.Pair{{U: geom.Vec3{X: 1}, V: geom.Vec3{X: 1, Y: 1}}}
	hiLower := region.NewAxisAngleCube(geom.Vec3{}, 1.0)
	loLower := region.NewAxisAngleCube(geom.Vec3{}, 1.0)
	hiLower.Bound(pair, 1.0)
	loLower.Bound(pair, 0.1)
	require.True(t, region.Less(hiLower, loLower))
	require.False(t, region.Less(loLower, hiLower))
}

func TestLessPanicsOnNaNExtent(t *testing.T) {
	a := region.NewAxisAngleCube(geom.Vec3{}, 1.0)
	a.Bound(nil, 0.1)
	b := region.NewAxisAngleCube(geom.Vec3{}, 1.0)
	b.Bound(nil, 0.1)
	b.Edge = nanFloat()

	require.Panics(t, func() { region.Less(a, b) })
}

func nanFloat() float64 {
	var z float64
	return z / z
}
