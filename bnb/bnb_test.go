package bnb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gorotate/pnpbnb/bnb"
	"github.com/gorotate/pnpbnb/corr"
	"github.com/gorotate/pnpbnb/internal/geom"
	"github.com/gorotate/pnpbnb/region"
)

// orthogonalPair builds a Pair whose V is exactly orthogonal to rot.Apply(u),
// so it is a perfect (eps==0) inlier of rot but, for a generic rot, not of
// the identity — forcing the search to actually move off the seed center.
func orthogonalPair(rot geom.Rotation, u, helper geom.Vec3) corr.Pair {
	ru := rot.Apply(u)
	return corr.Pair{U: u, V: geom.Cross(ru, helper)}
}

// trueRotation is an arbitrary, non-identity rotation the test pairs are
// built against.
func trueRotation() geom.Rotation {
	return geom.AxisAngle(geom.Vec3{X: 0.3, Y: -0.6, Z: 0.8}, 1.1)
}

func inlierPairsForRotation(rot geom.Rotation) []corr.Pair {
	return []corr.Pair{
		orthogonalPair(rot, geom.Vec3{X: 1}, geom.Vec3{Y: 1}),
		orthogonalPair(rot, geom.Vec3{Y: 1}, geom.Vec3{Z: 1}),
		orthogonalPair(rot, geom.Vec3{Z: 1}, geom.Vec3{X: 1}),
		orthogonalPair(rot, geom.Vec3{X: 1, Y: 1}, geom.Vec3{Z: 1}),
		orthogonalPair(rot, geom.Vec3{X: 1, Z: 1}, geom.Vec3{Y: 1}),
	}
}

func TestSearchFindsAllInliersAtTrueRotation(t *testing.T) {
	pairs := inlierPairsForRotation(trueRotation())
	got := bnb.Search(region.SeedAxisAngleCube(), pairs, 0.05, bnb.WithExtentFloor(1e-3))
	require.Equal(t, len(pairs), got.L)
}

func TestSearchIncumbentNonDecreasingWithMoreRegions(t *testing.T) {
	pairs := inlierPairsForRotation(trueRotation())
	prev := 0
	for _, maxRegions := range []int{1, 2, 4, 8, 16, 64, 256, 1024, 4096} {
		got := bnb.Search(region.SeedAxisAngleCube(), pairs, 0.05, bnb.WithMaxRegions(maxRegions))
		require.GreaterOrEqual(t, got.L, prev)
		prev = got.L
	}
	require.Equal(t, len(pairs), prev)
}

func TestSearchDeterministicAcrossRuns(t *testing.T) {
	pairs := inlierPairsForRotation(trueRotation())
	a := bnb.Search(region.SeedAxisAngleCube(), pairs, 0.05, bnb.WithExtentFloor(1e-3))
	b := bnb.Search(region.SeedAxisAngleCube(), pairs, 0.05, bnb.WithExtentFloor(1e-3))
	require.Equal(t, a, b)
}

func TestSearchEmptyPairsReturnsSeedCenter(t *testing.T) {
	seed := region.SeedAxisAngleCube()
	got := bnb.Search(seed, nil, 0.05)
	require.Equal(t, 0, got.L)
	require.Equal(t, geom.IdentityRotation(), got.R)
}

func TestSearchRespectsMaxRegionsCap(t *testing.T) {
	pairs := inlierPairsForRotation(trueRotation())
	// A single-region cap must still return a valid (if coarse) incumbent
	// rather than panicking or looping.
	got := bnb.Search(region.SeedAxisAngleCube(), pairs, 0.05, bnb.WithMaxRegions(1))
	require.GreaterOrEqual(t, got.L, 0)
}

func TestWithExtentFloorPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() {
		bnb.WithExtentFloor(-1)
	})
}

func TestWithMaxRegionsPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() {
		bnb.WithMaxRegions(0)
	})
}
