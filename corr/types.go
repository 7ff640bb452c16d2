package corr

import "github.com/gorotate/pnpbnb/internal/geom"

// Correspondence associates a calibrated camera-frame bearing with the
// world point it was back-projected from. Bearing need not be unit length.
type Correspondence struct {
	Bearing geom.Vec3
	World   geom.Vec3
}

// Pair is an unordered pair of correspondences reduced to the two vectors
// the residual kernel needs:
//
//	U = World1 - World2   (world difference)
//	V = Bearing1 × Bearing2 (camera cross)
type Pair struct {
	U geom.Vec3
	V geom.Vec3
}

func makePair(a, b Correspondence) Pair {
	return Pair{
		U: geom.Sub(a.World, b.World),
		V: geom.Cross(a.Bearing, b.Bearing),
	}
}
