package solver

import (
	"sort"

	"github.com/gorotate/pnpbnb/corr"
	"github.com/gorotate/pnpbnb/internal/geom"
	"github.com/gorotate/pnpbnb/residual"
)

// EstimateTranslation recovers a translation estimate given a rotation
// already found by Solve: for each correspondence pair that is an inlier of
// rot, both of its correspondences contribute a candidate
// t_i = bearing_i - rot.Apply(world_i), and the componentwise median across
// all candidates is returned. This is a separate, explicitly opted-into
// step — Solve itself always reports the zero translation, leaving
// translation recovery to the caller once a rotation is fixed.
//
// EstimateTranslation returns the zero vector if s has no inlier pairs
// under rot at its configured rotation threshold.
func EstimateTranslation(s *Solver, rot geom.Rotation) geom.Vec3 {
	items := s.store.Items()
	pairs := s.store.Pairs()

	var xs, ys, zs []float64
	collect := func(c corr.Correspondence) {
		t := geom.Sub(c.Bearing, rot.Apply(c.World))
		xs = append(xs, t.X)
		ys = append(ys, t.Y)
		zs = append(zs, t.Z)
	}

	for i, pair := range pairs {
		eps, ok := residual.Epsilon(rot, pair)
		if !residual.Inlier(eps, ok, s.cfg.rThreshold) {
			continue
		}

		collect(items[2*i])
		collect(items[2*i+1])
	}

	if len(xs) == 0 {
		return geom.Vec3{}
	}

	return geom.Vec3{X: median(xs), Y: median(ys), Z: median(zs)}
}

func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}
