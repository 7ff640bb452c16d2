package region

import (
	"github.com/gorotate/pnpbnb/corr"
	"github.com/gorotate/pnpbnb/internal/geom"
)

// Region is a subset Ω ⊂ SO(3) under one of the parameterizations this
// package provides. Bound must be called exactly once, immediately after
// the region is constructed (by NewAxisAngleCube/NewPolarAxisAngle or by a
// parent's Subdivide); Lower/Upper are meaningless before that call.
type Region interface {
	// Rotation returns the region's representative rotation R(Ω) (its
	// center), used both to evaluate bounds and, for the region that
	// becomes the incumbent, as the solver's answer.
	Rotation() geom.Rotation

	// Subdivide consumes the region conceptually (callers should not reuse
	// it) and returns the eight children that tile it: every rotation in
	// the parent lies in at least one child.
	Subdivide() []Region

	// Bound scores the region against pairs at threshold tau, setting
	// Lower/Upper for every subsequent call. Must be called exactly once.
	Bound(pairs []corr.Pair, tau float64)

	// Lower returns L(Ω): a count of pairs that are inliers of R(Ω) itself,
	// hence a valid lower bound on the best inlier count achievable inside Ω.
	Lower() int

	// Upper returns U(Ω): a count of pairs within tau+α(Ω) of R(Ω), hence a
	// valid upper bound on the best inlier count achievable inside Ω.
	Upper() int

	// Extent returns a canonical, non-negative measure of the region's
	// geometric size, used only to break ties between regions with equal
	// Upper(). It shrinks strictly with each Subdivide and reaches exactly
	// 0 only in the degenerate case of a zero-size seed.
	Extent() float64
}
