package solver

import (
	"fmt"

	"github.com/gorotate/pnpbnb/bnb"
	"github.com/gorotate/pnpbnb/corr"
	"github.com/gorotate/pnpbnb/internal/geom"
	"github.com/gorotate/pnpbnb/region"
)

// Solver accumulates correspondences for a single pose estimate and drives
// the rotation search. The zero value is not usable; construct with New.
type Solver struct {
	cfg    config
	store  corr.Store
	bnbOpt []bnb.Option
}

// New returns a Solver configured with the given inlier thresholds (in
// radians for rotation, in world units for translation). Both must be
// positive and finite; New panics otherwise.
func New(rThreshold, tThreshold float64, opts ...Option) *Solver {
	if !validThreshold(rThreshold) || !validThreshold(tThreshold) {
		panic(ErrBadThreshold.Error())
	}

	cfg := config{rThreshold: rThreshold, tThreshold: tThreshold, param: AxisAngle}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Solver{cfg: cfg}
}

// WithBnBOptions forwards options to the underlying bnb.Search call Solve
// makes, e.g. bnb.WithMaxRegions or bnb.WithDeadline. Safe to call any
// number of times; options accumulate.
func (s *Solver) WithBnBOptions(opts ...bnb.Option) *Solver {
	s.bnbOpt = append(s.bnbOpt, opts...)
	return s
}

// SetParameterization switches which region.Region variant Solve explores.
func (s *Solver) SetParameterization(p Parameterization) {
	s.cfg.param = p
}

// Reserve pre-allocates storage for n correspondences.
func (s *Solver) Reserve(n int) {
	s.store.Reserve(n)
}

// Clear discards all accumulated correspondences.
func (s *Solver) Clear() {
	s.store.Clear()
}

// Add back-projects an image pixel through calib and accumulates it as a
// correspondence against world. A singular calibration is a configuration
// error and panics rather than returning an error, matching the threshold
// validation in New.
func (s *Solver) Add(px geom.ImagePoint, world geom.Vec3, calib geom.Calibration) {
	bearing, err := calib.Bearing(px)
	if err != nil {
		panic(fmt.Sprintf("solver: %v", err))
	}

	s.store.Add(corr.Correspondence{Bearing: bearing, World: world})
}

// Solve returns the globally-optimal rotation over the accumulated
// correspondences and the zero translation vector. Translation recovery is
// a separate, explicit step — see EstimateTranslation — so Solve's second
// return value is always geom.Vec3{}.
//
// With fewer than two correspondences no pair can be formed and Solve
// returns the identity rotation without running any search.
func (s *Solver) Solve() (geom.Rotation, geom.Vec3) {
	if s.cfg.verbose != nil {
		fmt.Fprintf(s.cfg.verbose, "Mode: %s\n", s.cfg.param)
	}

	pairs := s.store.Pairs()
	if len(pairs) == 0 {
		return geom.IdentityRotation(), geom.Vec3{}
	}

	var seed region.Region
	switch s.cfg.param {
	case Polar:
		seed = region.SeedPolarAxisAngle()
	default:
		seed = region.SeedAxisAngleCube()
	}

	best := bnb.Search(seed, pairs, s.cfg.rThreshold, s.bnbOpt...)

	return best.R, geom.Vec3{}
}
