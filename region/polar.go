package region

import (
	"math"

	"github.com/gorotate/pnpbnb/corr"
	"github.com/gorotate/pnpbnb/internal/geom"
	"github.com/gorotate/pnpbnb/residual"
)

// AngleRange is a closed interval of angles in radians.
type AngleRange struct {
	Min, Max float64
}

// Center returns the interval's midpoint.
func (r AngleRange) Center() float64 { return (r.Min + r.Max) / 2 }

// Length returns the interval's length (always non-negative; Min/Max are
// never swapped by Subdivide).
func (r AngleRange) Length() float64 { return math.Abs(r.Max - r.Min) }

func (r AngleRange) halves() (lo, hi AngleRange) {
	c := r.Center()
	return AngleRange{r.Min, c}, AngleRange{c, r.Max}
}

// PolarAxisAngle parameterizes a region of SO(3) by the Cartesian product
// [θMin,θMax]×[φMin,φMax]×[aMin,aMax] of a spherical-coordinate axis
// (θ polar, φ azimuth) and a rotation angle a.
type PolarAxisAngle struct {
	Theta, Phi, A AngleRange

	lower, upper int
	bounded      bool
}

// NewPolarAxisAngle builds a polar-axis×angle region; Bound must be called
// before Lower/Upper are read.
func NewPolarAxisAngle(theta, phi, a AngleRange) *PolarAxisAngle {
	checkFinite("theta.Min", theta.Min)
	checkFinite("theta.Max", theta.Max)
	checkFinite("phi.Min", phi.Min)
	checkFinite("phi.Max", phi.Max)
	checkFinite("a.Min", a.Min)
	checkFinite("a.Max", a.Max)

	return &PolarAxisAngle{Theta: theta, Phi: phi, A: a}
}

// SeedPolarAxisAngle returns the polar region covering every rotation:
// θ∈[−π,π], φ∈[−π/2,π/2], a∈[−π,π].
func SeedPolarAxisAngle() *PolarAxisAngle {
	return NewPolarAxisAngle(
		AngleRange{-math.Pi, math.Pi},
		AngleRange{-math.Pi / 2, math.Pi / 2},
		AngleRange{-math.Pi, math.Pi},
	)
}

// axis returns ẑ(θ,φ) = (sinθ cosφ, sinθ sinφ, cosθ) at the given angles.
func axis(theta, phi float64) geom.Vec3 {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)

	return geom.Vec3{X: st * cp, Y: st * sp, Z: ct}
}

// Rotation returns axisAngle(ẑ(θc,φc), ac) at the midpoint of each interval.
func (p *PolarAxisAngle) Rotation() geom.Rotation {
	return geom.AxisAngle(axis(p.Theta.Center(), p.Phi.Center()), p.A.Center())
}

// Extent returns the sum of the three interval lengths: a canonical,
// strictly-shrinking size measure used only for tie-breaking.
func (p *PolarAxisAngle) Extent() float64 {
	return p.Theta.Length() + p.Phi.Length() + p.A.Length()
}

// Subdivide returns the eight children formed by the Cartesian product of
// the two halves of each of the three intervals.
func (p *PolarAxisAngle) Subdivide() []Region {
	tLo, tHi := p.Theta.halves()
	pLo, pHi := p.Phi.halves()
	aLo, aHi := p.A.halves()

	thetas := [2]AngleRange{tLo, tHi}
	phis := [2]AngleRange{pLo, pHi}
	as := [2]AngleRange{aLo, aHi}

	children := make([]Region, 0, 8)
	for _, t := range thetas {
		for _, ph := range phis {
			for _, a := range as {
				children = append(children, NewPolarAxisAngle(t, ph, a))
			}
		}
	}

	return children
}

// Bound computes L(Ω) and U(Ω) using
//
//	α(Ω) = (|θ|·|φ|·|a|) / 8
//
// the default bound for this parameterization. Tighter closed forms exist
// (an acos-based two-range bound, a law-of-cosines form over the angle
// magnitudes) but this product-of-lengths form is simpler to evaluate and
// cheap enough to call on every candidate region.
func (p *PolarAxisAngle) Bound(pairs []corr.Pair, tau float64) {
	rot := p.Rotation()
	alpha := p.Theta.Length() * p.Phi.Length() * p.A.Length() / 8

	var lower, upper int
	for _, c := range pairs {
		eps, ok := residual.Epsilon(rot, c)
		if !ok {
			continue
		}
		if eps < tau {
			lower++
		}
		if eps < tau+alpha {
			upper++
		}
	}

	p.lower, p.upper, p.bounded = lower, upper, true
}

// Lower returns L(Ω). Panics if Bound has not run yet.
func (p *PolarAxisAngle) Lower() int {
	p.mustBeBounded()
	return p.lower
}

// Upper returns U(Ω).
func (p *PolarAxisAngle) Upper() int {
	p.mustBeBounded()
	return p.upper
}

func (p *PolarAxisAngle) mustBeBounded() {
	if !p.bounded {
		panic("region: PolarAxisAngle.Bound was never called")
	}
}
