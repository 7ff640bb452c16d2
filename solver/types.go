package solver

import (
	"io"
	"math"
)

// Parameterization selects which region.Region variant the search explores.
type Parameterization int

const (
	// AxisAngle drives the search over region.AxisAngleCube (the default).
	AxisAngle Parameterization = iota
	// Polar drives the search over region.PolarAxisAngle.
	Polar
)

func (p Parameterization) String() string {
	switch p {
	case AxisAngle:
		return "angle-axis based"
	case Polar:
		return "polar based"
	default:
		return "unknown"
	}
}

// config holds the tunable knobs New/Options assemble; Solver embeds one.
type config struct {
	rThreshold float64
	tThreshold float64
	param      Parameterization
	verbose    io.Writer
}

// Option is a functional option for New.
type Option func(*config)

// WithParameterization selects the rotation-region variant up front (the
// same choice (*Solver).SetParameterization changes later).
func WithParameterization(p Parameterization) Option {
	return func(c *config) {
		c.param = p
	}
}

// WithVerbose makes Solve write a single line naming the active
// parameterization to w before it starts searching. Nil (the default)
// writes nothing; this is a deliberately tiny, opt-in sliver of logging,
// not a general logging facility.
func WithVerbose(w io.Writer) Option {
	return func(c *config) {
		c.verbose = w
	}
}

func validThreshold(t float64) bool {
	return t > 0 && !math.IsNaN(t) && !math.IsInf(t, 0)
}
