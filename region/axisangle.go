package region

import (
	"math"

	"github.com/gorotate/pnpbnb/corr"
	"github.com/gorotate/pnpbnb/internal/geom"
	"github.com/gorotate/pnpbnb/residual"
)

// sqrt3 is √3, used by the axis-angle cube's α bound (half-diagonal of a
// cube of edge e, √3·e/2).
var sqrt3 = math.Sqrt(3)

// AxisAngleCube parameterizes a region of SO(3) by an axis-angle vector
// v ∈ ℝ³ (direction = axis, magnitude = angle) constrained to an
// axis-aligned cube centered at Center with edge Edge.
type AxisAngleCube struct {
	Center geom.Vec3
	Edge   float64

	lower, upper int
	bounded      bool
}

// NewAxisAngleCube builds a cube region; Bound must be called before Lower/
// Upper are read.
func NewAxisAngleCube(center geom.Vec3, edge float64) *AxisAngleCube {
	checkFinite("edge", edge)
	checkFinite("center.X", center.X)
	checkFinite("center.Y", center.Y)
	checkFinite("center.Z", center.Z)

	return &AxisAngleCube{Center: center, Edge: edge}
}

// SeedAxisAngleCube returns the axis-angle cube covering every rotation:
// centered at the origin with edge 2π.
func SeedAxisAngleCube() *AxisAngleCube {
	return NewAxisAngleCube(geom.Vec3{}, 2*math.Pi)
}

// Rotation returns axisAngle(v̂, ‖v‖) evaluated at v = Center, or identity
// when Center is the zero vector.
func (c *AxisAngleCube) Rotation() geom.Rotation {
	return geom.AxisAngleVec(c.Center)
}

// Extent returns the cube's edge length.
func (c *AxisAngleCube) Extent() float64 { return c.Edge }

// Subdivide returns the eight axis-aligned sub-cubes of edge Edge/2 centered
// at Center ± (Edge/4, Edge/4, Edge/4) over all eight sign combinations.
func (c *AxisAngleCube) Subdivide() []Region {
	half := c.Edge / 2
	quarter := c.Edge / 4
	signs := [8][3]float64{
		{+1, +1, +1}, {+1, +1, -1}, {+1, -1, +1}, {+1, -1, -1},
		{-1, +1, +1}, {-1, +1, -1}, {-1, -1, +1}, {-1, -1, -1},
	}

	children := make([]Region, 0, 8)
	for _, s := range signs {
		center := geom.Vec3{
			X: c.Center.X + s[0]*quarter,
			Y: c.Center.Y + s[1]*quarter,
			Z: c.Center.Z + s[2]*quarter,
		}
		children = append(children, NewAxisAngleCube(center, half))
	}

	return children
}

// Bound computes L(Ω) and U(Ω) using α(Ω) = √3·(Edge/2), the cube's
// half-diagonal: a conservative bound on axis-angle displacement translating
// to rotation distance.
func (c *AxisAngleCube) Bound(pairs []corr.Pair, tau float64) {
	rot := c.Rotation()
	alpha := sqrt3 * (c.Edge / 2)

	var lower, upper int
	for _, p := range pairs {
		eps, ok := residual.Epsilon(rot, p)
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

	c.lower, c.upper, c.bounded = lower, upper, true
}

// Lower returns L(Ω). Panics if Bound has not run yet — a programmer error,
// never a user-facing condition: both bounds start at 0 and are set exactly
// once, by Bound.
func (c *AxisAngleCube) Lower() int {
	c.mustBeBounded()
	return c.lower
}

// Upper returns U(Ω).
func (c *AxisAngleCube) Upper() int {
	c.mustBeBounded()
	return c.upper
}

func (c *AxisAngleCube) mustBeBounded() {
	if !c.bounded {
		panic("region: AxisAngleCube.Bound was never called")
	}
}
