package residual

import (
	"math"

	"github.com/gorotate/pnpbnb/corr"
	"github.com/gorotate/pnpbnb/internal/geom"
)

// Epsilon computes ε(R) = |∠(v, R·u) − π/2| for the given rotation and
// pair. ok is false when u or v is the zero vector (degenerate pair —
// repeated or collinear input): such pairs are treated as not an inlier and
// skipped when scoring, rather than producing an undefined angle. When ok
// is false the returned eps is meaningless and must not be used.
func Epsilon(rot geom.Rotation, p corr.Pair) (eps float64, ok bool) {
	if geom.IsZero(p.U) || geom.IsZero(p.V) {
		return 0, false
	}

	ru := rot.Apply(p.U)
	if geom.IsZero(ru) {
		return 0, false
	}

	angle := geom.Angle(p.V, ru)

	return math.Abs(angle - math.Pi/2), true
}

// Inlier reports whether a pair is an inlier of rot at threshold tau: its
// residual must be both defined (ok) and strictly below tau.
func Inlier(eps float64, ok bool, tau float64) bool {
	return ok && eps < tau
}
