package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a 3-vector in either the world or the camera frame. It is a plain
// alias for gonum's r3.Vec so callers can use either package's helpers
// interchangeably.
type Vec3 = r3.Vec

// Add returns p+q.
func Add(p, q Vec3) Vec3 { return r3.Add(p, q) }

// Sub returns p-q.
func Sub(p, q Vec3) Vec3 { return r3.Sub(p, q) }

// Scale returns f*p.
func Scale(f float64, p Vec3) Vec3 { return r3.Scale(f, p) }

// Dot returns the dot product of p and q.
func Dot(p, q Vec3) float64 { return r3.Dot(p, q) }

// Cross returns the cross product p×q.
func Cross(p, q Vec3) Vec3 { return r3.Cross(p, q) }

// Norm returns the Euclidean length of p.
func Norm(p Vec3) float64 { return r3.Norm(p) }

// Unit returns p scaled to unit length, or the zero vector if p has exactly
// zero length.
func Unit(p Vec3) Vec3 {
	n := Norm(p)
	if n == 0 {
		return Vec3{}
	}

	return Scale(1/n, p)
}

// IsZero reports whether p is exactly the zero vector. Correspondence pairs
// built from degenerate input (repeated points, collinear bearings) can
// produce an exact zero u or v; residual.Epsilon uses this to flag the pair
// as "not scoreable" rather than propagate a NaN angle.
func IsZero(p Vec3) bool { return p.X == 0 && p.Y == 0 && p.Z == 0 }

// Angle returns the unsigned angle between a and b in [0, π]. It uses
// atan2(‖a×b‖, a·b) rather than acos(a·b/(‖a‖‖b‖)): the atan2 form stays
// numerically well-conditioned near 0 and π, where acos's derivative blows
// up. Angle is undefined (returns NaN) if either vector is zero; callers
// must check IsZero first.
func Angle(a, b Vec3) float64 {
	if IsZero(a) || IsZero(b) {
		return math.NaN()
	}

	return math.Atan2(Norm(Cross(a, b)), Dot(a, b))
}
