package geom

import "gonum.org/v1/gonum/spatial/r3"

// Rotation is an element of SO(3), stored as a 3×3 matrix per the data
// model this package serves.
type Rotation Mat3

// IdentityRotation returns the identity rotation.
func IdentityRotation() Rotation { return Rotation(Identity3()) }

// Apply returns R*v.
func (r Rotation) Apply(v Vec3) Vec3 { return Mat3(r).MulVec(v) }

// Mat returns the underlying 3×3 matrix.
func (r Rotation) Mat() Mat3 { return Mat3(r) }

// AxisAngle builds the rotation of angle radians about axis. If axis is the
// zero vector the identity rotation is returned regardless of angle — the
// degenerate case an axis-angle cube's center point can land on.
//
// Construction goes through gonum's quaternion-backed r3.Rotation (the
// numerically stable way to turn an axis+angle into a rotation operator)
// and then reads off the images of the standard basis vectors to assemble
// the 3×3 matrix this package's data model requires; r3.Rotation itself
// exposes no public matrix accessor.
func AxisAngle(axis Vec3, angle float64) Rotation {
	unit := Unit(axis)
	if IsZero(unit) {
		return IdentityRotation()
	}

	rot := r3.NewRotation(angle, unit)
	cx := rot.Rotate(Vec3{X: 1})
	cy := rot.Rotate(Vec3{Y: 1})
	cz := rot.Rotate(Vec3{Z: 1})

	return Rotation(columns(cx, cy, cz))
}

// AxisAngleVec builds the rotation represented by v itself: direction is
// the axis, magnitude is the angle in radians: R(v) = axisAngle(v̂, ‖v‖).
func AxisAngleVec(v Vec3) Rotation {
	return AxisAngle(v, Norm(v))
}
