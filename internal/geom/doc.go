// Package geom provides the linear-algebra and camera facility that the
// rotation solver treats as a given: 3-vectors, 3×3 rotation matrices,
// axis-angle construction, unsigned angle-between, and pinhole pixel-to-
// bearing conversion.
//
// Vector algebra is delegated to gonum.org/v1/gonum/spatial/r3 (Vec, Add,
// Sub, Scale, Cross, Dot, Norm) and its quaternion-backed Rotation type for
// constructing axis-angle rotations. Mat3 is hand-rolled: the spec this
// package serves requires rotations to be stored as a 3×3 matrix, and
// r3.Rotation exposes no public matrix form, so AxisAngle rotates the
// standard basis through an r3.Rotation and assembles the columns.
package geom
