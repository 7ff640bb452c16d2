// Package residual implements the rotation residual kernel ε(R; pair):
// how far a candidate rotation R is from making a correspondence pair's
// world difference u and camera cross v orthogonal.
//
// For the true rotation and a noise-free pair, v ⟂ R·u: v is the cross
// product of two bearings, which is normal to the plane they span, and for
// the correct R that plane contains the rotated world difference R·u.
// Deviation from a right angle measures rotation error independent of
// translation.
package residual
