package geom

import "math"

// ImagePoint is an integer pixel coordinate in the image plane.
type ImagePoint struct {
	X, Y int
}

// Calibration is a pinhole camera's intrinsics, implicitly building
// K = [[fx,0,cx],[0,fy,cy],[0,0,1]].
type Calibration struct {
	FX, FY, CX, CY float64
}

// K returns the intrinsic matrix.
func (c Calibration) K() Mat3 {
	return Mat3{
		{c.FX, 0, c.CX},
		{0, c.FY, c.CY},
		{0, 0, 1},
	}
}

// valid reports whether the calibration can be inverted.
func (c Calibration) valid() bool {
	return c.FX != 0 && c.FY != 0 && !math.IsNaN(c.FX) && !math.IsNaN(c.FY) &&
		!math.IsInf(c.FX, 0) && !math.IsInf(c.FY, 0)
}

// Bearing back-projects an image pixel through K⁻¹, returning
// b = K⁻¹·[u, v, 1]ᵀ. K is upper triangular with a 1 in the bottom-right
// corner, so its inverse has the same closed form
// K⁻¹ = [[1/fx, 0, -cx/fx], [0, 1/fy, -cy/fy], [0, 0, 1]]
// and no general 3×3 inverse routine is needed.
//
// Bearing is not required to be unit length — the residual kernel is
// scale-invariant — so this returns the raw back-projection.
func (c Calibration) Bearing(p ImagePoint) (Vec3, error) {
	if !c.valid() {
		return Vec3{}, ErrSingularCalibration
	}

	return Vec3{
		X: (float64(p.X) - c.CX) / c.FX,
		Y: (float64(p.Y) - c.CY) / c.FY,
		Z: 1,
	}, nil
}
