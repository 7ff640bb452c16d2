package geom

// Mat3 is a row-major 3×3 real matrix: the storage form a rotation in
// SO(3) takes throughout this package.
type Mat3 [3][3]float64

// Identity3 returns the 3×3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// MulVec returns m*v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns m*n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[i][k] * n[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// Transpose returns the transpose of m. For a rotation matrix this is also
// its inverse.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j][i] = m[i][j]
		}
	}

	return out
}

// columns assembles a Mat3 whose columns are cx, cy, cz.
func columns(cx, cy, cz Vec3) Mat3 {
	return Mat3{
		{cx.X, cy.X, cz.X},
		{cx.Y, cy.Y, cz.Y},
		{cx.Z, cy.Z, cz.Z},
	}
}
