package spherecast

import "math"

// Translation moves points (W=1) by (x, y, z); directions (W=0) are unchanged.
func Translation(x, y, z Real) Matrix {
	M := Identity(4)
	M.m[0][3], M.m[1][3], M.m[2][3] = x, y, z
	return M
}

// Scaling scales along each axis.
func Scaling(x, y, z Real) Matrix {
	M := Identity(4)
	M.m[0][0], M.m[1][1], M.m[2][2] = x, y, z
	return M
}

// RotationX rotates about the X axis. Rotations are right-handed, angles in radians.
func RotationX(a Real) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity(4)
	M.m[1][1], M.m[1][2] = c, -s
	M.m[2][1], M.m[2][2] = s, c
	return M
}

// RotationY rotates about the Y axis.
func RotationY(a Real) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity(4)
	M.m[0][0], M.m[0][2] = c, s
	M.m[2][0], M.m[2][2] = -s, c
	return M
}

// RotationZ rotates about the Z axis.
func RotationZ(a Real) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity(4)
	M.m[0][0], M.m[0][1] = c, -s
	M.m[1][0], M.m[1][1] = s, c
	return M
}
