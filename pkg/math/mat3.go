package math

import "math"

// Mat3 represents a row-major 3x3 matrix. Scene transforms store world
// rotations as Mat3, with columns holding the local axes expressed in
// world coordinates.
type Mat3 struct {
	M [3][3]float64
}

// Identity returns the identity matrix
func Identity() Mat3 {
	return Mat3{M: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// NewMat3 creates a matrix from three rows
func NewMat3(r0, r1, r2 Vec3) Mat3 {
	return Mat3{M: [3][3]float64{
		{r0.X, r0.Y, r0.Z},
		{r1.X, r1.Y, r1.Z},
		{r2.X, r2.Y, r2.Z},
	}}
}

// FromAxisAngle returns the rotation matrix for a rotation of angle
// radians about the given axis (Rodrigues' formula)
func FromAxisAngle(axis Vec3, angle float64) Mat3 {
	u := axis.Normalize()
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c

	return Mat3{M: [3][3]float64{
		{c + u.X*u.X*t, u.X*u.Y*t - u.Z*s, u.X*u.Z*t + u.Y*s},
		{u.Y*u.X*t + u.Z*s, c + u.Y*u.Y*t, u.Y*u.Z*t - u.X*s},
		{u.Z*u.X*t - u.Y*s, u.Z*u.Y*t + u.X*s, c + u.Z*u.Z*t},
	}}
}

// MulVec returns M * v
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// TMulVec returns Mᵀ * v, the inverse rotation for orthonormal M
func (m Mat3) TMulVec(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*v.X + m.M[1][0]*v.Y + m.M[2][0]*v.Z,
		Y: m.M[0][1]*v.X + m.M[1][1]*v.Y + m.M[2][1]*v.Z,
		Z: m.M[0][2]*v.X + m.M[1][2]*v.Y + m.M[2][2]*v.Z,
	}
}

// Transpose returns the transposed matrix
func (m Mat3) Transpose() Mat3 {
	return Mat3{M: [3][3]float64{
		{m.M[0][0], m.M[1][0], m.M[2][0]},
		{m.M[0][1], m.M[1][1], m.M[2][1]},
		{m.M[0][2], m.M[1][2], m.M[2][2]},
	}}
}

// MulMat returns the matrix product m * other
func (m Mat3) MulMat(other Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.M[i][j] = m.M[i][0]*other.M[0][j] + m.M[i][1]*other.M[1][j] + m.M[i][2]*other.M[2][j]
		}
	}
	return out
}
