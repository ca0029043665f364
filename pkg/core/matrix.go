package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Matrix3 is a row-major 3x3 matrix, used for frame rotations
type Matrix3 [3][3]float64

// IdentityMatrix returns the 3x3 identity
func IdentityMatrix() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// RotationMatrix returns the rotation by angle radians about a principal
// axis: 0 for x, 1 for y, 2 for z.
func RotationMatrix(axis int, angle float64) Matrix3 {
	sin, cos := math.Sincos(angle)
	switch axis {
	case 0:
		return Matrix3{
			{1, 0, 0},
			{0, cos, -sin},
			{0, sin, cos},
		}
	case 1:
		return Matrix3{
			{cos, 0, sin},
			{0, 1, 0},
			{-sin, 0, cos},
		}
	default:
		return Matrix3{
			{cos, -sin, 0},
			{sin, cos, 0},
			{0, 0, 1},
		}
	}
}

// AxisAngleRotation returns the rotation by angle radians about an arbitrary
// axis. The axis must be non-zero.
func AxisAngleRotation(axis Vec3, angle float64) (Matrix3, error) {
	if axis.IsZero() || !axis.IsFinite() {
		return Matrix3{}, ErrDegenerateDirection
	}
	rot := r3.NewRotation(angle, r3.Vec{X: axis.X, Y: axis.Y, Z: axis.Z}).Mat()
	var m Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = rot.At(i, j)
		}
	}
	return m, nil
}

// AlignZ returns the rotation taking +z onto direction
func AlignZ(direction Vec3) (Matrix3, error) {
	if direction.IsZero() || !direction.IsFinite() {
		return Matrix3{}, ErrDegenerateDirection
	}
	d := direction.Normalize()
	axis := Vec3Z.Cross(d)
	if axis.Length() < 1e-12 {
		if d.Z > 0 {
			return IdentityMatrix(), nil
		}
		// anti-parallel: half turn about x
		return RotationMatrix(0, math.Pi), nil
	}
	angle := math.Acos(math.Max(-1, math.Min(1, d.Z)))
	return AxisAngleRotation(axis, angle)
}

// Mul returns m * other
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j]
		}
	}
	return out
}

// MulVec returns m * v
func (m Matrix3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the transpose, which is the inverse for rotations
func (m Matrix3) Transpose() Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}
