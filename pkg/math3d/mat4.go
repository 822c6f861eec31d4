package math3d

import (
	"fmt"
	"math"
)

// Mat4 is a 4x4 matrix indexed as m[row][col].
//
// Vectors are rows and multiply from the left (v' = v * M), so the
// translation lives in the bottom row and W picks up column 3:
//
//	| Xx Xy Xz 0 |
//	| Yx Yy Yz 0 |
//	| Zx Zy Zz 0 |
//	| Tx Ty Tz 1 |
//
// The zero value is not a useful transform. Build matrices with the
// constructors in this file and combine them with Mul.
type Mat4 [4][4]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate creates a translation matrix.
func Translate(x, y, z float64) Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{x, y, z, 1},
	}
}

// RotateX creates a rotation matrix around the X axis.
func RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateY creates a rotation matrix around the Y axis.
func RotateY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateZ creates a rotation matrix around the Z axis.
func RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Projection creates a perspective projection matrix.
// fovDegrees is the vertical field of view, aspect is height/width, and
// near/far are the depth range mapped to [0, 1].
//
// After projection W holds the view-space z, ready for PerspectiveDivide.
func Projection(fovDegrees, aspect, near, far float64) (Mat4, error) {
	for _, v := range [...]float64{fovDegrees, aspect, near, far} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Mat4{}, fmt.Errorf("%w: projection parameter %v is not finite", ErrConfiguration, v)
		}
	}
	if fovDegrees <= 0 || fovDegrees >= 180 {
		return Mat4{}, fmt.Errorf("%w: field of view %v must be in (0, 180) degrees", ErrConfiguration, fovDegrees)
	}
	if aspect <= 0 {
		return Mat4{}, fmt.Errorf("%w: aspect ratio %v must be positive", ErrConfiguration, aspect)
	}
	if far == near {
		return Mat4{}, fmt.Errorf("%w: near and far planes are both %v", ErrConfiguration, near)
	}

	f := 1 / math.Tan(fovDegrees*0.5/180*math.Pi)
	depth := far - near

	return Mat4{
		{aspect * f, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, far / depth, 1},
		{0, 0, -far * near / depth, 0},
	}, nil
}

// Mul multiplies two matrices: a * b.
// With row vectors, v * (a * b) applies a first, then b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for row := range 4 {
		for col := range 4 {
			m[row][col] = a[row][0]*b[0][col] +
				a[row][1]*b[1][col] +
				a[row][2]*b[2][col] +
				a[row][3]*b[3][col]
		}
	}
	return m
}

// MulVec4 transforms a homogeneous vector: v * m.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// ApproxEqual reports whether every entry of m and o differs by at most eps.
func (m Mat4) ApproxEqual(o Mat4, eps float64) bool {
	for row := range 4 {
		for col := range 4 {
			if math.Abs(m[row][col]-o[row][col]) > eps {
				return false
			}
		}
	}
	return true
}
