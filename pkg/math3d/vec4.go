package math3d

import "math"

// Vec4 is a homogeneous 3D point. W is 1 for points in object and world
// space and carries the view depth after projection.
//
// Arithmetic works on X, Y and Z only and returns fresh points with W = 1.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// Point creates a homogeneous point with W = 1.
func Point(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 1}
}

// Vec3 returns the Vec3 portion (ignoring W).
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// PerspectiveDivide returns the point with X, Y and Z divided by W.
// W = 0 is a domain error.
func (v Vec4) PerspectiveDivide() (Vec3, error) {
	if v.W == 0 {
		return Vec3{}, errZeroW
	}
	return Vec3{v.X / v.W, v.Y / v.W, v.Z / v.W}, nil
}

// Add returns the xyz sum.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, 1}
}

// Sub returns the xyz difference.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, 1}
}

// Scale returns the xyz scalar product.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, 1}
}

// Div returns the xyz scalar division.
func (v Vec4) Div(s float64) (Vec4, error) {
	if s == 0 {
		return Vec4{}, errDivideByZero
	}
	return Vec4{v.X / s, v.Y / s, v.Z / s, 1}, nil
}

// Dot returns the xyz dot product.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Vec4) Dot(b Vec4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the xyz cross product.
//
//nolint:st1016 // a×b naming convention is clearer for vector operations
func (a Vec4) Cross(b Vec4) Vec4 {
	c := a.Vec3().Cross(b.Vec3())
	return Vec4{c.X, c.Y, c.Z, 1}
}

// Len returns the xyz length.
func (v Vec4) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the xyz unit vector.
func (v Vec4) Normalize() (Vec4, error) {
	n, err := v.Vec3().Normalize()
	if err != nil {
		return Vec4{}, err
	}
	return n.Point(), nil
}
