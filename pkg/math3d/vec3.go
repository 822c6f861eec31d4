// Package math3d provides the vector and matrix kernel for spinmesh.
package math3d

import (
	"fmt"
	"math"
)

// Vec3 represents a 3D direction or point without a homogeneous component.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s.
// Dividing by zero is a domain error.
func (a Vec3) Div(s float64) (Vec3, error) {
	if s == 0 {
		return Vec3{}, errDivideByZero
	}
	return Vec3{a.X / s, a.Y / s, a.Z / s}, nil
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.Dot(a))
}

// Normalize returns the unit vector in the same direction.
// A zero-length vector has no direction and yields ErrDomain.
func (a Vec3) Normalize() (Vec3, error) {
	l := a.Len()
	if l == 0 || math.IsNaN(l) {
		return Vec3{}, errZeroLength
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}, nil
}

// MustNormalize is Normalize for constant inputs known to be non-zero.
// It panics on a zero vector.
func MustNormalize(a Vec3) Vec3 {
	n, err := a.Normalize()
	if err != nil {
		panic(err)
	}
	return n
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
		math.Max(a.Z, b.Z),
	}
}

// Point returns v as a homogeneous point with W = 1.
func (a Vec3) Point() Vec4 {
	return Vec4{a.X, a.Y, a.Z, 1}
}

// ApproxEqual reports whether every component of a and b differs by at most eps.
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

func (a Vec3) String() string {
	return fmt.Sprintf("(%.3g, %.3g, %.3g)", a.X, a.Y, a.Z)
}
