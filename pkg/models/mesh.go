// Package models provides mesh loading and representation for spinmesh.
package models

import (
	"github.com/taigrr/spinmesh/pkg/math3d"
)

// Triangle is three homogeneous vertices plus the shade assigned by the
// lighting stage. Vertex order defines the face normal by the right-hand
// rule on (P[1]-P[0]) × (P[2]-P[0]).
type Triangle struct {
	P     [3]math3d.Vec4
	Shade float64 // 0 until shaded, then in [0.1, 1]
}

// Tri creates an unshaded triangle from three points.
func Tri(a, b, c math3d.Vec3) Triangle {
	return Triangle{P: [3]math3d.Vec4{a.Point(), b.Point(), c.Point()}}
}

// Transform returns the triangle with every vertex multiplied by m.
// The shade is carried over unchanged.
func (t Triangle) Transform(m math3d.Mat4) Triangle {
	return Triangle{
		P: [3]math3d.Vec4{
			m.MulVec4(t.P[0]),
			m.MulVec4(t.P[1]),
			m.MulVec4(t.P[2]),
		},
		Shade: t.Shade,
	}
}

// Mesh is an ordered list of object-space triangles.
// It is filled once by a loader and treated as read-only afterwards.
type Mesh struct {
	Name      string
	Triangles []Triangle

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Triangles: make([]Triangle, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Triangles) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Zero3(), math3d.Zero3()
		return
	}

	m.BoundsMin = m.Triangles[0].P[0].Vec3()
	m.BoundsMax = m.BoundsMin

	for _, t := range m.Triangles {
		for _, p := range t.P {
			m.BoundsMin = m.BoundsMin.Min(p.Vec3())
			m.BoundsMax = m.BoundsMax.Max(p.Vec3())
		}
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Fit centers the mesh on the origin and scales it so its largest
// dimension spans two units. Call it before the mesh is shared.
func (m *Mesh) Fit() {
	m.CalculateBounds()
	size := m.Size()
	maxDim := max(size.X, size.Y, size.Z)
	if maxDim <= 0 {
		return
	}

	c := m.Center()
	s := 2.0 / maxDim
	transform := math3d.Translate(-c.X, -c.Y, -c.Z).Mul(scale(s))
	for i := range m.Triangles {
		m.Triangles[i] = m.Triangles[i].Transform(transform)
	}
	m.CalculateBounds()
}

// scale is a uniform scale matrix. It stays private so the world pipeline
// only ever composes rotations and translations.
func scale(s float64) math3d.Mat4 {
	m := math3d.Identity()
	m[0][0], m[1][1], m[2][2] = s, s, s
	return m
}
