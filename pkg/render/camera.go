package render

import (
	"github.com/taigrr/spinmesh/pkg/math3d"
)

// Camera is the single viewer of the scene.
//
// Only Position takes part in the visibility test today. Forward records
// where the camera looks (+Z for the projection built by math3d.Projection)
// so callers can reason about the view without assuming it.
type Camera struct {
	Position math3d.Vec3
	Forward  math3d.Vec3
}

// NewCamera returns a camera at the origin looking down +Z.
func NewCamera() Camera {
	return Camera{
		Position: math3d.Zero3(),
		Forward:  math3d.V3(0, 0, 1),
	}
}

// Ray returns the vector from the camera to p.
func (c Camera) Ray(p math3d.Vec4) math3d.Vec3 {
	return p.Vec3().Sub(c.Position)
}

// Faces reports whether a surface through p with the given normal faces the
// camera. Surfaces seen edge-on are treated as facing away.
func (c Camera) Faces(p math3d.Vec4, normal math3d.Vec3) bool {
	return normal.Dot(c.Ray(p)) < 0
}
