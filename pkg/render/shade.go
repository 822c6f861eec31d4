package render

import (
	"math"

	"github.com/taigrr/spinmesh/pkg/math3d"
	"github.com/taigrr/spinmesh/pkg/models"
)

// Shade limits. MinShade keeps faces turned away from the light visible.
const (
	MinShade = 0.1
	MaxShade = 1.0
)

// DefaultLight is the fixed directional light, normalize(0, 1, -1).
var DefaultLight = math3d.MustNormalize(math3d.V3(0, 1, -1))

// FaceNormal returns the unit normal of tri by the right-hand rule on
// (p1 - p0) × (p2 - p0). Degenerate triangles have no normal and yield
// math3d.ErrDomain.
func FaceNormal(tri models.Triangle) (math3d.Vec3, error) {
	e1 := tri.P[1].Sub(tri.P[0]).Vec3()
	e2 := tri.P[2].Sub(tri.P[0]).Vec3()
	return e1.Cross(e2).Normalize()
}

// Shade returns the diffuse intensity of a face with the given unit normal
// under a unit light direction, floored at MinShade.
func Shade(light, normal math3d.Vec3) float64 {
	return math.Min(MaxShade, math.Max(MinShade, light.Dot(normal)))
}
