package render

import (
	"github.com/taigrr/spinmesh/pkg/math3d"
	"github.com/taigrr/spinmesh/pkg/models"
)

// ScreenTriangle is a shaded triangle in pixel coordinates. Z keeps the
// normalized depth used for ordering; W has been divided out.
type ScreenTriangle struct {
	P     [3]math3d.Vec3
	Shade float64
}

// Depth returns the mean z of the three vertices.
func (t ScreenTriangle) Depth() float64 {
	return (t.P[0].Z + t.P[1].Z + t.P[2].Z) / 3
}

// Viewport maps normalized device coordinates to a Width x Height pixel
// grid with the origin at the top left.
type Viewport struct {
	Width  int
	Height int
}

// Map divides each clip-space vertex by W and scales it to the viewport.
// A vertex with W = 0 makes the whole triangle unmappable (math3d.ErrDomain).
func (v Viewport) Map(clip models.Triangle) (ScreenTriangle, error) {
	st := ScreenTriangle{Shade: clip.Shade}
	for i, p := range clip.P {
		ndc, err := p.PerspectiveDivide()
		if err != nil {
			return ScreenTriangle{}, err
		}
		st.P[i] = v.ToScreen(ndc)
	}
	return st, nil
}

// ToScreen maps one normalized device coordinate to pixels.
// The projection's x and y run opposite to screen space, so both are
// flipped before [-1, 1] is shifted to [0, 2] and scaled by half the size.
func (v Viewport) ToScreen(ndc math3d.Vec3) math3d.Vec3 {
	s := math3d.V3(-ndc.X, -ndc.Y, ndc.Z).Add(math3d.V3(1, 1, 0))
	s.X *= 0.5 * float64(v.Width)
	s.Y *= 0.5 * float64(v.Height)
	return s
}
