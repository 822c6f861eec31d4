package render

import (
	"math"

	"github.com/taigrr/spinmesh/pkg/math3d"
)

// edgeCoeffs returns A, B, C for the edge function A*x + B*y + C of the
// directed edge (x0, y0) -> (x1, y1). Positive = left of edge.
func edgeCoeffs(x0, y0, x1, y1 float64) (A, B, C float64) {
	A = y0 - y1
	B = x1 - x0
	C = x0*y1 - x1*y0
	return
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}

// FillTriangle fills the screen triangle with a solid color. Either winding
// is accepted. Pixel centers on an edge belong to the triangle, there is no
// depth test, and later calls paint over earlier ones.
func (fb *Framebuffer) FillTriangle(t ScreenTriangle, c Color) {
	p0, p1, p2 := t.P[0], t.P[1], t.P[2]
	for _, p := range t.P {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return
		}
	}

	// Signed doubled area; zero means a line or point with nothing to fill
	area := (p1.X-p0.X)*(p2.Y-p0.Y) - (p1.Y-p0.Y)*(p2.X-p0.X)
	if area == 0 {
		return
	}
	if area < 0 {
		p1, p2 = p2, p1
	}

	minX, minY, maxX, maxY, ok := fb.pixelBounds(t)
	if !ok {
		return
	}

	A0, B0, C0 := edgeCoeffs(p1.X, p1.Y, p2.X, p2.Y)
	A1, B1, C1 := edgeCoeffs(p2.X, p2.Y, p0.X, p0.Y)
	A2, B2, C2 := edgeCoeffs(p0.X, p0.Y, p1.X, p1.Y)

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		row := y * fb.Width
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			if A0*px+B0*py+C0 < 0 || A1*px+B1*py+C1 < 0 || A2*px+B2*py+C2 < 0 {
				continue
			}
			fb.Pixels[row+x] = c
		}
	}
}

// DrawTriangleOutline strokes the three edges of t.
func (fb *Framebuffer) DrawTriangleOutline(t ScreenTriangle, c Color) {
	for i := range 3 {
		a, b := t.P[i], t.P[(i+1)%3]
		if !onCanvas(a) || !onCanvas(b) {
			continue
		}
		fb.DrawLine(int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(b.X)), int(math.Round(b.Y)), c)
	}
}

// onCanvas reports whether p converts safely to int pixel coordinates.
func onCanvas(p math3d.Vec3) bool {
	const limit = 1 << 24
	return math.Abs(p.X) < limit && math.Abs(p.Y) < limit
}

// ShadeTint scales base by an intensity in [0, 1].
func ShadeTint(base Color, shade float64) Color {
	s := math.Max(0, math.Min(1, shade))
	return RGB(
		uint8(math.Round(float64(base.R)*s)),
		uint8(math.Round(float64(base.G)*s)),
		uint8(math.Round(float64(base.B)*s)),
	)
}
