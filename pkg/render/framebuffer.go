package render

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
)

// Framebuffer holds the row-major pixels one frame is painted into. In a
// terminal each cell shows two vertically stacked pixels, so Height is twice
// the row count there.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Color
}

// NewFramebuffer allocates a width x height framebuffer of transparent black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Clear paints every pixel c.
func (fb *Framebuffer) Clear(c Color) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

func (fb *Framebuffer) inside(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// SetPixel writes c at (x, y). Writes outside the buffer are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if fb.inside(x, y) {
		fb.Pixels[y*fb.Width+x] = c
	}
}

// GetPixel reads (x, y), or transparent black outside the buffer.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if !fb.inside(x, y) {
		return Color{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// pixelBounds clips the bounding box of t to the buffer and returns the
// inclusive pixel range to scan. It reports false when the box misses the
// buffer. Clipping happens in float64, so projected coordinates far beyond
// the int range never reach a conversion.
func (fb *Framebuffer) pixelBounds(t ScreenTriangle) (x0, y0, x1, y1 int, ok bool) {
	p0, p1, p2 := t.P[0], t.P[1], t.P[2]
	minX := math.Floor(min3(p0.X, p1.X, p2.X))
	maxX := math.Ceil(max3(p0.X, p1.X, p2.X))
	minY := math.Floor(min3(p0.Y, p1.Y, p2.Y))
	maxY := math.Ceil(max3(p0.Y, p1.Y, p2.Y))

	w, h := float64(fb.Width-1), float64(fb.Height-1)
	if fb.Width <= 0 || fb.Height <= 0 || maxX < 0 || maxY < 0 || minX > w || minY > h {
		return 0, 0, 0, 0, false
	}
	return int(math.Max(0, minX)), int(math.Max(0, minY)),
		int(math.Min(w, maxX)), int(math.Min(h, maxY)), true
}

// DrawLine draws from (x0, y0) to (x1, y1) with Bresenham's algorithm.
// Lines spanning more than a few buffer sizes are skipped.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	if dx-dy > 4*(fb.Width+fb.Height) {
		return
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	for e := dx + dy; ; {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage copies the pixels into an image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, c := range fb.Pixels {
		img.Pix[4*i], img.Pix[4*i+1], img.Pix[4*i+2], img.Pix[4*i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

// SavePNG writes the current frame to path as a PNG.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, fb.ToImage()); err != nil {
		return fmt.Errorf("encode snapshot %s: %w", path, err)
	}
	return f.Close()
}
