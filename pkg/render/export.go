package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
)

// grayPalette covers every shade a white-based canvas produces plus the
// background and outline colors.
func grayPalette(extra ...Color) color.Palette {
	palette := make(color.Palette, 0, 256)
	seen := make(map[Color]bool)
	for _, c := range extra {
		if !seen[c] {
			seen[c] = true
			palette = append(palette, c)
		}
	}
	for i := 0; len(palette) < 256 && i < 256; i++ {
		g := uint8(i)
		c := RGB(g, g, g)
		if !seen[c] {
			seen[c] = true
			palette = append(palette, c)
		}
	}
	return palette
}

// GIFRecorder collects framebuffer snapshots into an animated GIF.
type GIFRecorder struct {
	canvas  *Canvas
	palette color.Palette
	delay   int // Centiseconds per frame
	anim    gif.GIF
}

// NewGIFRecorder records frames painted by canvas at the given rate.
func NewGIFRecorder(canvas *Canvas, fps int) *GIFRecorder {
	delay := 100 / max(fps, 1) // Convert fps to centiseconds delay
	if delay < 1 {
		delay = 1
	}
	return &GIFRecorder{
		canvas:  canvas,
		palette: grayPalette(canvas.Background, canvas.OutlineCol),
		delay:   delay,
		anim:    gif.GIF{LoopCount: 0}, // 0 means loop forever
	}
}

// Present paints tris and appends the result as a new frame.
func (g *GIFRecorder) Present(tris []ScreenTriangle) error {
	if err := g.canvas.Present(tris); err != nil {
		return err
	}
	fb := g.canvas.FB
	bounds := image.Rect(0, 0, fb.Width, fb.Height)
	paletted := image.NewPaletted(bounds, g.palette)
	for y := range fb.Height {
		for x := range fb.Width {
			paletted.Set(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	g.anim.Image = append(g.anim.Image, paletted)
	g.anim.Delay = append(g.anim.Delay, g.delay)
	return nil
}

// Frames returns the number of recorded frames.
func (g *GIFRecorder) Frames() int {
	return len(g.anim.Image)
}

// Encode writes the animation to w.
func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.anim.Image) == 0 {
		return fmt.Errorf("encode gif: no frames recorded")
	}
	if err := gif.EncodeAll(w, &g.anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

// Save writes the animation to path.
func (g *GIFRecorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gif: %w", err)
	}
	defer f.Close()
	if err := g.Encode(f); err != nil {
		return err
	}
	return f.Close()
}
