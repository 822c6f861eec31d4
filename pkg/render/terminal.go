package render

import (
	"fmt"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the internal framebuffer to terminal cells and draws them on
// the screen.
// The framebuffer height should be 2x the terminal height.
func (r *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	// Each terminal row represents 2 framebuffer rows
	// We use ▀ (upper half block) with fg=top color and bg=bottom color

	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < r.Width; col++ {
			topColor := r.GetPixel(col, topY)
			botColor := r.GetPixel(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(topColor),
					Bg: rgbaToColor(botColor),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// TerminalRenderer presents a Canvas on a terminal using half-block cells,
// with an optional one-line status overlay on the top row.
type TerminalRenderer struct {
	term   *uv.Terminal
	width  int // Terminal columns
	height int // Terminal rows
	canvas *Canvas

	// Status, when set, is called after each frame and its text is written
	// over the first row.
	Status func() string
}

// NewTerminalRenderer creates a renderer for a width x height cell terminal
// and a framebuffer of width x 2*height pixels.
func NewTerminalRenderer(term *uv.Terminal, width, height int) *TerminalRenderer {
	return &TerminalRenderer{
		term:   term,
		width:  width,
		height: height,
		canvas: NewCanvas(NewFramebuffer(width, height*2)),
	}
}

// FramebufferSize returns the pixel size of the backing framebuffer.
func (t *TerminalRenderer) FramebufferSize() (int, int) {
	return t.canvas.FB.Width, t.canvas.FB.Height
}

// Canvas returns the canvas so callers can change colors or outlining.
func (t *TerminalRenderer) Canvas() *Canvas {
	return t.canvas
}

// Present paints tris and pushes the frame to the terminal.
func (t *TerminalRenderer) Present(tris []ScreenTriangle) error {
	if err := t.canvas.Present(tris); err != nil {
		return err
	}
	t.Render(t.canvas.FB)
	if t.Status != nil {
		t.drawStatus(t.Status())
	}
	return t.Flush()
}

// Render copies fb onto the terminal screen buffer.
func (t *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(t.term, uv.Rect(0, 0, t.width, t.height))
}

// Flush writes pending cell changes to the terminal.
func (t *TerminalRenderer) Flush() error {
	if err := t.term.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// drawStatus writes text in white on black across the top row.
func (t *TerminalRenderer) drawStatus(text string) {
	style := uv.Style{Fg: ColorWhite, Bg: ColorBlack}
	col := 0
	for _, r := range text {
		if col >= t.width {
			break
		}
		t.term.SetCell(col, 0, &uv.Cell{Content: string(r), Width: 1, Style: style})
		col++
	}
}

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// ParseRGB reads an "R,G,B" triple such as "30,30,40".
func ParseRGB(s string) (Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return RGB(r, g, b), nil
}
