package render

// Canvas paints an ordered triangle list into a Framebuffer. Triangles are
// filled in the order given, so back-to-front input gives painter's
// algorithm occlusion.
type Canvas struct {
	FB         *Framebuffer
	Background Color
	Base       Color // Fully lit face color
	Outline    bool  // Stroke every triangle after filling it
	OutlineCol Color
}

// NewCanvas creates a canvas with a black background, white faces and
// black outlines (when enabled).
func NewCanvas(fb *Framebuffer) *Canvas {
	return &Canvas{
		FB:         fb,
		Background: ColorBlack,
		Base:       ColorWhite,
		OutlineCol: ColorBlack,
	}
}

// Present clears the framebuffer and draws tris in order.
func (c *Canvas) Present(tris []ScreenTriangle) error {
	c.FB.Clear(c.Background)
	for _, t := range tris {
		c.FB.FillTriangle(t, ShadeTint(c.Base, t.Shade))
		if c.Outline {
			c.FB.DrawTriangleOutline(t, c.OutlineCol)
		}
	}
	return nil
}
