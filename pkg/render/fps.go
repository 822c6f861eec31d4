package render

import (
	"fmt"
	"time"
)

// FPSCounter measures the presented frame rate over one-second windows.
type FPSCounter struct {
	fps    float64
	frames int
	since  time.Time
	now    func() time.Time
}

// NewFPSCounter creates a counter whose first window starts now.
func NewFPSCounter() *FPSCounter {
	return newFPSCounter(time.Now)
}

func newFPSCounter(now func() time.Time) *FPSCounter {
	return &FPSCounter{since: now(), now: now}
}

// Frame records one presented frame (call once per frame).
func (c *FPSCounter) Frame() {
	c.frames++
	elapsed := c.now().Sub(c.since)
	if elapsed >= time.Second {
		c.fps = float64(c.frames) / elapsed.Seconds()
		c.frames = 0
		c.since = c.now()
	}
}

// FPS returns the rate measured over the last complete window.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}

// String formats the readout as "Fps: 60".
func (c *FPSCounter) String() string {
	return fmt.Sprintf("Fps: %.0f", c.fps)
}
