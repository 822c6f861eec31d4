package frame

import "fmt"

// State is everything that survives from one frame to the next.
type State struct {
	Theta   float64 // Accumulated rotation in radians
	CameraZ float64 // Distance the mesh is pushed along +z
	Input   Input
	Frames  int // Frames rendered so far
}

func (s State) String() string {
	return fmt.Sprintf("frame %d theta=%.3f z=%.2f", s.Frames, s.Theta, s.CameraZ)
}
