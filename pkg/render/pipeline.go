// Package render turns a mesh into ordered, shaded screen triangles and
// provides the framebuffer, terminal and image targets that draw them.
package render

import (
	"fmt"

	"github.com/taigrr/spinmesh/pkg/math3d"
	"github.com/taigrr/spinmesh/pkg/models"
)

// Options configure a Pipeline. The projection is derived from them once.
type Options struct {
	Width, Height int     // Output size in pixels
	FOV           float64 // Vertical field of view in degrees
	Near, Far     float64 // Depth range

	Camera Camera      // Zero value means NewCamera()
	Light  math3d.Vec3 // Unit light direction; zero means DefaultLight
}

// DefaultOptions returns the classic 90° view for the given size.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:  width,
		Height: height,
		FOV:    90,
		Near:   0.1,
		Far:    1000,
		Camera: NewCamera(),
		Light:  DefaultLight,
	}
}

// FrameStats counts what happened to each mesh triangle in one frame.
type FrameStats struct {
	Triangles int // Mesh triangles processed
	Culled    int // Facing away from the camera
	Dropped   int // Degenerate normal or W = 0 during the divide
	Drawn     int // Emitted to the rasterizer
}

// Pipeline holds the per-session state of the geometry stages: the mesh,
// the fixed projection, camera, light and viewport.
type Pipeline struct {
	mesh       *models.Mesh
	projection math3d.Mat4
	camera     Camera
	light      math3d.Vec3
	viewport   Viewport

	out []ScreenTriangle
}

// NewPipeline validates opts and builds the projection for mesh.
// The mesh is shared, never copied or modified.
func NewPipeline(mesh *models.Mesh, opts Options) (*Pipeline, error) {
	if mesh == nil {
		return nil, fmt.Errorf("%w: nil mesh", math3d.ErrConfiguration)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: viewport %dx%d", math3d.ErrConfiguration, opts.Width, opts.Height)
	}

	aspect := float64(opts.Height) / float64(opts.Width)
	proj, err := math3d.Projection(opts.FOV, aspect, opts.Near, opts.Far)
	if err != nil {
		return nil, fmt.Errorf("build projection: %w", err)
	}

	if opts.Camera == (Camera{}) {
		opts.Camera = NewCamera()
	}
	if opts.Light == (math3d.Vec3{}) {
		opts.Light = DefaultLight
	}

	return &Pipeline{
		mesh:       mesh,
		projection: proj,
		camera:     opts.Camera,
		light:      opts.Light,
		viewport:   Viewport{Width: opts.Width, Height: opts.Height},
		out:        make([]ScreenTriangle, 0, mesh.TriangleCount()),
	}, nil
}

// Projection returns the session projection matrix.
func (p *Pipeline) Projection() math3d.Mat4 {
	return p.projection
}

// Viewport returns the output size.
func (p *Pipeline) Viewport() Viewport {
	return p.viewport
}

// Mesh returns the shared mesh.
func (p *Pipeline) Mesh() *models.Mesh {
	return p.mesh
}

// WorldMatrix composes the spin for rotation angle theta (radians) with a
// push along z: rotate about Z by theta/2, then about X by theta, then
// translate by (0, 0, cameraZ).
func WorldMatrix(theta, cameraZ float64) math3d.Mat4 {
	return math3d.RotateZ(theta * 0.5).
		Mul(math3d.RotateX(theta)).
		Mul(math3d.Translate(0, 0, cameraZ))
}

// Render runs every mesh triangle through world transform, back-face test,
// shading, projection and screen mapping, then sorts the survivors back to
// front.
//
// The returned slice is reused by the next call.
func (p *Pipeline) Render(world math3d.Mat4) ([]ScreenTriangle, FrameStats) {
	p.out = p.out[:0]
	stats := FrameStats{Triangles: len(p.mesh.Triangles)}

	for _, tri := range p.mesh.Triangles {
		st, ok, err := p.process(tri, world)
		switch {
		case err != nil:
			stats.Dropped++
		case !ok:
			stats.Culled++
		default:
			p.out = append(p.out, st)
		}
	}

	SortByDepth(p.out)
	stats.Drawn = len(p.out)
	return p.out, stats
}

// process handles one triangle. It reports ok = false for back faces and an
// error when the triangle has to be dropped.
func (p *Pipeline) process(tri models.Triangle, world math3d.Mat4) (ScreenTriangle, bool, error) {
	worldTri := tri.Transform(world)

	// The facing test must run on world coordinates; projection would
	// distort the normal.
	normal, err := FaceNormal(worldTri)
	if err != nil {
		return ScreenTriangle{}, false, err
	}
	if !p.camera.Faces(worldTri.P[0], normal) {
		return ScreenTriangle{}, false, nil
	}
	worldTri.Shade = Shade(p.light, normal)

	st, err := p.viewport.Map(worldTri.Transform(p.projection))
	if err != nil {
		return ScreenTriangle{}, false, err
	}
	return st, true, nil
}

// ProjectPoint takes one object-space point through world, projection and
// screen mapping.
func (p *Pipeline) ProjectPoint(world math3d.Mat4, v math3d.Vec4) (math3d.Vec3, error) {
	ndc, err := p.projection.MulVec4(world.MulVec4(v)).PerspectiveDivide()
	if err != nil {
		return math3d.Vec3{}, err
	}
	return p.viewport.ToScreen(ndc), nil
}
