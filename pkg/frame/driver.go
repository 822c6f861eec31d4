package frame

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/harmonica"
	"go.uber.org/zap"

	"github.com/taigrr/spinmesh/pkg/render"
)

// ErrQuit is returned by Tick once the quit key is active.
var ErrQuit = errors.New("frame: quit requested")

// Sink receives each frame's triangles, ordered back to front.
type Sink interface {
	Present(tris []render.ScreenTriangle) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(tris []render.ScreenTriangle) error

func (f SinkFunc) Present(tris []render.ScreenTriangle) error { return f(tris) }

// EventKind tells Handle what an Event means.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
	Close
	Resize
	Reload // The mesh source changed
)

// Event is one input from the presentation layer.
type Event struct {
	Kind          EventKind
	Key           Key // KeyDown, KeyUp
	Width, Height int // Resize
}

// ResizeFunc rebuilds the pipeline and sink for a new output size.
type ResizeFunc func(width, height int) (*render.Pipeline, Sink, error)

// ReloadFunc rebuilds the pipeline after the mesh source changed.
type ReloadFunc func() (*render.Pipeline, error)

// Config controls a Driver.
type Config struct {
	FPS         int     // Target rate; sets the rotation step
	StartZ      float64 // Initial camera distance
	Step        float64 // Camera distance change per tick while held
	AutoRelease int     // See Input.AutoRelease

	Logger   *zap.Logger // Defaults to a no-op logger
	OnResize ResizeFunc  // Nil ignores Resize events
	OnReload ReloadFunc  // Nil ignores Reload events
}

// Driver owns the frame state and runs one pipeline pass per tick.
// It is not safe for concurrent use; Run serializes ticks and events.
type Driver struct {
	pipeline *render.Pipeline
	sink     Sink
	cfg      Config
	log      *zap.Logger

	state State
	delta float64 // Rotation added per tick
	done  bool

	stats      render.FrameStats
	statFrames int
}

// NewDriver creates a driver rendering p into sink.
func NewDriver(p *render.Pipeline, sink Sink, cfg Config) (*Driver, error) {
	if p == nil {
		return nil, errors.New("frame: nil pipeline")
	}
	if sink == nil {
		return nil, errors.New("frame: nil sink")
	}
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("frame: fps must be positive, got %d", cfg.FPS)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	d := &Driver{
		pipeline: p,
		sink:     sink,
		cfg:      cfg,
		log:      log,
		// Rotation follows the target rate, not wall time, so a slow
		// frame never makes the mesh jump.
		delta: harmonica.FPS(cfg.FPS),
	}
	d.state.CameraZ = cfg.StartZ
	d.state.Input.AutoRelease = cfg.AutoRelease
	return d, nil
}

// State returns a copy of the current frame state.
func (d *Driver) State() State {
	return d.state
}

// Done reports whether a close event or the quit key ended the session.
func (d *Driver) Done() bool {
	return d.done
}

// Handle applies one event. Events between ticks accumulate in the key
// states and take effect on the next Tick.
func (d *Driver) Handle(ev Event) error {
	switch ev.Kind {
	case KeyDown:
		d.state.Input.Press(ev.Key)
	case KeyUp:
		d.state.Input.Release(ev.Key)
	case Close:
		d.done = true
	case Resize:
		if d.cfg.OnResize == nil {
			return nil
		}
		p, sink, err := d.cfg.OnResize(ev.Width, ev.Height)
		if err != nil {
			return fmt.Errorf("resize to %dx%d: %w", ev.Width, ev.Height, err)
		}
		d.pipeline, d.sink = p, sink
		d.log.Debug("resized", zap.Int("width", ev.Width), zap.Int("height", ev.Height))
	case Reload:
		if d.cfg.OnReload == nil {
			return nil
		}
		// A half-written or broken file keeps the current mesh on screen.
		p, err := d.cfg.OnReload()
		if err != nil {
			d.log.Warn("reload failed, keeping current mesh", zap.Error(err))
			return nil
		}
		d.pipeline = p
		d.log.Info("mesh reloaded", zap.Int("triangles", p.Mesh().TriangleCount()))
	}
	return nil
}

// Tick advances one frame: camera keys, quit check, key aging, rotation,
// pipeline and sink. It returns ErrQuit without drawing once the quit key
// is active or the session is closed.
func (d *Driver) Tick() (render.FrameStats, error) {
	if d.done {
		return render.FrameStats{}, ErrQuit
	}
	in := &d.state.Input
	if in.Active(KeyCloser) {
		d.state.CameraZ -= d.cfg.Step
	}
	if in.Active(KeyFarther) {
		d.state.CameraZ += d.cfg.Step
	}
	if in.Active(KeyQuit) {
		d.done = true
		return render.FrameStats{}, ErrQuit
	}
	in.Step()

	d.state.Theta += d.delta
	world := render.WorldMatrix(d.state.Theta, d.state.CameraZ)
	tris, stats := d.pipeline.Render(world)
	if err := d.sink.Present(tris); err != nil {
		return stats, fmt.Errorf("present frame %d: %w", d.state.Frames, err)
	}
	d.state.Frames++
	d.record(stats)
	return stats, nil
}

// record logs averaged frame stats roughly once per second of frames.
func (d *Driver) record(s render.FrameStats) {
	d.stats.Triangles += s.Triangles
	d.stats.Culled += s.Culled
	d.stats.Dropped += s.Dropped
	d.stats.Drawn += s.Drawn
	d.statFrames++
	if d.statFrames < d.cfg.FPS {
		return
	}
	n := d.statFrames
	d.log.Debug("frame stats",
		zap.Int("frames", d.state.Frames),
		zap.Int("triangles", d.stats.Triangles/n),
		zap.Int("culled", d.stats.Culled/n),
		zap.Int("dropped", d.stats.Dropped/n),
		zap.Int("drawn", d.stats.Drawn/n),
		zap.Float64("theta", d.state.Theta),
		zap.Float64("camera_z", d.state.CameraZ),
	)
	d.stats, d.statFrames = render.FrameStats{}, 0
}

// Run ticks on every value from ticks and applies events in between, until
// the quit key, a Close event, ctx cancellation or a closed tick channel.
// Quit, close and tick exhaustion return nil; cancellation returns ctx.Err().
// A nil events channel is never ready.
func (d *Driver) Run(ctx context.Context, ticks <-chan time.Time, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			d.log.Info("session ended", zap.String("reason", "cancelled"), zap.Int("frames", d.state.Frames))
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if err := d.Handle(ev); err != nil {
				return err
			}
			if d.done {
				d.log.Info("session ended", zap.String("reason", "closed"), zap.Int("frames", d.state.Frames))
				return nil
			}

		case _, ok := <-ticks:
			if !ok {
				d.log.Info("session ended", zap.String("reason", "ticks exhausted"), zap.Int("frames", d.state.Frames))
				return nil
			}
			if _, err := d.Tick(); err != nil {
				if errors.Is(err, ErrQuit) {
					d.log.Info("session ended", zap.String("reason", "quit key"), zap.Int("frames", d.state.Frames))
					return nil
				}
				return err
			}
		}
	}
}

// Ticks returns a closed channel holding n ticks, for rendering a fixed
// number of frames without a clock.
func Ticks(n int) <-chan time.Time {
	ch := make(chan time.Time, max(n, 0))
	var t time.Time
	for range n {
		ch <- t
	}
	close(ch)
	return ch
}
