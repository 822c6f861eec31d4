package frame

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/taigrr/spinmesh/pkg/math3d"
	"github.com/taigrr/spinmesh/pkg/models"
	"github.com/taigrr/spinmesh/pkg/render"
)

type countingSink struct {
	frames int
	err    error
}

func (s *countingSink) Present([]render.ScreenTriangle) error {
	if s.err != nil {
		return s.err
	}
	s.frames++
	return nil
}

func testPipeline(t *testing.T) *render.Pipeline {
	t.Helper()
	mesh := models.NewMesh("tri")
	mesh.Triangles = append(mesh.Triangles,
		models.Tri(math3d.V3(0, 0, 0), math3d.V3(0, 1, 0), math3d.V3(1, 0, 0)))
	p, err := render.NewPipeline(mesh, render.DefaultOptions(40, 20))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	return p
}

func testConfig() Config {
	return Config{FPS: 60, StartZ: 3, Step: 0.05}
}

func newTestDriver(t *testing.T, sink Sink, cfg Config) *Driver {
	t.Helper()
	d, err := NewDriver(testPipeline(t), sink, cfg)
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	return d
}

func TestNewDriverValidates(t *testing.T) {
	p := testPipeline(t)
	if _, err := NewDriver(nil, &countingSink{}, testConfig()); err == nil {
		t.Error("expected error for nil pipeline")
	}
	if _, err := NewDriver(p, nil, testConfig()); err == nil {
		t.Error("expected error for nil sink")
	}
	if _, err := NewDriver(p, &countingSink{}, Config{}); err == nil {
		t.Error("expected error for zero fps")
	}
}

func TestTickAdvancesRotation(t *testing.T) {
	sink := &countingSink{}
	d := newTestDriver(t, sink, testConfig())

	for range 60 {
		if _, err := d.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}

	s := d.State()
	if math.Abs(s.Theta-1) > 1e-6 {
		t.Errorf("theta after 60 ticks at 60 fps = %v, want 1", s.Theta)
	}
	if s.CameraZ != 3 {
		t.Errorf("camera z moved without input: %v", s.CameraZ)
	}
	if sink.frames != 60 || s.Frames != 60 {
		t.Errorf("presented %d frames (state %d), want 60", sink.frames, s.Frames)
	}
}

func TestCameraKeys(t *testing.T) {
	tests := []struct {
		name  string
		key   Key
		ticks int
		want  float64
	}{
		{"closer", KeyCloser, 10, 2.5},
		{"farther", KeyFarther, 4, 3.2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDriver(t, &countingSink{}, testConfig())
			_ = d.Handle(Event{Kind: KeyDown, Key: tc.key})
			for range tc.ticks {
				if _, err := d.Tick(); err != nil {
					t.Fatalf("Tick: %v", err)
				}
			}
			if got := d.State().CameraZ; math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("camera z = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCameraStopsOnKeyUp(t *testing.T) {
	tests := []struct {
		name      string
		heldTicks int
		want      float64
	}{
		// Two ticks of movement, none after the key comes up.
		{"after hold", 2, 2.9},
		// Released before any tick saw it, so it still counts once.
		{"tap", 0, 2.95},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDriver(t, &countingSink{}, testConfig())
			_ = d.Handle(Event{Kind: KeyDown, Key: KeyCloser})
			for range tc.heldTicks {
				if _, err := d.Tick(); err != nil {
					t.Fatalf("Tick: %v", err)
				}
			}
			_ = d.Handle(Event{Kind: KeyUp, Key: KeyCloser})
			for range 3 {
				if _, err := d.Tick(); err != nil {
					t.Fatalf("Tick: %v", err)
				}
			}
			if got := d.State().CameraZ; math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("camera z = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCameraUnbounded(t *testing.T) {
	d := newTestDriver(t, &countingSink{}, testConfig())
	_ = d.Handle(Event{Kind: KeyDown, Key: KeyCloser})
	for range 200 {
		if _, err := d.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if got := d.State().CameraZ; got >= 0 {
		t.Errorf("camera should pass through the mesh, z = %v", got)
	}
}

func TestQuitKeyStopsBeforeDrawing(t *testing.T) {
	sink := &countingSink{}
	d := newTestDriver(t, sink, testConfig())

	_ = d.Handle(Event{Kind: KeyDown, Key: KeyQuit})
	if _, err := d.Tick(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Tick = %v, want ErrQuit", err)
	}
	if sink.frames != 0 {
		t.Errorf("quit tick presented %d frames", sink.frames)
	}
	if !d.Done() {
		t.Error("driver should be done")
	}
	if _, err := d.Tick(); !errors.Is(err, ErrQuit) {
		t.Errorf("ticks after quit = %v, want ErrQuit", err)
	}
}

func TestSinkErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	d := newTestDriver(t, &countingSink{err: boom}, testConfig())
	if _, err := d.Tick(); !errors.Is(err, boom) {
		t.Errorf("Tick = %v, want wrapped sink error", err)
	}
}

func TestRunTicksExhausted(t *testing.T) {
	sink := &countingSink{}
	d := newTestDriver(t, sink, testConfig())

	if err := d.Run(context.Background(), Ticks(5), nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sink.frames != 5 {
		t.Errorf("frames = %d, want 5", sink.frames)
	}
}

func TestRunQuitKey(t *testing.T) {
	sink := &countingSink{}
	d := newTestDriver(t, sink, testConfig())

	events := make(chan Event, 1)
	events <- Event{Kind: KeyDown, Key: KeyQuit}
	close(events)

	ticks := make(chan time.Time)
	done := make(chan error, 1)
	go func() { done <- d.Run(context.Background(), ticks, events) }()

	// Keep ticking until Run notices the key.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if !d.Done() {
				t.Error("driver should be done after the quit key")
			}
			return
		case ticks <- time.Time{}:
		case <-timeout:
			t.Fatal("Run did not stop on the quit key")
		}
	}
}

func TestRunCloseEvent(t *testing.T) {
	d := newTestDriver(t, &countingSink{}, testConfig())
	events := make(chan Event, 1)
	events <- Event{Kind: Close}

	if err := d.Run(context.Background(), make(chan time.Time), events); err != nil {
		t.Errorf("Run = %v, want nil on close", err)
	}
}

func TestRunCancelled(t *testing.T) {
	d := newTestDriver(t, &countingSink{}, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Run(ctx, make(chan time.Time), nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}

func TestResizeSwapsSink(t *testing.T) {
	first, second := &countingSink{}, &countingSink{}
	cfg := testConfig()
	var gotW, gotH int
	cfg.OnResize = func(w, h int) (*render.Pipeline, Sink, error) {
		gotW, gotH = w, h
		return testPipeline(t), second, nil
	}
	d := newTestDriver(t, first, cfg)

	if err := d.Handle(Event{Kind: Resize, Width: 80, Height: 24}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if _, err := d.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if gotW != 80 || gotH != 24 {
		t.Errorf("resize called with %dx%d", gotW, gotH)
	}
	if first.frames != 0 || second.frames != 1 {
		t.Errorf("frames went to old sink %d, new sink %d", first.frames, second.frames)
	}
}

func TestStatsLoggedOncePerSecond(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg := testConfig()
	cfg.FPS = 10
	cfg.Logger = zap.New(core)
	d := newTestDriver(t, &countingSink{}, cfg)

	for range 25 {
		if _, err := d.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if n := logs.FilterMessage("frame stats").Len(); n != 2 {
		t.Errorf("logged stats %d times, want 2", n)
	}
}

func TestTicks(t *testing.T) {
	n := 0
	for range Ticks(3) {
		n++
	}
	if n != 3 {
		t.Errorf("got %d ticks, want 3", n)
	}
	for range Ticks(-1) {
		t.Fatal("negative count should yield no ticks")
	}
}

func TestReloadSwapsPipeline(t *testing.T) {
	cfg := testConfig()
	calls := 0
	var fail bool
	cfg.OnReload = func() (*render.Pipeline, error) {
		calls++
		if fail {
			return nil, errors.New("half-written file")
		}
		return testPipeline(t), nil
	}
	d := newTestDriver(t, &countingSink{}, cfg)
	before := d.pipeline

	if err := d.Handle(Event{Kind: Reload}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if d.pipeline == before {
		t.Error("reload should install the new pipeline")
	}

	fail = true
	kept := d.pipeline
	if err := d.Handle(Event{Kind: Reload}); err != nil {
		t.Errorf("a failed reload should not end the session: %v", err)
	}
	if d.pipeline != kept {
		t.Error("a failed reload should keep the current pipeline")
	}
	if calls != 2 {
		t.Errorf("reload called %d times, want 2", calls)
	}
}
