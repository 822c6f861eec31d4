package main

import (
	"context"
	"fmt"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"

	"github.com/taigrr/spinmesh/internal/config"
	"github.com/taigrr/spinmesh/internal/logger"
	"github.com/taigrr/spinmesh/pkg/frame"
	"github.com/taigrr/spinmesh/pkg/models"
	"github.com/taigrr/spinmesh/pkg/render"
)

// runTerminal shows the mesh in the terminal until quit, close or signal.
func runTerminal(ctx context.Context, cfg *config.Config, mesh *models.Mesh) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	fps := render.NewFPSCounter()
	var fbw, fbh int

	// session builds the pipeline and presenter for one terminal size.
	session := func(w, h int) (*render.Pipeline, frame.Sink, error) {
		term.Erase()
		term.Resize(w, h)
		tr := render.NewTerminalRenderer(term, w, h)
		if err := setupCanvas(cfg, tr.Canvas()); err != nil {
			return nil, nil, err
		}
		if cfg.Display.ShowFPS {
			tr.Status = fps.String
		}
		fbw, fbh = tr.FramebufferSize()
		p, err := newPipeline(cfg, mesh, fbw, fbh)
		if err != nil {
			return nil, nil, err
		}
		sink := frame.SinkFunc(func(tris []render.ScreenTriangle) error {
			fps.Frame()
			return tr.Present(tris)
		})
		return p, sink, nil
	}

	p, sink, err := session(width, height)
	if err != nil {
		return err
	}

	dcfg := driverConfig(cfg)
	dcfg.OnResize = session
	dcfg.OnReload = func() (*render.Pipeline, error) {
		m, err := loadMesh(cfg)
		if err != nil {
			return nil, err
		}
		mesh = m
		return newPipeline(cfg, mesh, fbw, fbh)
	}
	d, err := frame.NewDriver(p, sink, dcfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan frame.Event, 16)
	go forwardEvents(ctx, term, events)

	if cfg.Model.Watch {
		w, err := models.NewWatcher(cfg.Model.Path)
		if err != nil {
			return err
		}
		defer w.Close()
		go forwardReloads(ctx, w, events)
	}

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Display.FPS))
	defer ticker.Stop()

	return ignoreCancel(d.Run(ctx, ticker.C, events))
}

// forwardEvents translates terminal events into frame events. It never
// touches driver state, it only sends.
func forwardEvents(ctx context.Context, term *uv.Terminal, out chan<- frame.Event) {
	for ev := range term.Events() {
		fe, ok := translate(ev)
		if !ok {
			continue
		}
		select {
		case out <- fe:
		case <-ctx.Done():
			return
		}
	}
}

// forwardReloads turns file changes into Reload events.
func forwardReloads(ctx context.Context, w *models.Watcher, out chan<- frame.Event) {
	for {
		select {
		case <-w.Changes():
			select {
			case out <- frame.Event{Kind: frame.Reload}:
			case <-ctx.Done():
				return
			}
		case err := <-w.Errors():
			logger.Warn("model watch error", zap.Error(err))
		case <-ctx.Done():
			return
		}
	}
}

func translate(ev uv.Event) (frame.Event, bool) {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		return frame.Event{Kind: frame.Resize, Width: ev.Width, Height: ev.Height}, true

	case uv.KeyPressEvent:
		if ev.MatchString("ctrl+c") {
			return frame.Event{Kind: frame.Close}, true
		}
		if k, ok := keyFor(ev.MatchString); ok {
			return frame.Event{Kind: frame.KeyDown, Key: k}, true
		}

	case uv.KeyReleaseEvent:
		if k, ok := keyFor(ev.MatchString); ok {
			return frame.Event{Kind: frame.KeyUp, Key: k}, true
		}
	}
	return frame.Event{}, false
}

func keyFor(match func(...string) bool) (frame.Key, bool) {
	switch {
	case match("escape", "q"):
		return frame.KeyQuit, true
	case match("up", "w", "k"):
		return frame.KeyCloser, true
	case match("down", "s", "j"):
		return frame.KeyFarther, true
	}
	return 0, false
}
