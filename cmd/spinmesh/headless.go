package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/taigrr/spinmesh/internal/config"
	"github.com/taigrr/spinmesh/internal/logger"
	"github.com/taigrr/spinmesh/pkg/frame"
	"github.com/taigrr/spinmesh/pkg/models"
	"github.com/taigrr/spinmesh/pkg/render"
)

// runHeadless renders a fixed number of frames at the configured size and
// writes a PNG of the last one and/or a GIF of all of them.
func runHeadless(ctx context.Context, cfg *config.Config, mesh *models.Mesh) error {
	if *frameCount <= 0 {
		return fmt.Errorf("frames must be positive, got %d", *frameCount)
	}
	w, h := cfg.Display.Width, cfg.Display.Height

	p, err := newPipeline(cfg, mesh, w, h)
	if err != nil {
		return err
	}
	canvas := render.NewCanvas(render.NewFramebuffer(w, h))
	if err := setupCanvas(cfg, canvas); err != nil {
		return err
	}

	var sink frame.Sink = canvas
	var rec *render.GIFRecorder
	if *gifPath != "" {
		rec = render.NewGIFRecorder(canvas, cfg.Display.FPS)
		sink = rec
	}

	d, err := frame.NewDriver(p, sink, driverConfig(cfg))
	if err != nil {
		return err
	}
	if err := d.Run(ctx, frame.Ticks(*frameCount), nil); err != nil {
		return ignoreCancel(err)
	}

	if *snapshot != "" {
		if err := canvas.FB.SavePNG(*snapshot); err != nil {
			return err
		}
		logger.Info("snapshot written", zap.String("path", *snapshot), zap.Int("frame", d.State().Frames))
	}
	if rec != nil {
		if err := rec.Save(*gifPath); err != nil {
			return err
		}
		logger.Info("gif written", zap.String("path", *gifPath), zap.Int("frames", rec.Frames()))
	}
	return nil
}
