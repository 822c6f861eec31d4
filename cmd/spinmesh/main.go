// spinmesh - spinning shaded mesh viewer
// Draws an OBJ or glTF mesh as a rotating, flat-shaded, depth-sorted solid
// in the terminal, or renders it headless to a PNG or animated GIF.
//
// Controls:
//
//	Up / W / K     - Move the camera closer
//	Down / S / J   - Move the camera farther
//	Esc / Q        - Quit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/taigrr/spinmesh/internal/config"
	"github.com/taigrr/spinmesh/internal/logger"
	"github.com/taigrr/spinmesh/pkg/frame"
	"github.com/taigrr/spinmesh/pkg/models"
	"github.com/taigrr/spinmesh/pkg/render"
)

var (
	writeConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
	saveConfig  = flag.Bool("save-config", false, "Write the effective config to the user config directory and exit")
	snapshot    = flag.String("snapshot", "", "Render headless and save the last frame as PNG")
	gifPath     = flag.String("gif", "", "Render headless and save all frames as an animated GIF")
	frameCount  = flag.Int("frames", 60, "Frames to render in headless mode")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "spinmesh - spinning shaded mesh viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: spinmesh [options] [model.obj|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Up/W/K      - Camera closer\n")
		fmt.Fprintf(os.Stderr, "  Down/S/J    - Camera farther\n")
		fmt.Fprintf(os.Stderr, "  Esc/Q       - Quit\n")
	}
	config.ParseFlags()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if flag.NArg() > 0 {
		cfg.Model.Path = flag.Arg(0)
	}

	if *writeConfig != "" {
		if err := cfg.SaveTo(*writeConfig); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Printf("Wrote %s\n", *writeConfig)
		return nil
	}
	if *saveConfig {
		path, err := cfg.Save()
		if err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	headless := *snapshot != "" || *gifPath != ""

	// The terminal viewer owns the screen, so it only logs to a file.
	var console io.Writer
	if headless {
		console = os.Stderr
	}
	if err := logger.Init(cfg.Logging.Level, console, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	mesh, err := loadMesh(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if headless {
		return runHeadless(ctx, cfg, mesh)
	}
	return runTerminal(ctx, cfg, mesh)
}

func loadMesh(cfg *config.Config) (*models.Mesh, error) {
	mesh, err := models.Load(cfg.Model.Path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	if cfg.Model.Fit {
		mesh.Fit()
	}
	logger.Info("mesh loaded",
		zap.String("file", filepath.Base(cfg.Model.Path)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Stringer("min", mesh.BoundsMin),
		zap.Stringer("max", mesh.BoundsMax),
		zap.Bool("fit", cfg.Model.Fit),
	)
	return mesh, nil
}

// pipelineOptions maps config onto a pipeline for a width x height target.
func pipelineOptions(cfg *config.Config, width, height int) render.Options {
	opts := render.DefaultOptions(width, height)
	opts.FOV = cfg.Camera.FOV
	opts.Near = cfg.Camera.Near
	opts.Far = cfg.Camera.Far
	return opts
}

func driverConfig(cfg *config.Config) frame.Config {
	return frame.Config{
		FPS:         cfg.Display.FPS,
		StartZ:      cfg.Camera.StartZ,
		Step:        cfg.Camera.Step,
		AutoRelease: cfg.Input.AutoRelease,
		Logger:      logger.Named("frame"),
	}
}

// setupCanvas applies the display colors and debug outline.
func setupCanvas(cfg *config.Config, c *render.Canvas) error {
	bg, err := render.ParseRGB(cfg.Display.Background)
	if err != nil {
		return err
	}
	c.Background = bg
	c.Outline = cfg.Display.Debug
	return nil
}

func newPipeline(cfg *config.Config, mesh *models.Mesh, width, height int) (*render.Pipeline, error) {
	p, err := render.NewPipeline(mesh, pipelineOptions(cfg, width, height))
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	logger.Info("session started",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("fps", cfg.Display.FPS),
		zap.Float64("fov", cfg.Camera.FOV),
		zap.Float64("near", cfg.Camera.Near),
		zap.Float64("far", cfg.Camera.Far),
	)
	return p, nil
}

// ignoreCancel treats an interrupt as a normal exit.
func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
