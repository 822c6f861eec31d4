package config

import (
	"errors"
	"fmt"

	"github.com/taigrr/spinmesh/pkg/math3d"
	"github.com/taigrr/spinmesh/pkg/render"
)

// ErrInvalid marks a setting that cannot start a session.
var ErrInvalid = fmt.Errorf("config: invalid setting: %w", math3d.ErrConfiguration)

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		bad("display size %dx%d must be positive", c.Display.Width, c.Display.Height)
	}
	if c.Display.FPS <= 0 {
		bad("fps %d must be positive", c.Display.FPS)
	}
	if _, err := render.ParseRGB(c.Display.Background); err != nil {
		bad("background: %v", err)
	}
	if _, err := math3d.Projection(c.Camera.FOV, 1, c.Camera.Near, c.Camera.Far); err != nil {
		bad("camera: %v", err)
	}
	if c.Camera.Step < 0 {
		bad("camera step %v must not be negative", c.Camera.Step)
	}
	if c.Input.AutoRelease < 0 {
		bad("auto_release %d must not be negative", c.Input.AutoRelease)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		bad("log level %q", c.Logging.Level)
	}

	return errors.Join(errs...)
}
