package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Outline triangles and log at debug level")
	flagWidth       = flag.Int("width", 0, "Export width in pixels")
	flagHeight      = flag.Int("height", 0, "Export height in pixels")
	flagFPS         = flag.Int("fps", 0, "Target frames per second")
	flagLogLevel    = flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flagLogFile     = flag.String("log-file", "", "Write logs to this rotating file")
	flagFit         = flag.Bool("fit", false, "Scale and center the model into a 2-unit box")
	flagWatch       = flag.Bool("watch", false, "Reload the model when its file changes")
	flagAutoRelease = flag.Int("auto-release", -1, "Ticks before an unrepeated key releases (0 disables)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Display.Debug = true
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Display.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Display.Height = *flagHeight
	}
	if *flagFPS > 0 {
		cfg.Display.FPS = *flagFPS
	}
	if *flagLogLevel != "" {
		cfg.Logging.Level = *flagLogLevel
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagFit {
		cfg.Model.Fit = true
	}
	if *flagWatch {
		cfg.Model.Watch = true
	}
	if *flagAutoRelease >= 0 {
		cfg.Input.AutoRelease = *flagAutoRelease
	}
}
