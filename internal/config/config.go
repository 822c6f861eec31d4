// Package config handles spinmesh configuration loading and management.
//
// Files are YAML, or TOML when the name ends in .toml.
package config

// Config holds all viewer settings.
type Config struct {
	Display DisplayConfig `yaml:"display" toml:"display"`
	Camera  CameraConfig  `yaml:"camera" toml:"camera"`
	Input   InputConfig   `yaml:"input" toml:"input"`
	Model   ModelConfig   `yaml:"model" toml:"model"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// DisplayConfig holds output size and drawing settings.
type DisplayConfig struct {
	// Width and Height size headless exports; the terminal viewer uses
	// the terminal size instead.
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	FPS    int `yaml:"fps" toml:"fps"`

	Debug      bool   `yaml:"debug" toml:"debug"`           // Outline every triangle
	Background string `yaml:"background" toml:"background"` // "R,G,B"
	ShowFPS    bool   `yaml:"show_fps" toml:"show_fps"`
}

// CameraConfig holds projection and camera distance settings.
type CameraConfig struct {
	FOV    float64 `yaml:"fov" toml:"fov"` // Degrees
	Near   float64 `yaml:"near" toml:"near"`
	Far    float64 `yaml:"far" toml:"far"`
	StartZ float64 `yaml:"start_z" toml:"start_z"`
	Step   float64 `yaml:"step" toml:"step"` // Distance change per tick while a key is held
}

// InputConfig holds key handling settings.
type InputConfig struct {
	// AutoRelease releases a key after this many ticks without a repeat,
	// for terminals that never report key-up. Zero disables it.
	AutoRelease int `yaml:"auto_release" toml:"auto_release"`
}

// ModelConfig holds mesh loading settings.
type ModelConfig struct {
	Path  string `yaml:"path" toml:"path"`
	Fit   bool   `yaml:"fit" toml:"fit"`     // Scale and center into a 2-unit box
	Watch bool   `yaml:"watch" toml:"watch"` // Reload when the file changes
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:      1920,
			Height:     1080,
			FPS:        60,
			Debug:      false,
			Background: "0,0,0",
			ShowFPS:    true,
		},
		Camera: CameraConfig{
			FOV:    90,
			Near:   0.1,
			Far:    1000,
			StartZ: 3,
			Step:   0.05,
		},
		Input: InputConfig{
			AutoRelease: 30,
		},
		Model: ModelConfig{
			Path: "teapot.obj",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
