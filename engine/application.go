package engine

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/wireframe/engine/core"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"start_width"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"start_height"`
	// The application name used in windowing, if applicable.
	Name string `toml:"name"`
	// debug, info, warn, error or fatal.
	LogLevel string `toml:"log_level"`
	// Scene file to load; empty selects the built-in cube.
	ScenePath string `toml:"scene"`
	// Updates per second of the main loop.
	TargetTPS int `toml:"target_tps"`
	// Whether the window may be resized.
	Resizable bool `toml:"resizable"`
	// Draw the status overlay.
	ShowHUD bool `toml:"show_hud"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:   100,
		StartPosY:   100,
		StartWidth:  1280,
		StartHeight: 720,
		Name:        "SDL3D",
		LogLevel:    "info",
		TargetTPS:   60,
		Resizable:   true,
		ShowHUD:     true,
	}
}

// LoadApplicationConfig reads a TOML config file over the defaults. Keys
// missing from the file keep their default value; unknown keys are errors.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	cfg := DefaultApplicationConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *ApplicationConfig) Validate() error {
	if c.StartWidth == 0 || c.StartHeight == 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.StartWidth, c.StartHeight)
	}
	if c.TargetTPS <= 0 {
		return fmt.Errorf("target_tps %d must be positive", c.TargetTPS)
	}
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the parsed log level; invalid names fall back to info.
func (c *ApplicationConfig) Level() core.LogLevel {
	level, err := core.ParseLogLevel(c.LogLevel)
	if err != nil {
		return core.InfoLevel
	}
	return level
}
