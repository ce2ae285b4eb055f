// Package config holds the viewer's startup settings: built-in defaults,
// an optional YAML file, and command-line flags, applied in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"lel/viewer"
)

var ErrInvalid = errors.New("config: invalid value")

type Window struct {
	// Width and Height of 0 mean "use the image size".
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Title  string `yaml:"title"`
}

type Headless struct {
	Enabled  bool   `yaml:"enabled"`
	Hz       int    `yaml:"hz"`
	Ticks    uint64 `yaml:"ticks"`
	Snapshot string `yaml:"snapshot"`
}

type Config struct {
	Window     Window   `yaml:"window"`
	Mode       string   `yaml:"mode"`
	Zoom       float64  `yaml:"zoom"`
	ZoomStep   float64  `yaml:"zoom_step"`
	PanDivisor int      `yaml:"pan_divisor"`
	Background string   `yaml:"background"`
	RowAlign   int      `yaml:"row_align"`
	LogLevel   string   `yaml:"log_level"`
	Headless   Headless `yaml:"headless"`

	// Set by BindFlags: which window fields came from the command line.
	positionSet bool
}

func Default() Config {
	return Config{
		Mode:       viewer.Aspect.String(),
		Zoom:       1,
		ZoomStep:   0.25,
		PanDivisor: 20,
		Background: "#000000",
		RowAlign:   4,
		LogLevel:   "info",
		Headless:   Headless{Hz: 60},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, ok := viewer.ParseFitMode(c.Mode); !ok {
		return fmt.Errorf("%w: mode %q", ErrInvalid, c.Mode)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if !viewer.ValidZoom(c.Zoom) {
		return fmt.Errorf("%w: zoom %g", ErrInvalid, c.Zoom)
	}
	if c.ZoomStep <= 0 {
		return fmt.Errorf("%w: zoom_step %g", ErrInvalid, c.ZoomStep)
	}
	if c.PanDivisor <= 0 {
		return fmt.Errorf("%w: pan_divisor %d", ErrInvalid, c.PanDivisor)
	}
	if c.RowAlign < 0 || c.RowAlign%4 != 0 {
		return fmt.Errorf("%w: row_align %d must be a multiple of 4", ErrInvalid, c.RowAlign)
	}
	if _, _, _, err := ParseColor(c.Background); err != nil {
		return err
	}
	if c.Headless.Hz <= 0 {
		return fmt.Errorf("%w: headless hz %d", ErrInvalid, c.Headless.Hz)
	}
	return nil
}

// FitMode returns the parsed mode; call Validate first.
func (c Config) FitMode() viewer.FitMode {
	m, _ := viewer.ParseFitMode(c.Mode)
	return m
}

// PositionSet reports whether -x or -y was given.
func (c Config) PositionSet() bool { return c.positionSet || c.Window.X != 0 || c.Window.Y != 0 }

// BackgroundRGB returns the parsed background colour; call Validate first.
func (c Config) BackgroundRGB() (r, g, b uint8) {
	r, g, b, _ = ParseColor(c.Background)
	return r, g, b
}

// ParseColor accepts "#rrggbb" or "rrggbb".
func ParseColor(s string) (r, g, b uint8, err error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: colour %q", ErrInvalid, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: colour %q", ErrInvalid, s)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
