package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"torus-life/internal/render"
	"torus-life/internal/seed"
)

// ErrUnknownFormat is returned for config files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown config format")

type Config struct {
	Grid       GridConfig       `toml:"grid" yaml:"grid"`
	Simulation SimulationConfig `toml:"simulation" yaml:"simulation"`
	Window     WindowConfig     `toml:"window" yaml:"window"`
	Colors     ColorsConfig     `toml:"colors" yaml:"colors"`
	Seed       SeedConfig       `toml:"seed" yaml:"seed"`
	Logging    LoggingConfig    `toml:"logging" yaml:"logging"`
}

type GridConfig struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

type SimulationConfig struct {
	Rate         float64 `toml:"rate" yaml:"rate"` // generations per second
	StartPlaying bool    `toml:"start_playing" yaml:"start_playing"`
}

type WindowConfig struct {
	Width  int     `toml:"width" yaml:"width"`
	Height int     `toml:"height" yaml:"height"`
	Gap    float64 `toml:"gap" yaml:"gap"`
	Title  string  `toml:"title" yaml:"title"`
	HUD    bool    `toml:"hud" yaml:"hud"`
}

// ColorsConfig holds "#rrggbb" or "#rrggbbaa" strings.
type ColorsConfig struct {
	Background string `toml:"background" yaml:"background"`
	Dead       string `toml:"dead" yaml:"dead"`
	Alive      string `toml:"alive" yaml:"alive"`
}

type SeedConfig struct {
	Value   int64   `toml:"value" yaml:"value"`
	Mode    string  `toml:"mode" yaml:"mode"` // "uniform" or "noise"
	Density float64 `toml:"density" yaml:"density"`
	Scale   float64 `toml:"scale" yaml:"scale"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	File   string `toml:"file" yaml:"file"`     // empty logs to stderr
}

// Default returns the reference configuration: a 40x40 board at 20
// generations per second in an 800x800 window.
func Default() *Config {
	return &Config{
		Grid: GridConfig{Width: 40, Height: 40},
		Simulation: SimulationConfig{
			Rate: 20,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 800,
			Gap:    1,
			Title:  "Game of Life",
			HUD:    true,
		},
		Colors: ColorsConfig{
			Background: "#212121",
			Dead:       "#383b40",
			Alive:      "#c3c7cd",
		},
		Seed: SeedConfig{
			Value:   42,
			Mode:    "uniform",
			Density: 0.3,
			Scale:   6,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML or YAML file (chosen by extension) over the defaults
// and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config %s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and color syntax.
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", c.Grid.Width, c.Grid.Height)
	}
	if c.Simulation.Rate <= 0 {
		return fmt.Errorf("simulation rate %g must be positive", c.Simulation.Rate)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.Gap < 0 {
		return fmt.Errorf("window gap %g must not be negative", c.Window.Gap)
	}
	if _, err := c.Seed.Options(); err != nil {
		return err
	}
	for name, v := range map[string]string{
		"background": c.Colors.Background,
		"dead":       c.Colors.Dead,
		"alive":      c.Colors.Alive,
	} {
		if _, err := ParseColor(v); err != nil {
			return fmt.Errorf("colors.%s: %w", name, err)
		}
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Grid.Width, "cols", c.Grid.Width, "grid width in cells")
	fs.IntVar(&c.Grid.Height, "rows", c.Grid.Height, "grid height in cells")
	fs.Float64Var(&c.Simulation.Rate, "rate", c.Simulation.Rate, "generations per second")
	fs.BoolVar(&c.Simulation.StartPlaying, "play", c.Simulation.StartPlaying, "start playing instead of paused")
	fs.IntVar(&c.Window.Width, "width", c.Window.Width, "window width in pixels")
	fs.IntVar(&c.Window.Height, "height", c.Window.Height, "window height in pixels")
	fs.BoolVar(&c.Window.HUD, "hud", c.Window.HUD, "show the status bar")
	fs.Int64Var(&c.Seed.Value, "seed", c.Seed.Value, "seed for random fills")
	fs.StringVar(&c.Seed.Mode, "seed-mode", c.Seed.Mode, "random fill mode (uniform|noise)")
	fs.StringVar(&c.Logging.Level, "log-level", c.Logging.Level, "log level")
}

// Palette parses the configured colors.
func (c ColorsConfig) Palette() (render.Palette, error) {
	var p render.Palette
	var err error
	if p.Background, err = ParseColor(c.Background); err != nil {
		return p, fmt.Errorf("colors.background: %w", err)
	}
	if p.Dead, err = ParseColor(c.Dead); err != nil {
		return p, fmt.Errorf("colors.dead: %w", err)
	}
	if p.Alive, err = ParseColor(c.Alive); err != nil {
		return p, fmt.Errorf("colors.alive: %w", err)
	}
	return p, nil
}

// Options converts the seed section for seed.Fill.
func (s SeedConfig) Options() (seed.Options, error) {
	mode, err := seed.ParseMode(s.Mode)
	if err != nil {
		return seed.Options{}, fmt.Errorf("seed.mode: %w", err)
	}
	if s.Density < 0 || s.Density > 1 {
		return seed.Options{}, fmt.Errorf("seed density %g outside [0, 1]", s.Density)
	}
	return seed.Options{Mode: mode, Density: s.Density, Scale: s.Scale}, nil
}

// ParseColor decodes "#rrggbb" or "#rrggbbaa". Alpha defaults to opaque.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
