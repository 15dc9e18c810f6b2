package config

import (
	"errors"
	"flag"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"torus-life/internal/render"
	"torus-life/internal/seed"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Grid.Width != 40 || cfg.Grid.Height != 40 || cfg.Simulation.Rate != 20 {
		t.Fatalf("unexpected reference values %+v %+v", cfg.Grid, cfg.Simulation)
	}
	p, err := cfg.Colors.Palette()
	if err != nil {
		t.Fatal(err)
	}
	if p != render.DefaultPalette() {
		t.Fatalf("default colors %+v do not match the default palette", p)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "life.toml", `
[grid]
width = 64
height = 48

[simulation]
rate = 12.5
start_playing = true

[colors]
alive = "#ff000080"

[seed]
mode = "noise"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid.Width != 64 || cfg.Grid.Height != 48 {
		t.Fatalf("grid not loaded: %+v", cfg.Grid)
	}
	if cfg.Simulation.Rate != 12.5 || !cfg.Simulation.StartPlaying {
		t.Fatalf("simulation not loaded: %+v", cfg.Simulation)
	}
	if cfg.Window.Width != 800 || cfg.Colors.Dead != "#383b40" {
		t.Fatal("unset keys should keep their defaults")
	}
	p, err := cfg.Colors.Palette()
	if err != nil {
		t.Fatal(err)
	}
	if p.Alive != (color.RGBA{R: 255, A: 128}) {
		t.Fatalf("alive color parsed as %+v", p.Alive)
	}
	opts, err := cfg.Seed.Options()
	if err != nil || opts.Mode != seed.ModeNoise {
		t.Fatalf("seed options %+v, %v", opts, err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "life.yaml", `
window:
  width: 400
  height: 300
  gap: 0
logging:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 400 || cfg.Window.Height != 300 || cfg.Window.Gap != 0 {
		t.Fatalf("window not loaded: %+v", cfg.Window)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging not loaded: %+v", cfg.Logging)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
	if _, err := Load(writeFile(t, "life.ini", "x=1")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := Load(writeFile(t, "bad.toml", "[grid\nwidth=")); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected a parse error, got %v", err)
	}
	if _, err := Load(writeFile(t, "neg.toml", "[grid]\nwidth = -3\n")); err == nil {
		t.Fatal("expected a validation error for a negative width")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero rate":     func(c *Config) { c.Simulation.Rate = 0 },
		"negative gap":  func(c *Config) { c.Window.Gap = -1 },
		"tiny window":   func(c *Config) { c.Window.Height = 0 },
		"bad color":     func(c *Config) { c.Colors.Dead = "grey" },
		"bad seed mode": func(c *Config) { c.Seed.Mode = "glider" },
		"high density":  func(c *Config) { c.Seed.Density = 1.5 },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected a validation error", name)
		}
	}
}

func TestBind(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-cols", "10", "-rate", "5", "-play", "-seed", "7", "-seed-mode", "noise"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Grid.Width != 10 || cfg.Simulation.Rate != 5 || !cfg.Simulation.StartPlaying {
		t.Fatalf("flags not applied: %+v %+v", cfg.Grid, cfg.Simulation)
	}
	if cfg.Seed.Value != 7 || cfg.Seed.Mode != "noise" {
		t.Fatalf("seed flags not applied: %+v", cfg.Seed)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#383b40", color.RGBA{R: 56, G: 59, B: 64, A: 255}, true},
		{"c3c7cdff", color.RGBA{R: 195, G: 199, B: 205, A: 255}, true},
		{" #00000000 ", color.RGBA{}, true},
		{"#abc", color.RGBA{}, false},
		{"#gggggg", color.RGBA{}, false},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseColor(%q) err=%v, expected ok=%v", tc.in, err, tc.ok)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("ParseColor(%q) = %+v, expected %+v", tc.in, got, tc.want)
		}
	}
}
