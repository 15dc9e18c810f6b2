package main

import (
	"fmt"
	"os"

	"github.com/integrii/flaggy"
	"go.uber.org/zap"

	"torus-life/internal/config"
	"torus-life/internal/core"
	"torus-life/internal/logging"
	"torus-life/internal/sim"
	"torus-life/internal/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	cfgPath string
	random  bool
	noColor bool
	fps     int
}

func newParser(cfg *config.Config, o *options) *flaggy.Parser {
	p := flaggy.NewParser("life-term")
	p.Description = "Conway's Game of Life on a torus, in the terminal"
	p.ShowHelpOnUnexpected = true
	p.String(&o.cfgPath, "c", "config", "TOML or YAML config file")
	p.Int(&cfg.Grid.Width, "x", "cols", "Width of the board in cells")
	p.Int(&cfg.Grid.Height, "y", "rows", "Height of the board in cells")
	p.Float64(&cfg.Simulation.Rate, "g", "rate", "Generations per second")
	p.Bool(&cfg.Simulation.StartPlaying, "p", "play", "Start playing instead of paused")
	p.Bool(&o.random, "r", "random", "Start from a random board")
	p.Int64(&cfg.Seed.Value, "s", "seed", "Seed for random boards")
	p.String(&cfg.Seed.Mode, "m", "seed-mode", "Random fill mode [uniform|noise]")
	p.Int(&o.fps, "f", "fps", "Screen refresh rate")
	p.Bool(&o.noColor, "n", "no-color", "Disable colors")
	p.String(&cfg.Logging.File, "l", "log", "Log file")
	return p
}

// parseArgs applies the command line over the defaults, or over the
// config file when one is named.
func parseArgs(args []string) (*config.Config, options, error) {
	o := options{fps: 30}
	cfg := config.Default()
	cfg.Logging.File = "life-term.log"
	if err := newParser(cfg, &o).ParseArgs(args); err != nil {
		return nil, o, err
	}
	if o.cfgPath != "" {
		loaded, err := config.Load(o.cfgPath)
		if err != nil {
			return nil, o, err
		}
		if loaded.Logging.File == "" {
			loaded.Logging.File = "life-term.log"
		}
		cfg = loaded
		if err := newParser(cfg, &o).ParseArgs(args); err != nil {
			return nil, o, err
		}
	}
	return cfg, o, cfg.Validate()
}

func run() error {
	cfg, o, err := parseArgs(os.Args[1:])
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	palette, err := cfg.Colors.Palette()
	if err != nil {
		return err
	}
	fill, err := cfg.Seed.Options()
	if err != nil {
		return err
	}

	size := core.Size{W: cfg.Grid.Width, H: cfg.Grid.Height}
	s, err := sim.New(sim.Options{
		Size:         size,
		Rate:         cfg.Simulation.Rate,
		StartPlaying: cfg.Simulation.StartPlaying,
		Seed:         cfg.Seed.Value,
		Fill:         fill,
	}, core.NewMonotonicSource(), term.Locator{Size: size}, logger)
	if err != nil {
		return err
	}
	if o.random {
		s.Randomize()
	}

	ui, err := term.New(s, term.NewRenderer(palette, !o.noColor), o.fps, logger)
	if err != nil {
		return err
	}
	logger.Info("starting", zap.Int("cols", size.W), zap.Int("rows", size.H), zap.Float64("rate", cfg.Simulation.Rate))
	return ui.Run()
}
