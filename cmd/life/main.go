//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"torus-life/internal/app"
	"torus-life/internal/config"
	"torus-life/internal/core"
	"torus-life/internal/logging"
	"torus-life/internal/render"
	"torus-life/internal/sim"
)

// parseFlags reads the command line. When -config names a file, the file
// is loaded first and the command line is applied over it.
func parseFlags(args []string) (cfg *config.Config, random bool, err error) {
	var path string
	bind := func(c *config.Config) *flag.FlagSet {
		fs := flag.NewFlagSet("life", flag.ExitOnError)
		fs.StringVar(&path, "config", "", "TOML or YAML config file")
		fs.BoolVar(&random, "random", false, "start from a random board")
		c.Bind(fs)
		return fs
	}

	cfg = config.Default()
	if err := bind(cfg).Parse(args); err != nil {
		return nil, false, err
	}
	if path == "" {
		return cfg, random, cfg.Validate()
	}
	if cfg, err = config.Load(path); err != nil {
		return nil, false, err
	}
	if err := bind(cfg).Parse(args); err != nil {
		return nil, false, err
	}
	return cfg, random, cfg.Validate()
}

func main() {
	cfg, random, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	palette, err := cfg.Colors.Palette()
	if err != nil {
		log.Fatal(err)
	}
	fill, err := cfg.Seed.Options()
	if err != nil {
		log.Fatal(err)
	}

	size := core.Size{W: cfg.Grid.Width, H: cfg.Grid.Height}
	layout := render.NewLayout(size, cfg.Window.Width, cfg.Window.Height, cfg.Window.Gap)
	s, err := sim.New(sim.Options{
		Size:         size,
		Rate:         cfg.Simulation.Rate,
		StartPlaying: cfg.Simulation.StartPlaying,
		Seed:         cfg.Seed.Value,
		Fill:         fill,
	}, core.NewMonotonicSource(), layout, logger)
	if err != nil {
		logger.Fatal("create simulation", zap.Error(err))
	}
	if random {
		s.Randomize()
	}

	game := app.New(s, layout, palette, cfg.Window.HUD)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(60)

	logger.Info("starting",
		zap.Int("cols", size.W), zap.Int("rows", size.H),
		zap.Float64("rate", cfg.Simulation.Rate))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run game", zap.Error(err))
	}
}
