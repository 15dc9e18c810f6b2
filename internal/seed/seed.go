// Package seed fills a grid with pseudo-random starting patterns.
package seed

import (
	"fmt"

	"github.com/aquilax/go-perlin"

	"torus-life/internal/core"
)

// Mode selects how random cells are chosen.
type Mode string

const (
	// ModeUniform makes each cell alive independently with a fixed density.
	ModeUniform Mode = "uniform"
	// ModeNoise thresholds 2D Perlin noise, giving clustered blobs.
	ModeNoise Mode = "noise"
)

// Options controls a fill.
type Options struct {
	Mode    Mode
	Density float64
	// Scale is the noise feature size in cells. Only used by ModeNoise.
	Scale float64
}

// DefaultOptions returns a uniform fill at 30% density.
func DefaultOptions() Options {
	return Options{Mode: ModeUniform, Density: 0.3, Scale: 6}
}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeUniform, ModeNoise:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown seed mode %q", s)
	}
}

// Fill overwrites every cell of g. The same seed and options always
// produce the same board.
func Fill(g *core.Grid, seed int64, opts Options) {
	switch opts.Mode {
	case ModeNoise:
		fillNoise(g, seed, opts)
	default:
		fillUniform(g, seed, opts.Density)
	}
}

func fillUniform(g *core.Grid, seed int64, density float64) {
	rng := core.NewRNG(seed)
	cells := g.Cells()
	for i := range cells {
		cells[i].Alive = rng.Chance(density)
	}
}

func fillNoise(g *core.Grid, seed int64, opts Options) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 6
	}
	p := perlin.NewPerlin(2, 2, 3, seed)
	// Noise is roughly symmetric around zero, so mapping density onto
	// [-1, 1] keeps the live fraction in the same ballpark as uniform fills.
	threshold := 1 - 2*opts.Density
	cells := g.Cells()
	for i := range cells {
		c := &cells[i]
		v := p.Noise2D(float64(c.X)/scale, float64(c.Y)/scale) * 2
		c.Alive = v > threshold
	}
}
