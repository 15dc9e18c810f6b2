package seed

import (
	"slices"
	"testing"

	"torus-life/internal/core"
)

func snapshot(g *core.Grid) []bool {
	out := make([]bool, g.Len())
	for i, c := range g.Cells() {
		out[i] = c.Alive
	}
	return out
}

func fill(t *testing.T, seed int64, opts Options) []bool {
	t.Helper()
	g, err := core.NewGrid(40, 40)
	if err != nil {
		t.Fatal(err)
	}
	Fill(g, seed, opts)
	return snapshot(g)
}

func TestFillDeterministic(t *testing.T) {
	for _, mode := range []Mode{ModeUniform, ModeNoise} {
		opts := DefaultOptions()
		opts.Mode = mode
		opts.Density = 0.5
		a := fill(t, 42, opts)
		b := fill(t, 42, opts)
		if !slices.Equal(a, b) {
			t.Fatalf("%s fill is not deterministic for a fixed seed", mode)
		}
		if slices.Equal(a, fill(t, 43, opts)) {
			t.Fatalf("%s fill ignored the seed", mode)
		}
	}
}

func TestUniformDensityBounds(t *testing.T) {
	opts := DefaultOptions()

	opts.Density = 0
	if n := countAlive(fill(t, 1, opts)); n != 0 {
		t.Fatalf("density 0 produced %d live cells", n)
	}
	opts.Density = 1
	if n := countAlive(fill(t, 1, opts)); n != 1600 {
		t.Fatalf("density 1 produced %d live cells", n)
	}
	opts.Density = 0.3
	if n := countAlive(fill(t, 1, opts)); n < 300 || n > 660 {
		t.Fatalf("density 0.3 produced an implausible %d live cells", n)
	}
}

func TestFillOverwritesPreviousState(t *testing.T) {
	g, err := core.NewGrid(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i := range g.Cells() {
		g.Cells()[i].Alive = true
	}
	Fill(g, 5, Options{Mode: ModeUniform, Density: 0})
	if g.LiveCount() != 0 {
		t.Fatalf("fill left %d stale live cells", g.LiveCount())
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("noise"); err != nil || m != ModeNoise {
		t.Fatalf("ParseMode(noise) = %q, %v", m, err)
	}
	if _, err := ParseMode("glider"); err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
}

func countAlive(cells []bool) int {
	n := 0
	for _, alive := range cells {
		if alive {
			n++
		}
	}
	return n
}
