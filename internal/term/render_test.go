package term

import (
	"image/color"
	"strings"
	"testing"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/sim"
)

func TestBoardPlain(t *testing.T) {
	g, err := core.NewGrid(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	g.MustCellAt(1, 0).Alive = true
	g.MustCellAt(2, 1).Alive = true

	r := NewRenderer(render.DefaultPalette(), false)
	want := "░░██░░\n░░░░██"
	if got := r.Board(g); got != want {
		t.Fatalf("Board() = %q, expected %q", got, want)
	}
}

func TestBoardColored(t *testing.T) {
	g, err := core.NewGrid(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	g.MustCellAt(0, 0).Alive = true
	out := NewRenderer(render.DefaultPalette(), true).Board(g)
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("colored board has no escape codes: %q", out)
	}
	if !strings.Contains(out, "██") || !strings.Contains(out, "░░") {
		t.Fatalf("colored board lost its glyphs: %q", out)
	}
}

func TestStatusPlain(t *testing.T) {
	r := NewRenderer(render.DefaultPalette(), false)
	got := r.Status(sim.Status{State: sim.Playing, Generation: 7, Live: 9})
	want := " Mode: playing\n Generation: 7\n Live cells: 9"
	if got != want {
		t.Fatalf("Status() = %q, expected %q", got, want)
	}
}

func TestXtermIndex(t *testing.T) {
	cases := []struct {
		c    color.RGBA
		want uint8
	}{
		{color.RGBA{}, 16},
		{color.RGBA{R: 255, G: 255, B: 255}, 231},
		{color.RGBA{R: 255}, 196},
		{color.RGBA{R: 56, G: 59, B: 64}, 59},
	}
	for _, tc := range cases {
		if got := xtermIndex(tc.c); got != tc.want {
			t.Fatalf("xtermIndex(%+v) = %d, expected %d", tc.c, got, tc.want)
		}
	}
}

func TestLocator(t *testing.T) {
	l := Locator{Size: core.Size{W: 4, H: 3}}
	cases := []struct {
		x, y   float64
		id     core.CellID
		inside bool
	}{
		{0.5, 0.5, 0, true},
		{1.5, 0.5, 0, true},
		{2.5, 0.5, 1, true},
		{7.5, 2.5, 11, true},
		{8.5, 0.5, 0, false},
		{0.5, 3.5, 0, false},
		{-0.5, 0.5, 0, false},
	}
	for _, tc := range cases {
		id, ok := l.CellAt(tc.x, tc.y)
		if ok != tc.inside || (ok && id != tc.id) {
			t.Fatalf("CellAt(%g,%g) = %d,%v, expected %d,%v", tc.x, tc.y, id, ok, tc.id, tc.inside)
		}
	}
}
