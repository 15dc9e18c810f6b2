//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"torus-life/internal/core"
	"torus-life/internal/render"
)

// Overlay draws optional debugging visuals on top of the board.
type Overlay struct {
	grid          *core.Grid
	layout        *render.Layout
	showNeighbors bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(g *core.Grid, layout *render.Layout) *Overlay {
	return &Overlay{grid: g, layout: layout}
}

// Update toggles the layers. 1 shows live-neighbor counts.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showNeighbors = !o.showNeighbors
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showNeighbors {
		return
	}
	face := basicfont.Face7x13
	dim := color.RGBA{R: 200, G: 170, B: 60, A: 255}
	o.layout.Each(o.grid, func(c *core.Cell, r render.Rect) {
		n := o.grid.LiveNeighborCount(o.grid.ID(c.X, c.Y))
		if n == 0 {
			return
		}
		label := strconv.Itoa(n)
		b := text.BoundString(face, label)
		x := int(r.X) + (int(r.W)-b.Dx())/2
		y := int(r.Y) + (int(r.H)+b.Dy())/2
		text.Draw(screen, label, face, x, y, dim)
	})
}
