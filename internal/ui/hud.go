//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"torus-life/internal/sim"
)

// HUD draws a status bar along the bottom edge of the board.
type HUD struct {
	sim   *sim.Simulation
	pixel *ebiten.Image
}

// NewHUD constructs a HUD reading from s.
func NewHUD(s *sim.Simulation) *HUD {
	h := &HUD{sim: s}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Draw paints the bar over the bottom of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	bounds := screen.Bounds()
	top := bounds.Dy() - barHeight
	if top < 0 {
		top = 0
	}

	bg := color.RGBA{R: 16, G: 16, B: 20, A: 200}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()), float64(barHeight))
	op.GeoM.Translate(0, float64(top))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	status := StatusLine(h.sim.Status())
	text.Draw(screen, status, face, barPadding, top+textBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})

	help := text.BoundString(face, Help)
	helpX := bounds.Dx() - barPadding - help.Dx()
	if helpX > barPadding+text.BoundString(face, status).Dx()+barPadding {
		text.Draw(screen, Help, face, helpX, top+textBaseline, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
}

const (
	barHeight    = 22
	barPadding   = 8
	textBaseline = 15
)
