package render

import "image/color"

// Palette holds the fixed colors of the board.
type Palette struct {
	Background color.RGBA
	Dead       color.RGBA
	Alive      color.RGBA
}

// DefaultPalette returns the reference grey-on-charcoal colors.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 33, G: 33, B: 33, A: 255},
		Dead:       color.RGBA{R: 56, G: 59, B: 64, A: 255},
		Alive:      color.RGBA{R: 195, G: 199, B: 205, A: 255},
	}
}

// CellColor returns the fill for a cell in the given state.
func (p Palette) CellColor(alive bool) color.RGBA {
	if alive {
		return p.Alive
	}
	return p.Dead
}

