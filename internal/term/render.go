// Package term is a terminal front end built on gocui. Each cell is drawn
// as two characters so the board stays roughly square.
package term

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/logrusorgru/aurora"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/sim"
)

// CellChars is how many terminal columns one cell occupies.
const CellChars = 2

// Renderer turns a grid into colored text.
type Renderer struct {
	au   aurora.Aurora
	live string
	dead string
}

// NewRenderer builds a Renderer for palette. With colors disabled the
// output is plain text.
func NewRenderer(p render.Palette, colors bool) *Renderer {
	au := aurora.NewAurora(colors)
	return &Renderer{
		au:   au,
		live: au.Index(xtermIndex(p.Alive), strings.Repeat("█", CellChars)).String(),
		dead: au.Index(xtermIndex(p.Dead), strings.Repeat("░", CellChars)).String(),
	}
}

// Board renders g row by row, rows separated by newlines.
func (r *Renderer) Board(g *core.Grid) string {
	var b strings.Builder
	for y := 0; y < g.H; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			if g.MustCellAt(x, y).Alive {
				b.WriteString(r.live)
			} else {
				b.WriteString(r.dead)
			}
		}
	}
	return b.String()
}

// Status renders the status pane.
func (r *Renderer) Status(st sim.Status) string {
	mode := r.au.Colorize(st.State.String(), aurora.BlueFg)
	if st.State == sim.Playing {
		mode = r.au.Colorize(st.State.String(), aurora.CyanFg)
	}
	lines := []string{
		r.prop("Mode", "%v", mode),
		r.prop("Generation", "%d", st.Generation),
		r.prop("Live cells", "%d", st.Live),
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+r.au.Colorize(name, aurora.GreenFg).String()+": "+format, values...)
}

// xtermIndex maps c onto the 6x6x6 color cube of 256-color terminals.
func xtermIndex(c color.RGBA) uint8 {
	level := func(v uint8) int { return int(math.Round(float64(v) / 255 * 5)) }
	return uint8(16 + 36*level(c.R) + 6*level(c.G) + level(c.B))
}

// Locator maps terminal view coordinates onto cells.
type Locator struct {
	Size core.Size
}

// CellAt implements interact.Locator for a board view whose origin is the
// top-left cell.
func (l Locator) CellAt(x, y float64) (core.CellID, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	cx, cy := int(x)/CellChars, int(y)
	if cx >= l.Size.W || cy >= l.Size.H {
		return 0, false
	}
	return core.CellID(cy*l.Size.W + cx), true
}
