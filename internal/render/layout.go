package render

import (
	"math"

	"torus-life/internal/core"
)

// Rect is a filled cell rectangle in screen space.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r. The right and bottom
// edges are exclusive so adjacent rects never both claim a point.
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.X) && x < float64(r.X+r.W) && y >= float64(r.Y) && y < float64(r.Y+r.H)
}

// Layout places a grid's cells on a screen of a fixed size with a constant
// gap between neighbors. It implements interact.Locator.
type Layout struct {
	cols, rows int
	screenW    float64
	screenH    float64
	gap        float64
	pitchX     float64
	pitchY     float64
	cellW      float64
	cellH      float64
}

// NewLayout fits a cols x rows grid into a screenW x screenH screen.
func NewLayout(size core.Size, screenW, screenH int, gap float64) *Layout {
	l := &Layout{
		cols:    max(size.W, 1),
		rows:    max(size.H, 1),
		screenW: float64(screenW),
		screenH: float64(screenH),
		gap:     math.Max(gap, 0),
	}
	l.pitchX = l.screenW / float64(l.cols)
	l.pitchY = l.screenH / float64(l.rows)
	l.cellW = math.Max(l.pitchX-l.gap, 0)
	l.cellH = math.Max(l.pitchY-l.gap, 0)
	return l
}

// ScreenSize returns the logical screen dimensions.
func (l *Layout) ScreenSize() (int, int) { return int(l.screenW), int(l.screenH) }

// Rect returns the rectangle drawn for the cell at (x, y).
func (l *Layout) Rect(x, y int) Rect {
	return Rect{
		X: float32(l.gap/2 + float64(x)*l.pitchX),
		Y: float32(l.gap/2 + float64(y)*l.pitchY),
		W: float32(l.cellW),
		H: float32(l.cellH),
	}
}

// CellAt returns the cell whose rectangle contains the screen point.
// Points in the gaps or off the board report false.
func (l *Layout) CellAt(x, y float64) (core.CellID, bool) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, false
	}
	cx := int(math.Floor((x - l.gap/2) / l.pitchX))
	cy := int(math.Floor((y - l.gap/2) / l.pitchY))
	if cx < 0 || cx >= l.cols || cy < 0 || cy >= l.rows {
		return 0, false
	}
	if !l.Rect(cx, cy).Contains(x, y) {
		return 0, false
	}
	return core.CellID(cy*l.cols + cx), true
}

// Each calls fn for every cell of g with its screen rectangle, in row-major
// order. It is the query renderers draw from.
func (l *Layout) Each(g *core.Grid, fn func(c *core.Cell, r Rect)) {
	cells := g.Cells()
	for i := range cells {
		c := &cells[i]
		fn(c, l.Rect(c.X, c.Y))
	}
}
