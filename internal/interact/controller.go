// Package interact turns pointer input into cell edits with drag-paint
// semantics.
package interact

import (
	"go.uber.org/zap"

	"torus-life/internal/core"
)

// Action is an edit applied to a single cell.
type Action int

const (
	// SetAlive makes the cell alive.
	SetAlive Action = iota
	// SetDead makes the cell dead.
	SetDead
	// Toggle flips the cell.
	Toggle
)

func (a Action) String() string {
	switch a {
	case SetAlive:
		return "set-alive"
	case SetDead:
		return "set-dead"
	case Toggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// Locator maps a continuous pointer position to the cell drawn under it.
// It reports false when the point falls outside every cell, including the
// gaps between them.
type Locator interface {
	CellAt(x, y float64) (core.CellID, bool)
}

// Apply performs action on the cell with the given id.
func Apply(g *core.Grid, id core.CellID, action Action) {
	c := g.Cell(id)
	switch action {
	case SetAlive:
		c.Alive = true
	case SetDead:
		c.Alive = false
	case Toggle:
		c.Alive = !c.Alive
	}
}

// Controller tracks the drag anchor between pointer events.
type Controller struct {
	grid    *core.Grid
	locator Locator
	log     *zap.Logger

	anchor   core.CellID
	anchored bool
}

// NewController builds a Controller editing g through locator.
func NewController(g *core.Grid, locator Locator, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{grid: g, locator: locator, log: log}
}

// Anchor returns the cell the current drag started on.
func (c *Controller) Anchor() (core.CellID, bool) { return c.anchor, c.anchored }

// SetCellState applies action to the cell under the pointer, if any.
func (c *Controller) SetCellState(x, y float64, action Action) {
	id, ok := c.locator.CellAt(x, y)
	if !ok {
		return
	}
	cell := c.grid.Cell(id)
	c.log.Debug("selected cell", zap.Int("x", cell.X), zap.Int("y", cell.Y), zap.Stringer("action", action))
	Apply(c.grid, id, action)
}

// DragStart anchors a drag at the cell under the pointer. A press outside
// the grid leaves no anchor.
func (c *Controller) DragStart(x, y float64) {
	c.anchor, c.anchored = c.locator.CellAt(x, y)
}

// DragMotion paints the cell under the pointer with the anchor's state:
// alive anchors paint alive, dead anchors paint dead.
func (c *Controller) DragMotion(x, y float64) {
	if !c.anchored {
		return
	}
	action := SetDead
	if c.grid.Cell(c.anchor).Alive {
		action = SetAlive
	}
	c.SetCellState(x, y, action)
}

// DragEnd drops the anchor.
func (c *Controller) DragEnd() {
	c.anchored = false
}

// PointerDown toggles the cell under the pointer and starts a drag from it,
// so the stroke paints the state the cell has after the toggle.
func (c *Controller) PointerDown(x, y float64) {
	c.SetCellState(x, y, Toggle)
	c.DragStart(x, y)
}
