package core

import (
	"errors"
	"fmt"
)

// NeighborCount is the size of a Moore neighborhood.
const NeighborCount = 8

var (
	// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrIndexOutOfBounds reports a coordinate or id outside the grid.
	ErrIndexOutOfBounds = errors.New("cell index out of bounds")
)

// CellID is a stable index into a Grid's flat cell storage.
type CellID int

// Cell is a single grid square. Neighbors are fixed at construction in the
// order left, left-top, left-bottom, right, right-top, right-bottom, top,
// bottom.
type Cell struct {
	X, Y      int
	Alive     bool
	Neighbors [NeighborCount]CellID
}

// Grid stores a fixed W*H toroidal board of cells in row-major order.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates a grid with every cell dead and its neighbor table
// wrapped around the edges.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", w, h, ErrInvalidSize)
	}
	g := &Grid{W: w, H: h, cells: make([]Cell, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			left, right := wrap(x-1, w), wrap(x+1, w)
			top, bottom := wrap(y-1, h), wrap(y+1, h)
			c := &g.cells[g.ID(x, y)]
			c.X, c.Y = x, y
			c.Neighbors = [NeighborCount]CellID{
				g.ID(left, y),
				g.ID(left, top),
				g.ID(left, bottom),
				g.ID(right, y),
				g.ID(right, top),
				g.ID(right, bottom),
				g.ID(x, top),
				g.ID(x, bottom),
			}
		}
	}
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells exposes the backing slice, indexed by CellID.
func (g *Grid) Cells() []Cell { return g.cells }

// ID returns the linear id for coordinates (x, y). It does not bounds check.
func (g *Grid) ID(x, y int) CellID { return CellID(y*g.W + x) }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	return wrap(x, g.W), wrap(y, g.H)
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// CellAt returns the cell at (x, y).
func (g *Grid) CellAt(x, y int) (*Cell, error) {
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("cell (%d,%d) in %dx%d grid: %w", x, y, g.W, g.H, ErrIndexOutOfBounds)
	}
	return &g.cells[g.ID(x, y)], nil
}

// MustCellAt is CellAt for callers whose coordinates come from the grid's
// own geometry. It panics on out-of-range input.
func (g *Grid) MustCellAt(x, y int) *Cell {
	c, err := g.CellAt(x, y)
	if err != nil {
		panic(err)
	}
	return c
}

// Cell returns the cell with the given id. Out-of-range ids panic.
func (g *Grid) Cell(id CellID) *Cell {
	if int(id) < 0 || int(id) >= len(g.cells) {
		panic(fmt.Errorf("cell id %d in %dx%d grid: %w", id, g.W, g.H, ErrIndexOutOfBounds))
	}
	return &g.cells[id]
}

// LiveNeighborCount sums the live cells in the precomputed neighborhood of id.
func (g *Grid) LiveNeighborCount(id CellID) int {
	n := 0
	for _, nb := range g.cells[id].Neighbors {
		if g.cells[nb].Alive {
			n++
		}
	}
	return n
}

// LiveCount returns how many cells are alive.
func (g *Grid) LiveCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Alive {
			n++
		}
	}
	return n
}

// ResetAllToDead kills every cell.
func (g *Grid) ResetAllToDead() {
	for i := range g.cells {
		g.cells[i].Alive = false
	}
}

func wrap(v, n int) int {
	return (v%n + n) % n
}
