package life

import "torus-life/internal/core"

// Stats summarizes the changes made by one generation.
type Stats struct {
	Births int
	Deaths int
}

// Engine advances a grid by Conway's rule. It keeps its staging buffers
// between calls so steady-state advancing does not allocate.
type Engine struct {
	births []core.CellID
	deaths []core.CellID
}

// NewEngine returns an Engine with staging capacity for the given grid.
func NewEngine(g *core.Grid) *Engine {
	n := 0
	if g != nil {
		n = g.Len()
	}
	return &Engine{
		births: make([]core.CellID, 0, n),
		deaths: make([]core.CellID, 0, n),
	}
}

// Advance computes the next generation of g in place.
//
// Every neighbor count is taken against the pre-advance state. Births and
// deaths are staged and only applied once all cells have been evaluated.
func (e *Engine) Advance(g *core.Grid) Stats {
	e.births = e.births[:0]
	e.deaths = e.deaths[:0]

	cells := g.Cells()
	for i := range cells {
		id := core.CellID(i)
		n := g.LiveNeighborCount(id)
		switch {
		case cells[i].Alive && (n < 2 || n > 3):
			e.deaths = append(e.deaths, id)
		case !cells[i].Alive && n == 3:
			e.births = append(e.births, id)
		}
	}

	for _, id := range e.births {
		cells[id].Alive = true
	}
	for _, id := range e.deaths {
		cells[id].Alive = false
	}
	return Stats{Births: len(e.births), Deaths: len(e.deaths)}
}

// Advance is a convenience that advances g once with a throwaway Engine.
func Advance(g *core.Grid) Stats {
	return NewEngine(g).Advance(g)
}
