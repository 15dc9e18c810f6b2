//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/sim"
	"torus-life/internal/ui"
)

var keyBindings = map[ebiten.Key]sim.Key{
	ebiten.KeyP:      sim.KeyTogglePlay,
	ebiten.KeyPeriod: sim.KeyStep,
	ebiten.KeyR:      sim.KeyReset,
	ebiten.KeyS:      sim.KeyRandomize,
}

var mouseButtons = map[ebiten.MouseButton]sim.Button{
	ebiten.MouseButtonLeft:   sim.ButtonLeft,
	ebiten.MouseButtonMiddle: sim.ButtonMiddle,
	ebiten.MouseButtonRight:  sim.ButtonRight,
}

// Game adapts a simulation to the ebiten.Game interface.
type Game struct {
	sim     *sim.Simulation
	layout  *render.Layout
	palette render.Palette
	hud     *ui.HUD
	overlay *ui.Overlay

	lastX, lastY int
}

// New constructs a Game for the provided simulation. The layout must be
// the same one the simulation uses to locate cells.
func New(s *sim.Simulation, layout *render.Layout, palette render.Palette, showHUD bool) *Game {
	g := &Game{
		sim:     s,
		layout:  layout,
		palette: palette,
		overlay: ui.NewOverlay(s.Grid(), layout),
	}
	if showHUD {
		g.hud = ui.NewHUD(s)
	}
	g.lastX, g.lastY = ebiten.CursorPosition()
	return g
}

// Update handles input and runs one simulation iteration per frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, cmd := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			g.sim.KeyDown(cmd)
		}
	}
	g.handlePointer()
	g.overlay.Update()

	g.sim.Iterate()
	return nil
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	var held sim.ButtonMask
	for eb, b := range mouseButtons {
		if ebiten.IsMouseButtonPressed(eb) {
			held |= b.Mask()
		}
		if inpututil.IsMouseButtonJustPressed(eb) {
			g.sim.PointerDown(b, x, y)
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			g.sim.PointerUp(b)
		}
	}

	if mx != g.lastX || my != g.lastY {
		g.sim.PointerMove(x, y, held)
		g.lastX, g.lastY = mx, my
	}
}

// Draw renders the board: every cell as a filled rect in the dead color,
// live cells in the alive color, with the background showing through gaps.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)
	g.layout.Each(g.sim.Grid(), func(c *core.Cell, r render.Rect) {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, g.palette.CellColor(c.Alive), false)
	})
	g.overlay.Draw(screen)
	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.ScreenSize()
}
