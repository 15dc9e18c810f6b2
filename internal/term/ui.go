package term

import (
	"errors"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"go.uber.org/zap"

	"torus-life/internal/sim"
	"torus-life/internal/ui"
)

const (
	boardView  = "board"
	statusView = "status"
)

type keyBinding struct {
	key      interface{}
	viewName string
	handler  func(v *gocui.View) error
}

// UI runs a simulation inside a terminal. gocui delivers every event and
// every scheduled frame on its main loop goroutine, so the simulation is
// only touched from there.
type UI struct {
	g        *gocui.Gui
	sim      *sim.Simulation
	renderer *Renderer
	log      *zap.Logger
	fps      int
	done     chan struct{}
}

// New creates the terminal UI. It takes over the terminal until Run returns.
func New(s *sim.Simulation, r *Renderer, fps int, log *zap.Logger) (*UI, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if fps <= 0 {
		fps = 60
	}
	g, err := gocui.NewGui(gocui.Output256)
	if err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	g.Mouse = true

	t := &UI{g: g, sim: s, renderer: r, log: log, fps: fps, done: make(chan struct{})}
	g.SetManagerFunc(t.layout)

	bindings := []keyBinding{
		{gocui.KeyCtrlC, "", t.cmdQuit},
		{'q', "", t.cmdQuit},
		{'p', "", t.cmdKey(sim.KeyTogglePlay)},
		{'.', "", t.cmdKey(sim.KeyStep)},
		{'r', "", t.cmdKey(sim.KeyReset)},
		{'s', "", t.cmdKey(sim.KeyRandomize)},
		{gocui.MouseLeft, boardView, t.cmdMouseClick},
	}
	for _, kb := range bindings {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("bind key %v: %w", kb.key, err)
		}
	}
	return t, nil
}

// Run blocks until the user quits.
func (t *UI) Run() error {
	t.log.Info("terminal ui started", zap.Int("fps", t.fps))
	go t.tick()
	err := t.g.MainLoop()
	close(t.done)
	t.g.Close()
	if err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

// tick schedules one iteration per frame onto the main loop.
func (t *UI) tick() {
	ticker := time.NewTicker(time.Second / time.Duration(t.fps))
	defer ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			t.g.Update(func(g *gocui.Gui) error {
				t.sim.Iterate()
				return t.redraw(g)
			})
		}
	}
}

func (t *UI) layout(g *gocui.Gui) error {
	size := t.sim.Grid().Size()
	right := size.W*CellChars + 1
	if v, err := g.SetView(boardView, 0, 0, right, size.H+1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "life"
	}
	if v, err := g.SetView(statusView, 0, size.H+2, right, size.H+7); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = ui.Help
	}
	return t.redraw(g)
}

func (t *UI) redraw(g *gocui.Gui) error {
	board, err := g.View(boardView)
	if err != nil {
		return err
	}
	board.Clear()
	_, _ = fmt.Fprint(board, t.renderer.Board(t.sim.Grid()))

	if status, err := g.View(statusView); err == nil {
		status.Clear()
		_, _ = fmt.Fprint(status, t.renderer.Status(t.sim.Status()))
	}
	return nil
}

func (t *UI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *UI) cmdKey(k sim.Key) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		t.sim.KeyDown(k)
		return t.redraw(t.g)
	}
}

// cmdMouseClick is a press and release: the terminal reports no motion
// events, so drags cannot paint here.
func (t *UI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	x, y := float64(cx+ox)+0.5, float64(cy+oy)+0.5
	t.sim.PointerDown(sim.ButtonLeft, x, y)
	t.sim.PointerUp(sim.ButtonLeft)
	return t.redraw(t.g)
}
