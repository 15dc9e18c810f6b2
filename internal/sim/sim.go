// Package sim ties the clock, rule engine and interaction controller into a
// single owned simulation driven once per frame by a front end.
package sim

import (
	"fmt"

	"go.uber.org/zap"

	"torus-life/internal/core"
	"torus-life/internal/interact"
	"torus-life/internal/life"
	"torus-life/internal/seed"
)

// State is the play state of a simulation.
type State int

const (
	Paused State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// ButtonMask is a set of held pointer buttons.
type ButtonMask uint8

// MaskLeft is the mask with only the left button held.
const MaskLeft ButtonMask = 1 << ButtonLeft

// Mask returns b as a single-button mask.
func (b Button) Mask() ButtonMask { return 1 << b }

// Key is a simulation command bound to a key by the front end.
type Key int

const (
	KeyNone Key = iota
	KeyTogglePlay
	KeyStep
	KeyReset
	KeyRandomize
)

// Options configures a Simulation.
type Options struct {
	Size         core.Size
	Rate         float64
	StartPlaying bool
	Seed         int64
	Fill         seed.Options
}

// Status is a snapshot for status displays.
type Status struct {
	State      State
	Generation int
	Live       int
	Pending    bool
}

// Simulation owns every piece of mutable state. All methods must be called
// from a single goroutine.
type Simulation struct {
	grid       *core.Grid
	engine     *life.Engine
	clock      *core.Clock
	time       core.TimeSource
	controller *interact.Controller
	log        *zap.Logger

	playing       bool
	stepRequested bool
	generation    int

	seed int64
	fill seed.Options
}

// New builds a paused (unless opts.StartPlaying) simulation with an empty
// board. The locator maps pointer positions to cells.
func New(opts Options, src core.TimeSource, locator interact.Locator, log *zap.Logger) (*Simulation, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if src == nil {
		src = core.NewMonotonicSource()
	}
	g, err := core.NewGrid(opts.Size.W, opts.Size.H)
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	return &Simulation{
		grid:       g,
		engine:     life.NewEngine(g),
		clock:      core.NewClock(opts.Rate, src.Frequency(), src.Now()),
		time:       src,
		controller: interact.NewController(g, locator, log),
		log:        log,
		playing:    opts.StartPlaying,
		seed:       opts.Seed,
		fill:       opts.Fill,
	}, nil
}

// Grid exposes the board for render queries.
func (s *Simulation) Grid() *core.Grid { return s.grid }

// Clock exposes the step clock.
func (s *Simulation) Clock() *core.Clock { return s.clock }

// State returns the current play state.
func (s *Simulation) State() State {
	if s.playing {
		return Playing
	}
	return Paused
}

// Status returns a snapshot of the counters.
func (s *Simulation) Status() Status {
	return Status{
		State:      s.State(),
		Generation: s.generation,
		Live:       s.grid.LiveCount(),
		Pending:    s.stepRequested,
	}
}

// TogglePlay flips between playing and paused.
func (s *Simulation) TogglePlay() {
	s.playing = !s.playing
	s.log.Info("play state changed", zap.Stringer("state", s.State()))
}

// Play starts advancing on every due tick.
func (s *Simulation) Play() { s.playing = true }

// Pause stops automatic advancing.
func (s *Simulation) Pause() { s.playing = false }

// RequestStep schedules one extra generation on the next due tick. Repeated
// requests before then still yield a single generation.
func (s *Simulation) RequestStep() { s.stepRequested = true }

// Reset kills every cell. The play state is kept.
func (s *Simulation) Reset() {
	s.grid.ResetAllToDead()
	s.generation = 0
	s.controller.DragEnd()
	s.log.Info("board reset")
}

// Randomize refills the board from the next seed in sequence.
func (s *Simulation) Randomize() {
	s.RandomizeWith(s.seed)
	s.seed++
}

// RandomizeWith refills the board deterministically from seed.
func (s *Simulation) RandomizeWith(value int64) {
	seed.Fill(s.grid, value, s.fill)
	s.generation = 0
	s.controller.DragEnd()
	s.log.Info("board randomized", zap.Int64("seed", value), zap.String("mode", string(s.fill.Mode)), zap.Int("live", s.grid.LiveCount()))
}

// PointerDown handles a button press at a screen position. A left press
// pauses, toggles the cell under the pointer and starts a drag from it.
func (s *Simulation) PointerDown(b Button, x, y float64) {
	if b != ButtonLeft {
		return
	}
	s.playing = false
	s.controller.PointerDown(x, y)
}

// PointerMove handles motion. Only a drag with exactly the left button
// held paints.
func (s *Simulation) PointerMove(x, y float64, held ButtonMask) {
	if held != MaskLeft {
		return
	}
	s.playing = false
	s.controller.DragMotion(x, y)
}

// PointerUp ends a drag.
func (s *Simulation) PointerUp(b Button) {
	if b == ButtonLeft {
		s.controller.DragEnd()
	}
}

// KeyDown dispatches a command key.
func (s *Simulation) KeyDown(k Key) {
	switch k {
	case KeyTogglePlay:
		s.TogglePlay()
	case KeyStep:
		s.RequestStep()
	case KeyReset:
		s.Reset()
	case KeyRandomize:
		s.Randomize()
	}
}

// Iterate runs the per-frame protocol against the current time.
func (s *Simulation) Iterate() bool {
	return s.IterateAt(s.time.Now())
}

// IterateAt ticks the clock at now and advances one generation when a step
// is due and the simulation is playing or a single step is pending. The
// clock keeps running while paused so resuming does not burst.
func (s *Simulation) IterateAt(now uint64) bool {
	due := s.clock.Tick(now)
	if !due || !(s.playing || s.stepRequested) {
		return false
	}
	s.stepRequested = false
	stats := s.engine.Advance(s.grid)
	s.generation++
	s.log.Debug("generation advanced",
		zap.Int("generation", s.generation),
		zap.Int("births", stats.Births),
		zap.Int("deaths", stats.Deaths))
	return true
}
