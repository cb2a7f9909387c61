package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// epoch anchors the simulated clock. Only differences between instants
// matter, so any fixed value keeps replays deterministic.
var epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Game drives a Simulation from fixed-rate ticks and semantic input frames.
// It owns the fall-interval policy: soft drop shortens the interval while
// active, otherwise the configured normal interval applies.
type Game struct {
	cfg config.TetrisConfig
	sim *Simulation

	tickRate int
	tick     uint64
	clock    time.Time

	// Screen dimensions
	screenW int
	screenH int

	paused        bool
	tooSmall      bool
	softDropTicks int // remaining ticks of soft drop after the last press
}

// New creates a game using cfg for gravity and layout settings.
func New(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new game with a fresh empty grid.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.clock = epoch
	g.paused = false
	g.softDropTicks = 0
	g.sim = NewSimulation(g.clock, NewRandSource(rc.Seed),
		WithFallInterval(g.cfg.Gravity.FallInterval))
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize adapts the layout to a new screen size without touching the
// simulation.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the playfield.
func (g *Game) checkScreenSize() {
	minW, minH := g.boardSize()
	minH += hudHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick: input first, then gravity. Moves and
// rotations are applied once per recorded press.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.sim.Over() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		// The simulated clock stands still so gravity resumes where it left off.
		return core.StepResult{State: g.State()}
	}

	g.clock = g.clock.Add(time.Second / time.Duration(g.tickRate))

	for range in.Count(core.ActionLeft) {
		g.sim.MoveHorizontal(-1)
	}
	for range in.Count(core.ActionRight) {
		g.sim.MoveHorizontal(1)
	}
	if in.Has(core.ActionSoftDrop) {
		g.softDropTicks = g.cfg.Gravity.SoftDropHold
	}
	if g.softDropTicks > 0 {
		g.sim.SetFallInterval(g.cfg.Gravity.SoftDropInterval)
		g.softDropTicks--
	} else {
		g.sim.SetFallInterval(g.cfg.Gravity.FallInterval)
	}
	for range in.Count(core.ActionRotate) {
		g.sim.Rotate()
	}

	res := g.sim.Tick(g.clock)
	return core.StepResult{
		State:   g.State(),
		Locked:  res.Locked,
		Cleared: res.Cleared,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.sim != nil && g.sim.Over(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Simulation exposes the underlying simulation for read-only inspection.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Ticks returns the number of Step calls since the last Reset.
func (g *Game) Ticks() uint64 {
	return g.tick
}
