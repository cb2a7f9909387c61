package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Default gravity intervals.
const (
	DefaultFallInterval     = 500 * time.Millisecond
	DefaultSoftDropInterval = 50 * time.Millisecond
)

// TickResult describes what a call to Tick did.
type TickResult struct {
	Moved   bool // piece descended one row
	Locked  bool // piece could not descend and was locked
	Cleared int  // rows removed by that lock
}

// Option configures a Simulation at construction.
type Option func(*Simulation)

// WithFallInterval sets the initial gravity interval.
func WithFallInterval(d time.Duration) Option {
	return func(s *Simulation) {
		s.fallInterval = d
	}
}

// WithGrid starts the simulation on a pre-filled playfield.
func WithGrid(g Grid) Option {
	return func(s *Simulation) {
		s.grid = g
	}
}

// Simulation is the game state: the playfield, the current piece and the
// gravity timer. The current piece always fits the grid, except after the
// game is over, when a fresh piece spawned onto occupied cells.
//
// A Simulation is not safe for concurrent use.
type Simulation struct {
	grid         Grid
	piece        Piece
	src          VariantSource
	lastFall     time.Time
	fallInterval time.Duration
	over         bool
}

// NewSimulation starts a game at time now: the grid (empty unless WithGrid
// is given), one piece drawn from src, and the fall timer starting at now.
func NewSimulation(now time.Time, src VariantSource, opts ...Option) *Simulation {
	s := &Simulation{
		src:          src,
		lastFall:     now,
		fallInterval: DefaultFallInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.spawn()
	return s
}

// spawn replaces the current piece with a fresh one at the spawn origin.
// A piece that does not fit ends the game.
func (s *Simulation) spawn() {
	s.piece = NewPiece(s.src.NextVariant())
	if !s.piece.Fits(&s.grid) {
		s.over = true
	}
}

// TryMove shifts the current piece by (dx, dy) if the destination fits.
// It reports whether the move was committed.
func (s *Simulation) TryMove(dx, dy int) bool {
	if s.over {
		return false
	}
	if !CanPlace(&s.grid, s.piece.Shape, s.piece.X+dx, s.piece.Y+dy) {
		return false
	}
	s.piece.X += dx
	s.piece.Y += dy
	return true
}

// MoveHorizontal shifts the piece one column in the direction of dir's
// sign. A zero dir is rejected.
func (s *Simulation) MoveHorizontal(dir int) bool {
	switch {
	case dir < 0:
		return s.TryMove(-1, 0)
	case dir > 0:
		return s.TryMove(1, 0)
	default:
		return false
	}
}

// Rotate turns the piece clockwise about its bounding-box corner, keeping
// the origin. The rotation is committed only if the result fits; no
// alternate offsets are tried.
func (s *Simulation) Rotate() bool {
	if s.over {
		return false
	}
	candidate := s.piece.Shape.Rotate()
	if !CanPlace(&s.grid, candidate, s.piece.X, s.piece.Y) {
		return false
	}
	s.piece.Shape = candidate
	return true
}

// lock copies the piece into the grid, clears complete rows and spawns the
// next piece. Cells above the field are dropped. It returns the number of
// cleared rows.
func (s *Simulation) lock() int {
	cell := Filled(s.piece.Variant)
	for _, p := range s.piece.Cells() {
		if p.Y >= 0 {
			s.grid.Set(p.Y, p.X, cell)
		}
	}
	cleared := s.grid.ClearRows()
	s.spawn()
	return cleared
}

// Tick applies gravity. Once the fall interval has elapsed since the last
// fall, the piece moves down one row, or locks if it cannot. Either way the
// fall timer restarts at now.
func (s *Simulation) Tick(now time.Time) TickResult {
	if s.over || now.Sub(s.lastFall) < s.fallInterval {
		return TickResult{}
	}
	s.lastFall = now

	if s.TryMove(0, 1) {
		return TickResult{Moved: true}
	}
	return TickResult{Locked: true, Cleared: s.lock()}
}

// SetFallInterval changes the gravity interval used by subsequent ticks.
func (s *Simulation) SetFallInterval(d time.Duration) {
	s.fallInterval = d
}

// FallInterval returns the current gravity interval.
func (s *Simulation) FallInterval() time.Duration {
	return s.fallInterval
}

// Over reports whether a spawned piece failed to fit. Once over, every
// mutator is a rejected no-op.
func (s *Simulation) Over() bool {
	return s.over
}

// Grid returns a copy of the playfield.
func (s *Simulation) Grid() Grid {
	return s.grid
}

// CellAt returns the variant locked at (row, col), or false if empty.
func (s *Simulation) CellAt(row, col int) (Variant, bool) {
	return s.grid.At(row, col).Variant()
}

// Piece returns a copy of the current piece.
func (s *Simulation) Piece() Piece {
	return s.piece
}

// PieceCells returns the absolute cells of the current piece.
func (s *Simulation) PieceCells() []core.Point {
	return s.piece.Cells()
}
