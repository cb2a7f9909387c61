// Package window holds the frame logic of the windowed frontend: per-frame
// controls, gravity speed and the rectangle layout of the board. The ebiten
// subpackage feeds it real keyboard state and draws the rectangles.
package window

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Controls is the keyboard state sampled for one frame. Left, Right,
// Rotate, Restart and Quit are edge-triggered; SoftDrop is level-triggered.
type Controls struct {
	Left     bool
	Right    bool
	Rotate   bool
	SoftDrop bool
	Restart  bool
	Quit     bool
}

// Session drives one Simulation from wall-clock frames.
type Session struct {
	cfg       config.GravityConfig
	sim       *tetris.Simulation
	newSource func() tetris.VariantSource
	logger    *log.Logger
}

// NewSession starts a game at now. newSource is called for every new game;
// a nil logger discards events.
func NewSession(cfg config.GravityConfig, now time.Time, newSource func() tetris.VariantSource, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		cfg:       cfg,
		newSource: newSource,
		logger:    logger,
	}
	s.reset(now)
	return s
}

func (s *Session) reset(now time.Time) {
	s.sim = tetris.NewSimulation(now, s.newSource(), tetris.WithFallInterval(s.cfg.FallInterval))
}

// Update applies one frame of input and gravity. It reports false once the
// player asked to quit.
func (s *Session) Update(now time.Time, c Controls) bool {
	if c.Quit {
		return false
	}

	if s.sim.Over() {
		if c.Restart {
			s.reset(now)
			s.logger.Debug("game restarted")
		}
		return true
	}

	if c.Left {
		s.sim.MoveHorizontal(-1)
	}
	if c.Right {
		s.sim.MoveHorizontal(1)
	}
	if c.SoftDrop {
		s.sim.SetFallInterval(s.cfg.SoftDropInterval)
	} else {
		s.sim.SetFallInterval(s.cfg.FallInterval)
	}
	if c.Rotate {
		s.sim.Rotate()
	}

	res := s.sim.Tick(now)
	if res.Locked {
		s.logger.Debug("piece locked", "cleared", res.Cleared)
	}
	if s.sim.Over() {
		s.logger.Info("game over")
	}
	return true
}

// Simulation returns the running simulation.
func (s *Session) Simulation() *tetris.Simulation {
	return s.sim
}
