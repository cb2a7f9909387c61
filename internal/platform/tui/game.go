package tui

import "github.com/vovakirdan/tui-tetris/internal/core"

// Game is what the platform drives. Games contain pure logic with no Bubble
// Tea dependency; the platform handles input mapping, timing and display.
type Game interface {
	// ID returns a unique identifier for this game (e.g. "tetris").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game state.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts the layout to a new screen size, keeping game state.
	Resize(w, h int)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (game over, paused).
	State() core.GameState
}

// Factory creates a new game instance, one per session.
type Factory func() Game
