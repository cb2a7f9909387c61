package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate their own input events into actions so the simulation never
// sees a key code.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, h, a - shift piece left
	ActionRight           // Right arrow, l, d - shift piece right
	ActionRotate          // Up arrow, r, w, k - rotate clockwise
	ActionSoftDrop        // Down arrow, s, j - accelerate gravity
	ActionPause           // P - pause/unpause game
	ActionRestart         // r, Enter - restart game after game over
	ActionQuit            // Esc, Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for the player during one simulation tick.
// It counts every time an action was triggered during this frame, so two
// presses that land between ticks are not merged.
type InputFrame struct {
	// Actions maps action types to how often they were triggered this frame.
	Actions map[Action]int
}

// NewInputFrame creates an input frame with each given action triggered once
// per occurrence.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{
		Actions: make(map[Action]int),
	}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set records one trigger of an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how often the given action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
