package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - flap, and start a round
	ActionRestart        // R - restart after game over
	ActionPause          // P, Escape - pause/unpause game
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// An action can be pressed (went down this frame) and/or held (is down now).
// A pressed action always counts as held.
type InputFrame struct {
	Actions map[Action]bool // pressed this frame
	Holds   map[Action]bool // currently held
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Holds:   make(map[Action]bool),
	}
}

// Set marks an action as pressed (and therefore held) this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.SetHeld(a)
}

// SetHeld marks an action as held without a fresh press.
func (f *InputFrame) SetHeld(a Action) {
	if f.Holds == nil {
		f.Holds = make(map[Action]bool)
	}
	f.Holds[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Held returns true if the given action is down this frame.
func (f InputFrame) Held(a Action) bool {
	return f.Holds[a] || f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Holds)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Holds {
		clone.Holds[k] = v
	}
	return clone
}
