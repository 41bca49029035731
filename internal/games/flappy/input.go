package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// intent is what the player asked for this frame, already filtered by phase.
type intent struct {
	Start   bool // Leave Started
	Flap    bool // Apply a flap impulse
	Restart bool // Leave Over
	Pause   bool // Toggle pause
}

// mapInput turns raw actions into the intents valid in phase p.
// The press that starts a round also flaps, so the bird lifts off at once.
// Restart accepts a held jump key, so holding it through a crash restarts.
func mapInput(p Phase, in core.InputFrame) intent {
	var it intent
	switch p {
	case PhaseStarted:
		it.Start = in.Has(core.ActionJump)
		it.Flap = it.Start
	case PhaseRunning:
		it.Flap = in.Has(core.ActionJump)
		it.Pause = in.Has(core.ActionPause)
	case PhaseOver:
		it.Restart = in.Held(core.ActionJump) || in.Has(core.ActionRestart)
	}
	return it
}
