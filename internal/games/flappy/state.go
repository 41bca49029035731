package flappy

// Phase is the round lifecycle: Started -> Running -> Over -> Started.
type Phase int

const (
	PhaseStarted Phase = iota // Bird waits for the first flap
	PhaseRunning              // World scrolls, physics and collisions run
	PhaseOver                 // Bird exploded, waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStarted:
		return "started"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}
