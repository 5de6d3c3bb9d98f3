package core

// Phase is the lifecycle stage of a game.
type Phase string

const (
	PhaseSetup          Phase = "setup"
	PhaseWaiting        Phase = "waiting"
	PhaseCountdownReady Phase = "countdown_ready"
	PhasePlaying        Phase = "playing"
	PhaseFinished       Phase = "finished"
)

// order ranks phases for the forward-only check.
var order = map[Phase]int{
	PhaseSetup:          0,
	PhaseWaiting:        1,
	PhaseCountdownReady: 2,
	PhasePlaying:        3,
	PhaseFinished:       4,
}

// CanAdvanceTo reports whether moving from p to next is a forward step.
// Restart is handled by resetting, never by a transition.
func (p Phase) CanAdvanceTo(next Phase) bool {
	from, ok1 := order[p]
	to, ok2 := order[next]
	return ok1 && ok2 && to > from
}

// Label returns the status line text for the phase.
func (p Phase) Label() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseWaiting:
		return "Waiting for players"
	case PhaseCountdownReady:
		return "Get ready!"
	case PhasePlaying:
		return "Playing"
	case PhaseFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}
