package game

// Phase is the simulation's lifecycle state.
type Phase uint8

const (
	// PhaseIdle: interaction disabled, agents drift.
	PhaseIdle Phase = iota
	// PhaseRunning: steering and collisions active.
	PhaseRunning
	// PhaseFinished: a winner is recorded, agents drift.
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// interactive reports whether steering and collisions run in this phase.
func (p Phase) interactive() bool {
	return p == PhaseRunning
}
