package systems

import "github.com/pthm-cable/rps/components"

// Census holds live agent counts per kind, indexed by components.Kind.
type Census [components.NumKinds]int

// Count tallies agents by kind.
func Count(agents []Agent) Census {
	var c Census
	for i := range agents {
		if agents[i].Kind.Valid() {
			c[agents[i].Kind]++
		}
	}
	return c
}

// Of returns the count for one kind.
func (c Census) Of(k components.Kind) int {
	return c[k]
}

// Total returns the number of agents counted.
func (c Census) Total() int {
	return c[components.Rock] + c[components.Paper] + c[components.Scissors]
}

// Present returns how many kinds have at least one agent.
func (c Census) Present() int {
	n := 0
	for _, v := range c {
		if v > 0 {
			n++
		}
	}
	return n
}

// Sole returns the only kind present, if exactly one kind remains.
func (c Census) Sole() (components.Kind, bool) {
	if c.Present() != 1 {
		return 0, false
	}
	for _, k := range components.Kinds {
		if c[k] > 0 {
			return k, true
		}
	}
	return 0, false
}

// WinTracker records the first kind to be left alone in the arena.
// The transition fires once; later observations never change the winner
// until Reset.
type WinTracker struct {
	winner  components.Kind
	decided bool
}

// Observe checks a census and reports a newly decided winner. It returns
// true only for the observation that sets the winner.
func (w *WinTracker) Observe(c Census) (components.Kind, bool) {
	if w.decided {
		return w.winner, false
	}
	k, ok := c.Sole()
	if !ok {
		return 0, false
	}
	w.winner = k
	w.decided = true
	return k, true
}

// Winner returns the recorded winner, if any.
func (w *WinTracker) Winner() (components.Kind, bool) {
	return w.winner, w.decided
}

// Reset clears the winner.
func (w *WinTracker) Reset() {
	*w = WinTracker{}
}
