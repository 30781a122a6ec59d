package systems

import (
	"testing"

	"github.com/pthm-cable/rps/components"
)

func TestCount(t *testing.T) {
	agents := []Agent{
		agentAt(components.Rock, 0, 0),
		agentAt(components.Rock, 0, 0),
		agentAt(components.Scissors, 0, 0),
	}
	c := Count(agents)
	if c.Of(components.Rock) != 2 || c.Of(components.Paper) != 0 || c.Of(components.Scissors) != 1 {
		t.Errorf("census = %v, want [2 0 1]", c)
	}
	if c.Total() != 3 {
		t.Errorf("Total() = %d, want 3", c.Total())
	}
	if c.Present() != 2 {
		t.Errorf("Present() = %d, want 2", c.Present())
	}
}

func TestCensusSole(t *testing.T) {
	tests := []struct {
		name   string
		census Census
		want   components.Kind
		ok     bool
	}{
		{"empty", Census{}, 0, false},
		{"mixed", Census{1, 2, 0}, 0, false},
		{"all paper", Census{0, 20, 0}, components.Paper, true},
		{"all scissors", Census{0, 0, 1}, components.Scissors, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.census.Sole()
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Sole() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestWinTrackerEdgeTriggered(t *testing.T) {
	var w WinTracker

	if _, ok := w.Observe(Census{3, 2, 1}); ok {
		t.Fatal("mixed census should not decide a winner")
	}
	if _, ok := w.Winner(); ok {
		t.Fatal("no winner expected yet")
	}

	k, ok := w.Observe(Census{0, 6, 0})
	if !ok || k != components.Paper {
		t.Fatalf("first sole observation = (%v, %v), want (paper, true)", k, ok)
	}

	// Repeated observations, including a different sole kind, never re-fire.
	for i, c := range []Census{{0, 6, 0}, {0, 6, 0}, {6, 0, 0}} {
		if _, ok := w.Observe(c); ok {
			t.Errorf("observation %d re-fired the win", i)
		}
	}
	if k, ok := w.Winner(); !ok || k != components.Paper {
		t.Errorf("Winner() = (%v, %v), want (paper, true)", k, ok)
	}

	w.Reset()
	if _, ok := w.Winner(); ok {
		t.Error("Reset should clear the winner")
	}
	if k, ok := w.Observe(Census{0, 0, 4}); !ok || k != components.Scissors {
		t.Errorf("after reset = (%v, %v), want (scissors, true)", k, ok)
	}
}
