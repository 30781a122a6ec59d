package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/rps/components"
)

func TestSummarize(t *testing.T) {
	samples := []Sample{
		{Tick: 1, Elapsed: 0, Rock: 2, Paper: 2, Scissors: 2},
		{Tick: 2, Elapsed: 1, Rock: 4, Paper: 2, Scissors: 0},
		{Tick: 3, Elapsed: 2, Rock: 6, Paper: 0, Scissors: 0},
	}

	s := Summarize(samples)
	if s.Ticks != 3 {
		t.Errorf("Ticks = %d, want 3", s.Ticks)
	}
	if s.DurationSec != 2 {
		t.Errorf("DurationSec = %v, want 2", s.DurationSec)
	}

	rock := s.Kinds[components.Rock]
	if rock.Mean != 4 || rock.Peak != 6 || rock.Final != 6 {
		t.Errorf("rock = %+v, want mean 4 peak 6 final 6", rock)
	}
	// Sample standard deviation of {2, 4, 6}.
	if math.Abs(rock.Std-2) > 1e-9 {
		t.Errorf("rock std = %v, want 2", rock.Std)
	}

	scissors := s.Kinds[components.Scissors]
	if scissors.Peak != 2 || scissors.Final != 0 {
		t.Errorf("scissors = %+v", scissors)
	}
}

func TestSummarizeShort(t *testing.T) {
	if s := Summarize(nil); s.Ticks != 0 || s.DurationSec != 0 {
		t.Errorf("empty summary = %+v", s)
	}

	s := Summarize([]Sample{{Tick: 1, Rock: 3}})
	if s.Kinds[components.Rock].Mean != 3 || s.Kinds[components.Rock].Std != 0 {
		t.Errorf("single sample summary = %+v", s.Kinds[components.Rock])
	}
}

func TestSummaryRecord(t *testing.T) {
	s := Summarize([]Sample{
		{Tick: 1, Elapsed: 0, Rock: 1, Paper: 1},
		{Tick: 2, Elapsed: 0.5, Paper: 2},
	})
	rec := s.Record("run-1", 42, components.Paper, 1)
	if rec.RunID != "run-1" || rec.Seed != 42 || rec.Winner != "paper" || rec.Conversions != 1 {
		t.Errorf("record = %+v", rec)
	}
	if rec.PaperPeak != 2 || rec.Ticks != 2 {
		t.Errorf("record stats = %+v", rec)
	}
}
