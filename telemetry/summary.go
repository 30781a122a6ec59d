package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/rps/components"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// KindSummary describes one kind's population over a run.
type KindSummary struct {
	Mean  float64
	Std   float64
	Peak  int
	Final int
}

// Summary describes a whole run's series.
type Summary struct {
	Ticks       int
	DurationSec float64
	Kinds       [components.NumKinds]KindSummary
}

// Summarize computes per-kind statistics over samples.
// Standard deviation is zero with fewer than two samples.
func Summarize(samples []Sample) Summary {
	var sum Summary
	sum.Ticks = len(samples)
	if len(samples) == 0 {
		return sum
	}
	sum.DurationSec = samples[len(samples)-1].Elapsed - samples[0].Elapsed

	values := make([]float64, len(samples))
	for _, k := range components.Kinds {
		for i, s := range samples {
			values[i] = float64(s.Count(k))
		}
		ks := KindSummary{
			Peak:  int(floats.Max(values)),
			Final: samples[len(samples)-1].Count(k),
		}
		if len(values) > 1 {
			ks.Mean, ks.Std = stat.MeanStdDev(values, nil)
		} else {
			ks.Mean = values[0]
		}
		sum.Kinds[k] = ks
	}
	return sum
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("ticks", s.Ticks),
		slog.Float64("duration_sec", s.DurationSec),
	}
	for _, k := range components.Kinds {
		ks := s.Kinds[k]
		attrs = append(attrs,
			slog.Float64(k.String()+"_mean", ks.Mean),
			slog.Float64(k.String()+"_std", ks.Std),
			slog.Int(k.String()+"_peak", ks.Peak),
		)
	}
	return slog.GroupValue(attrs...)
}

// RunRecord is one row of runs.csv.
type RunRecord struct {
	RunID       string  `csv:"run_id"`
	Seed        int64   `csv:"seed"`
	Winner      string  `csv:"winner"`
	Ticks       int     `csv:"ticks"`
	DurationSec Seconds `csv:"duration_sec"`
	Conversions int     `csv:"conversions"`

	RockMean     float64 `csv:"rock_mean"`
	RockStd      float64 `csv:"rock_std"`
	RockPeak     int     `csv:"rock_peak"`
	PaperMean    float64 `csv:"paper_mean"`
	PaperStd     float64 `csv:"paper_std"`
	PaperPeak    int     `csv:"paper_peak"`
	ScissorsMean float64 `csv:"scissors_mean"`
	ScissorsStd  float64 `csv:"scissors_std"`
	ScissorsPeak int     `csv:"scissors_peak"`
}

// Record flattens a summary into a runs.csv row.
func (s Summary) Record(runID string, seed int64, winner components.Kind, conversions int) RunRecord {
	rock := s.Kinds[components.Rock]
	paper := s.Kinds[components.Paper]
	scissors := s.Kinds[components.Scissors]
	return RunRecord{
		RunID:        runID,
		Seed:         seed,
		Winner:       winner.String(),
		Ticks:        s.Ticks,
		DurationSec:  Seconds(s.DurationSec),
		Conversions:  conversions,
		RockMean:     rock.Mean,
		RockStd:      rock.Std,
		RockPeak:     rock.Peak,
		PaperMean:    paper.Mean,
		PaperStd:     paper.Std,
		PaperPeak:    paper.Peak,
		ScissorsMean: scissors.Mean,
		ScissorsStd:  scissors.Std,
		ScissorsPeak: scissors.Peak,
	}
}
