package telemetry

import (
	"log/slog"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population counts at window end
	Rock     int `csv:"rock"`
	Paper    int `csv:"paper"`
	Scissors int `csv:"scissors"`

	// Conversions during window, by kind gained and kind lost
	RockGained     int `csv:"rock_gained"`
	PaperGained    int `csv:"paper_gained"`
	ScissorsGained int `csv:"scissors_gained"`
	RockLost       int `csv:"rock_lost"`
	PaperLost      int `csv:"paper_lost"`
	ScissorsLost   int `csv:"scissors_lost"`
	Conversions    int `csv:"conversions"`

	Bursts int `csv:"bursts"`

	// Most numerous kind at window end
	Leader      string  `csv:"leader"`
	LeaderShare float64 `csv:"leader_share"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("rock", s.Rock),
		slog.Int("paper", s.Paper),
		slog.Int("scissors", s.Scissors),
		slog.Int("rock_gained", s.RockGained),
		slog.Int("paper_gained", s.PaperGained),
		slog.Int("scissors_gained", s.ScissorsGained),
		slog.Int("conversions", s.Conversions),
		slog.Int("bursts", s.Bursts),
		slog.String("leader", s.Leader),
		slog.Float64("leader_share", s.LeaderShare),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"rock", s.Rock,
		"paper", s.Paper,
		"scissors", s.Scissors,
		"rock_gained", s.RockGained,
		"paper_gained", s.PaperGained,
		"scissors_gained", s.ScissorsGained,
		"conversions", s.Conversions,
		"bursts", s.Bursts,
		"leader", s.Leader,
		"leader_share", s.LeaderShare,
	)
}
