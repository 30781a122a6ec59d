// Package telemetry records population time series and run statistics and
// writes them to CSV.
package telemetry

import (
	"math"
	"sort"

	"github.com/pthm-cable/rps/components"
)

// Sample is the per-kind population at the end of one tick.
type Sample struct {
	Tick     int32
	Elapsed  float64 // seconds since the run was reset
	Rock     int
	Paper    int
	Scissors int
}

// Count returns the sample's count for one kind.
func (s Sample) Count(k components.Kind) int {
	switch k {
	case components.Rock:
		return s.Rock
	case components.Paper:
		return s.Paper
	case components.Scissors:
		return s.Scissors
	}
	return 0
}

// Counts returns the counts indexed by kind.
func (s Sample) Counts() [components.NumKinds]int {
	return [components.NumKinds]int{s.Rock, s.Paper, s.Scissors}
}

// Series accumulates one sample per tick over a run.
type Series struct {
	samples []Sample
}

// Record appends a sample. Elapsed times are expected to be non-decreasing.
func (s *Series) Record(tick int32, elapsed float64, counts [components.NumKinds]int) {
	s.samples = append(s.samples, Sample{
		Tick:     tick,
		Elapsed:  elapsed,
		Rock:     counts[components.Rock],
		Paper:    counts[components.Paper],
		Scissors: counts[components.Scissors],
	})
}

// Len returns the number of samples recorded.
func (s *Series) Len() int {
	return len(s.samples)
}

// Samples returns the recorded samples. The slice must not be modified.
func (s *Series) Samples() []Sample {
	return s.samples
}

// Last returns the most recent sample.
func (s *Series) Last() (Sample, bool) {
	if len(s.samples) == 0 {
		return Sample{}, false
	}
	return s.samples[len(s.samples)-1], true
}

// Reset drops all samples, keeping capacity.
func (s *Series) Reset() {
	s.samples = s.samples[:0]
}

// Window returns the samples no more than seconds older than the last one.
// A non-positive window returns every sample.
func (s *Series) Window(seconds float64) []Sample {
	return Window(s.samples, seconds)
}

// Window returns the tail of samples within seconds of the final sample.
func Window(samples []Sample, seconds float64) []Sample {
	if seconds <= 0 || len(samples) == 0 {
		return samples
	}
	cutoff := samples[len(samples)-1].Elapsed - seconds
	i := sort.Search(len(samples), func(i int) bool {
		return samples[i].Elapsed >= cutoff
	})
	return samples[i:]
}

// Smooth averages consecutive blocks of n samples. Each output sample keeps
// the tick and time of the first sample in its block and the rounded mean
// counts. The final block may be shorter than n.
func Smooth(samples []Sample, n int) []Sample {
	if n <= 1 {
		return samples
	}
	out := make([]Sample, 0, (len(samples)+n-1)/n)
	for start := 0; start < len(samples); start += n {
		end := min(start+n, len(samples))
		block := samples[start:end]

		var rock, paper, scissors int
		for _, b := range block {
			rock += b.Rock
			paper += b.Paper
			scissors += b.Scissors
		}
		size := float64(len(block))
		out = append(out, Sample{
			Tick:     block[0].Tick,
			Elapsed:  block[0].Elapsed,
			Rock:     int(math.Round(float64(rock) / size)),
			Paper:    int(math.Round(float64(paper) / size)),
			Scissors: int(math.Round(float64(scissors) / size)),
		})
	}
	return out
}
