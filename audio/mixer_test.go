package audio

import (
	"math"
	"testing"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/config"
	"github.com/pthm-cable/rps/systems"
)

func TestTargetGain(t *testing.T) {
	m := NewMixer(config.Default())

	tests := []struct {
		ratio float64
		want  float64
	}{
		{0, 0},
		{1.0 / 3, 0},
		{0.5, 0},
		{0.75, 0.25},
		{1, 0.5},
	}
	for _, tt := range tests {
		if got := m.TargetGain(tt.ratio); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("TargetGain(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestPlaybackRate(t *testing.T) {
	m := NewMixer(config.Default())

	tests := []struct {
		speed float64
		want  float64
	}{
		{0.1, 0.95 + 0.25*0.2},  // t=0: eased 0.25
		{1.55, 0.95 + 0.5*0.2},  // t=0.5: eased 0.5
		{3.0, 0.95 + 0.75*0.2},  // t=1: eased 0.75
	}
	for _, tt := range tests {
		if got := m.PlaybackRate(tt.speed); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("PlaybackRate(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestUpdateEasesGains(t *testing.T) {
	m := NewMixer(config.Default())
	dominant := systems.Census{0, 10, 0}

	m.Update(dominant, 1)
	// One step of 5% toward 0.5.
	if got := m.Gain(components.Paper); math.Abs(got-0.025) > 1e-9 {
		t.Errorf("paper gain after one update = %v, want 0.025", got)
	}
	if m.Gain(components.Rock) != 0 {
		t.Errorf("rock gain = %v, want 0", m.Gain(components.Rock))
	}

	for i := 0; i < 500; i++ {
		m.Update(dominant, 1)
	}
	if got := m.Gain(components.Paper); math.Abs(got-0.5) > 1e-3 {
		t.Errorf("paper gain should converge to 0.5, got %v", got)
	}

	m.Silence()
	for _, k := range components.Kinds {
		if m.Gain(k) != 0 {
			t.Errorf("%v gain after Silence = %v", k, m.Gain(k))
		}
	}

	before := m.Gain(components.Paper)
	m.Update(systems.Census{}, 1)
	if m.Gain(components.Paper) != before {
		t.Error("empty census should leave gains unchanged")
	}
}

func TestRateOnlyWhileAudible(t *testing.T) {
	m := NewMixer(config.Default())
	counts := systems.Census{3, 3, 3}

	m.Update(counts, 3)
	if m.Rate() != 1 {
		t.Errorf("rate moved while background silent: %v", m.Rate())
	}

	m.Advance(backgroundRampSec)
	if math.Abs(m.BackgroundGain()-0.25) > 1e-9 {
		t.Fatalf("background gain after ramp = %v, want 0.25", m.BackgroundGain())
	}
	m.Update(counts, 3)
	want := 1 + (m.PlaybackRate(3)-1)*0.05
	if math.Abs(m.Rate()-want) > 1e-9 {
		t.Errorf("rate = %v, want %v", m.Rate(), want)
	}
}

func TestCycleBackground(t *testing.T) {
	m := NewMixer(config.Default())
	if m.Track() != 0 || m.TrackLabel() != "Music: 1" {
		t.Errorf("initial track %d %q", m.Track(), m.TrackLabel())
	}

	if f := m.CycleBackground(); f != "assets/background_loop_alt1.wav" {
		t.Errorf("second track = %q", f)
	}
	if m.BackgroundGain() != 0.25 {
		t.Errorf("switched track gain = %v, want 0.25", m.BackgroundGain())
	}

	if f := m.CycleBackground(); f != "" || m.TrackLabel() != "Music: off" {
		t.Errorf("third track = %q %q, want silent", f, m.TrackLabel())
	}
	if m.BackgroundGain() != 0 {
		t.Errorf("silent track gain = %v", m.BackgroundGain())
	}

	m.CycleBackground()
	if m.Track() != 0 {
		t.Errorf("cycle should wrap, got track %d", m.Track())
	}
}
