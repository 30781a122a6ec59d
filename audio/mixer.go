// Package audio turns population counts into a loop mix and plays it
// through raylib.
package audio

import (
	"math"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/config"
	"github.com/pthm-cable/rps/systems"
)

// backgroundRampSec is how long the background loop takes to fade in.
const backgroundRampSec = 2.0

// Mixer holds per-kind loop gains and the background playback rate.
// It has no audio device dependency.
type Mixer struct {
	cfg      config.AudioConfig
	speedMin float64
	speedMax float64

	gains [components.NumKinds]float64
	rate  float64

	track      int
	bgGain     float64 // current background gain
	bgTarget   float64 // gain the background ramps toward
	bgRampRate float64 // gain per second while ramping
}

// NewMixer creates a mixer with silent loops and the first background track.
func NewMixer(cfg *config.Config) *Mixer {
	m := &Mixer{
		cfg:      cfg.Audio,
		speedMin: cfg.Controls.SpeedMin,
		speedMax: cfg.Controls.SpeedMax,
		rate:     1,
	}
	m.selectTrack(0)
	return m
}

// TargetGain returns the loop gain for a kind holding ratio of the population.
// Loops are silent up to the fade-in ratio and reach full volume when the
// kind is the whole population.
func (m *Mixer) TargetGain(ratio float64) float64 {
	fade := m.cfg.FadeInRatio
	if fade >= 1 {
		return 0
	}
	target := math.Max(0, (ratio-fade)/(1-fade))
	return math.Min(target*m.cfg.MaxVolume, m.cfg.MaxVolume)
}

// PlaybackRate maps a speed multiplier onto the background loop's rate.
func (m *Mixer) PlaybackRate(speed float64) float64 {
	span := m.speedMax - m.speedMin
	t := 0.5
	if span > 0 {
		t = (speed - m.speedMin) / span
	}
	eased := 0.5 + 0.25*math.Sin((t-0.5)*math.Pi)
	return m.cfg.PlaybackBase + eased*m.cfg.PlaybackSpan
}

// Update eases loop gains toward their targets for the given counts and,
// while the background is audible, eases its rate toward the speed's rate.
// An empty population leaves the mix unchanged.
func (m *Mixer) Update(counts systems.Census, speed float64) {
	total := counts.Total()
	if total == 0 {
		return
	}
	k := m.cfg.Smoothing
	for _, kind := range components.Kinds {
		ratio := float64(counts[kind]) / float64(total)
		m.gains[kind] += (m.TargetGain(ratio) - m.gains[kind]) * k
	}
	if m.bgGain > 0.001 {
		m.rate += (m.PlaybackRate(speed) - m.rate) * k
	}
}

// Advance moves the background fade-in by dt seconds.
func (m *Mixer) Advance(dt float64) {
	if m.bgGain < m.bgTarget {
		m.bgGain = math.Min(m.bgTarget, m.bgGain+m.bgRampRate*dt)
	}
}

// Silence zeroes all kind loops.
func (m *Mixer) Silence() {
	m.gains = [components.NumKinds]float64{}
}

// CycleBackground advances to the next background track and returns its
// file, empty for the silent slot.
func (m *Mixer) CycleBackground() string {
	n := len(m.cfg.BackgroundFiles)
	if n == 0 {
		return ""
	}
	m.selectTrack((m.track + 1) % n)
	return m.TrackFile()
}

func (m *Mixer) selectTrack(i int) {
	m.track = i
	m.bgGain = 0
	m.bgTarget = 0
	if m.TrackFile() != "" {
		m.bgTarget = m.cfg.BackgroundGain
	}
	if i == 0 {
		// The first track fades in; later switches start at full gain.
		m.bgRampRate = m.bgTarget / backgroundRampSec
	} else {
		m.bgGain = m.bgTarget
	}
}

// Gain returns a kind loop's current gain.
func (m *Mixer) Gain(k components.Kind) float64 {
	return m.gains[k]
}

// Rate returns the background playback rate.
func (m *Mixer) Rate() float64 {
	return m.rate
}

// BackgroundGain returns the background loop's current gain.
func (m *Mixer) BackgroundGain() float64 {
	return m.bgGain
}

// Track returns the index of the background track.
func (m *Mixer) Track() int {
	return m.track
}

// TrackFile returns the background track's file, empty when silent.
func (m *Mixer) TrackFile() string {
	if m.track >= len(m.cfg.BackgroundFiles) {
		return ""
	}
	return m.cfg.BackgroundFiles[m.track]
}

// TrackLabel returns a short label for the music button.
func (m *Mixer) TrackLabel() string {
	if m.TrackFile() == "" {
		return "Music: off"
	}
	return "Music: " + string(rune('1'+m.track))
}
