package telemetry

import "time"

// LowFPS is the frame rate below which the FPS readout is flagged.
const LowFPS = 30

// FPSMonitor counts frames per wall-clock second.
type FPSMonitor struct {
	enabled     bool
	fps         int
	frames      int
	windowStart time.Time
}

// NewFPSMonitor creates a monitor, enabled or not.
func NewFPSMonitor(enabled bool) *FPSMonitor {
	return &FPSMonitor{enabled: enabled}
}

// Update counts a frame drawn at now. The reading updates once a full
// second has passed since the current window opened.
func (m *FPSMonitor) Update(now time.Time) {
	if !m.enabled {
		return
	}
	if m.windowStart.IsZero() {
		m.windowStart = now
	}
	m.frames++
	if now.Sub(m.windowStart) >= time.Second {
		m.fps = m.frames
		m.frames = 0
		m.windowStart = now
	}
}

// FPS returns the last completed reading.
func (m *FPSMonitor) FPS() int {
	return m.fps
}

// Low reports whether the last reading is under LowFPS.
func (m *FPSMonitor) Low() bool {
	return m.fps < LowFPS
}

// Enabled reports whether the monitor is counting.
func (m *FPSMonitor) Enabled() bool {
	return m.enabled
}

// Toggle flips counting on or off. A re-enabled monitor starts a fresh window.
func (m *FPSMonitor) Toggle() {
	m.enabled = !m.enabled
	m.frames = 0
	m.windowStart = time.Time{}
}
