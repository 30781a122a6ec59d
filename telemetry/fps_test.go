package telemetry

import (
	"testing"
	"time"
)

func TestFPSMonitor(t *testing.T) {
	m := NewFPSMonitor(true)
	start := time.Unix(1000, 0)

	// 45 frames across just under a second: no reading yet.
	for i := 0; i < 45; i++ {
		m.Update(start.Add(time.Duration(i) * 22 * time.Millisecond))
	}
	if m.FPS() != 0 {
		t.Errorf("FPS() before a full second = %d, want 0", m.FPS())
	}

	m.Update(start.Add(time.Second))
	if m.FPS() != 46 {
		t.Errorf("FPS() = %d, want 46", m.FPS())
	}
	if m.Low() {
		t.Error("46 fps should not be flagged low")
	}
}

func TestFPSMonitorLowAndToggle(t *testing.T) {
	m := NewFPSMonitor(true)
	start := time.Unix(0, 0)
	for i := 0; i <= 20; i++ {
		m.Update(start.Add(time.Duration(i) * 50 * time.Millisecond))
	}
	if m.FPS() != 21 || !m.Low() {
		t.Errorf("FPS() = %d low=%v, want 21 low", m.FPS(), m.Low())
	}

	m.Toggle()
	if m.Enabled() {
		t.Fatal("Toggle should disable")
	}
	m.Update(start.Add(10 * time.Second))
	if m.FPS() != 21 {
		t.Error("disabled monitor should keep its last reading")
	}
}
