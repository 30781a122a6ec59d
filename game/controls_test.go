package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/rps/config"
)

func TestPerKindFromDensity(t *testing.T) {
	tests := []struct {
		density int
		want    int
	}{
		{0, 1},
		{1, 2},
		{33, 50},
		{50, 75},
		{100, 150},
		{-20, 1},
		{250, 150},
	}
	for _, tt := range tests {
		if got := PerKindFromDensity(tt.density, 1, 150); got != tt.want {
			t.Errorf("PerKindFromDensity(%d) = %d, want %d", tt.density, got, tt.want)
		}
	}
}

func TestAggressionRatio(t *testing.T) {
	tests := []struct {
		slider int
		want   float64
	}{
		{0, 0.4},
		{60, 0.52},
		{100, 0.6},
		{150, 0.6},
		{-1, 0.4},
	}
	for _, tt := range tests {
		if got := AggressionRatio(tt.slider, 0.4, 0.6); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("AggressionRatio(%d) = %v, want %v", tt.slider, got, tt.want)
		}
	}
}

func TestControlsDefaults(t *testing.T) {
	c := NewControls(config.Default())
	got := c.Active()
	if got.Speed != 1 || got.Aggression != 60 || got.Density != 33 {
		t.Errorf("defaults = %+v, want speed 1 aggression 60 density 33", got)
	}
	if c.PerKind() != 50 {
		t.Errorf("PerKind() = %d, want 50", c.PerKind())
	}
	if math.Abs(float64(c.AggressionRatio())-0.52) > 1e-6 {
		t.Errorf("AggressionRatio() = %v, want 0.52", c.AggressionRatio())
	}
}

func TestControlsStageAndClamp(t *testing.T) {
	c := NewControls(config.Default())

	c.SetSpeed(10)
	c.SetAggression(-5)
	c.SetDensity(100)

	if c.Active().Speed != 1 {
		t.Error("staged speed must not apply before commit")
	}
	staged := c.Staged()
	if staged.Speed != 3 || staged.Aggression != 0 || staged.Density != 100 {
		t.Errorf("staged = %+v, want clamped speed 3 aggression 0 density 100", staged)
	}

	if !c.commit() {
		t.Error("density change should request a resize")
	}
	if c.Active() != staged {
		t.Errorf("active after commit = %+v, want %+v", c.Active(), staged)
	}
	if c.commit() {
		t.Error("second commit without changes should not resize")
	}

	c.SetSpeed(0)
	c.SetSpeed(math.NaN())
	c.commit()
	if c.Active().Speed != 1 {
		t.Errorf("NaN speed should fall back to default, got %v", c.Active().Speed)
	}
}

func TestControlsDensityWithinSameCount(t *testing.T) {
	cfg := config.Default()
	cfg.Controls.MaxPerKind = 11

	c := NewControls(cfg)
	c.SetDensity(0)
	c.commit()

	// 0% and 5% both floor to one agent per kind.
	c.SetDensity(5)
	if c.commit() {
		t.Error("density change within one count step should not resize")
	}
	if c.Active().Density != 5 {
		t.Errorf("density = %d, want 5", c.Active().Density)
	}
}
