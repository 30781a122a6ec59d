package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/rps/components"
)

// constRand always returns the same value.
type constRand float32

func (c constRand) Float32() float32 { return float32(c) }

func agentAt(kind components.Kind, x, y float32) Agent {
	return Agent{
		Pos:        components.Position{X: x, Y: y},
		Vel:        components.Velocity{X: 0, Y: 0},
		Kind:       kind,
		Radius:     10,
		SpeedScale: 1,
	}
}

func finite(v components.Velocity) bool {
	return !math.IsNaN(float64(v.X)) && !math.IsNaN(float64(v.Y)) &&
		!math.IsInf(float64(v.X), 0) && !math.IsInf(float64(v.Y), 0)
}

func TestSteerAlone(t *testing.T) {
	p := DefaultSteeringParams()
	agents := []Agent{agentAt(components.Rock, 50, 50)}
	agents[0].Vel = components.Velocity{X: 1, Y: 0}

	// Jitter of exactly zero leaves the heading untouched.
	got := Steer(0, agents, 0.5, p, constRand(0.5))
	if got != agents[0].Vel {
		t.Errorf("zero jitter: got %+v, want unchanged %+v", got, agents[0].Vel)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		got = Steer(0, agents, 0.5, p, rng)
		if !finite(got) {
			t.Fatalf("iteration %d: non-finite velocity %+v", i, got)
		}
		// Blending a unit heading into a unit heading moves it by at most 2*Blend.
		if hypot(got.X-1, got.Y) > 2*p.Blend+1e-4 {
			t.Errorf("jitter-only step moved heading too far: %+v", got)
		}
	}
}

func TestSteerTowardPrey(t *testing.T) {
	p := DefaultSteeringParams()
	p.Jitter = 0

	agents := []Agent{
		agentAt(components.Rock, 50, 50),
		agentAt(components.Scissors, 150, 50), // prey to the right
	}
	got := Steer(0, agents, 0.6, p, constRand(0.5))
	if math.Abs(float64(got.X-p.Blend)) > 1e-6 || got.Y != 0 {
		t.Errorf("toward prey: got %+v, want (%v, 0)", got, p.Blend)
	}
}

func TestSteerAwayFromPredator(t *testing.T) {
	p := DefaultSteeringParams()
	p.Jitter = 0

	agents := []Agent{
		agentAt(components.Rock, 50, 50),
		agentAt(components.Paper, 50, 150), // predator below
	}
	got := Steer(0, agents, 0.6, p, constRand(0.5))
	if got.X != 0 || math.Abs(float64(got.Y+p.Blend)) > 1e-6 {
		t.Errorf("away from predator: got %+v, want (0, %v)", got, -p.Blend)
	}
}

func TestSteerNearestOnly(t *testing.T) {
	p := DefaultSteeringParams()
	p.Jitter = 0

	// Rock sees two scissors; only the nearer one (left) attracts it.
	agents := []Agent{
		agentAt(components.Rock, 100, 100),
		agentAt(components.Scissors, 300, 100),
		agentAt(components.Scissors, 60, 100),
	}
	got := Steer(0, agents, 0.5, p, constRand(0.5))
	if got.X >= 0 {
		t.Errorf("expected heading toward nearer prey (negative X), got %+v", got)
	}
}

func TestSteerBalance(t *testing.T) {
	p := DefaultSteeringParams()
	p.Jitter = 0

	// Prey and predator both to the right at the same distance: the net
	// pull is aggression - (1 - aggression).
	tests := []struct {
		name       string
		aggression float32
		wantSign   float32
	}{
		{"aggressive", 0.6, 1},
		{"cautious", 0.4, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agents := []Agent{
				agentAt(components.Rock, 50, 50),
				agentAt(components.Scissors, 100, 50),
				agentAt(components.Paper, 100, 50),
			}
			got := Steer(0, agents, tt.aggression, p, constRand(0.5))
			if got.X*tt.wantSign <= 0 {
				t.Errorf("aggression %v: got X=%v, want sign %v", tt.aggression, got.X, tt.wantSign)
			}
		})
	}
}

func TestSteerRepulsion(t *testing.T) {
	p := DefaultSteeringParams()
	p.Jitter = 0

	tests := []struct {
		name   string
		otherX float32
		wantX  float32
	}{
		{"within range", 70, -p.Blend}, // 20px < 3 * 10px
		{"out of range", 90, 0},        // 40px >= 30px
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agents := []Agent{
				agentAt(components.Rock, 50, 50),
				agentAt(components.Rock, tt.otherX, 50),
			}
			got := Steer(0, agents, 0.5, p, constRand(0.5))
			if math.Abs(float64(got.X-tt.wantX)) > 1e-6 || got.Y != 0 {
				t.Errorf("got %+v, want (%v, 0)", got, tt.wantX)
			}
		})
	}
}

func TestSteerCoincidentAgents(t *testing.T) {
	p := DefaultSteeringParams()
	agents := []Agent{
		agentAt(components.Rock, 50, 50),
		agentAt(components.Scissors, 50, 50),
		agentAt(components.Rock, 50, 50),
	}
	rng := rand.New(rand.NewSource(7))
	for i := range agents {
		if got := Steer(i, agents, 0.5, p, rng); !finite(got) {
			t.Errorf("agent %d: non-finite velocity %+v", i, got)
		}
	}
}

func TestSteerBlend(t *testing.T) {
	p := DefaultSteeringParams()
	p.Jitter = 0

	agents := []Agent{
		agentAt(components.Rock, 50, 50),
		agentAt(components.Scissors, 50, 150), // prey straight down
	}
	agents[0].Vel = components.Velocity{X: 1, Y: 0}

	got := Steer(0, agents, 0.5, p, constRand(0.5))
	want := components.Velocity{X: 0.8, Y: 0.2}
	if math.Abs(float64(got.X-want.X)) > 1e-6 || math.Abs(float64(got.Y-want.Y)) > 1e-6 {
		t.Errorf("blend: got %+v, want %+v", got, want)
	}
}

func TestSteerReadsOnlyOthers(t *testing.T) {
	p := DefaultSteeringParams()
	agents := []Agent{
		agentAt(components.Rock, 10, 10),
		agentAt(components.Paper, 40, 10),
		agentAt(components.Scissors, 10, 40),
	}
	before := append([]Agent(nil), agents...)
	Steer(0, agents, 0.5, p, rand.New(rand.NewSource(3)))
	for i := range agents {
		if agents[i] != before[i] {
			t.Errorf("agent %d mutated by Steer", i)
		}
	}
}
