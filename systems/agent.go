// Package systems contains the per-tick simulation logic: steering,
// integration, collision/conversion and population tracking.
package systems

import "github.com/pthm-cable/rps/components"

// Rand is the randomness source used by steering, drift and bursts.
// *math/rand.Rand satisfies it; tests pass a seeded source.
type Rand interface {
	Float32() float32
}

// Agent is a flat copy of one agent's state for a tick.
// The game builds a slice of these from the ECS world, runs the systems over
// it, and writes the results back.
type Agent struct {
	Pos        components.Position
	Vel        components.Velocity
	Kind       components.Kind
	Radius     float32
	SpeedScale float32
}

// Bounds represents the arena size in pixels.
type Bounds struct {
	Width, Height float32
}
