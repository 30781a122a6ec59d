// Package components defines ECS components for the simulation.
package components

// Position represents an agent's arena position in pixels.
type Position struct {
	X, Y float32
}

// Velocity is an agent's heading vector. It is not kept at unit length;
// bursts and blending change its magnitude.
type Velocity struct {
	X, Y float32
}

// Motion holds per-agent movement scaling fixed at creation.
type Motion struct {
	SpeedScale float32 // multiplier applied on top of the global speed multiplier
}

// Species holds an agent's current kind. It changes on conversion.
type Species struct {
	Kind Kind
}

// ConvertTo reassigns the agent's kind. Position and velocity are untouched.
func (s *Species) ConvertTo(k Kind) {
	s.Kind = k
}
