package components

// Body holds physical properties of an agent.
type Body struct {
	Radius float32 // collision and visual radius
}
