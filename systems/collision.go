package systems

import "github.com/pthm-cable/rps/components"

// Conversion records one agent changing kind on contact.
type Conversion struct {
	Index int // index into the agent slice
	From  components.Kind
	To    components.Kind
}

// ResolveCollisions examines every unordered pair once and, where two agents
// overlap, converts the prey of the pair to its predator's kind. Conversions
// are appended to dst and returned.
//
// Pairs are visited in slice order and kinds are updated immediately, so an
// agent converted early in the scan takes part in later pairs with its new
// kind. Several conversions in one tick therefore depend on the order of the
// slice; this is accepted and not corrected.
func ResolveCollisions(agents []Agent, dst []Conversion) []Conversion {
	n := len(agents)
	for i := 0; i < n; i++ {
		a := &agents[i]
		for j := i + 1; j < n; j++ {
			b := &agents[j]
			reach := a.Radius + b.Radius
			if distanceSq(a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y) >= reach*reach {
				continue
			}
			switch {
			case a.Kind.IsPreyOf(b.Kind):
				dst = append(dst, Conversion{Index: i, From: a.Kind, To: b.Kind})
				a.Kind = b.Kind
			case b.Kind.IsPreyOf(a.Kind):
				dst = append(dst, Conversion{Index: j, From: b.Kind, To: a.Kind})
				b.Kind = a.Kind
			}
		}
	}
	return dst
}
