package systems

import (
	"math"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/config"
)

// SteeringParams holds the fixed weights of the heading blend.
type SteeringParams struct {
	Jitter          float32 // per-axis random jitter magnitude
	RepulsionRange  float32 // same-kind repulsion radius, in agent radii
	RepulsionWeight float32 // weight of one same-kind neighbor
	Blend           float32 // share of the new heading per tick
}

// DefaultSteeringParams returns the weights used by the original game.
func DefaultSteeringParams() SteeringParams {
	return SteeringParams{
		Jitter:          0.1,
		RepulsionRange:  3,
		RepulsionWeight: 0.5,
		Blend:           0.2,
	}
}

// SteeringParamsFromConfig reads steering weights from config.
func SteeringParamsFromConfig(cfg *config.Config) SteeringParams {
	return SteeringParams{
		Jitter:          float32(cfg.Steering.Jitter),
		RepulsionRange:  float32(cfg.Steering.RepulsionRange),
		RepulsionWeight: float32(cfg.Steering.RepulsionWeight),
		Blend:           float32(cfg.Steering.Blend),
	}
}

// target is the nearest agent of a kind, as seen from the steering agent.
type target struct {
	dx, dy, dist float32
	found        bool
}

// Steer computes the new velocity of agents[self] after one tick of
// prey-seeking, predator-avoidance, same-kind repulsion and jitter.
//
// Only positions and kinds of the other agents are read, so steering every
// agent of a snapshot in turn gives the same result as steering them all at once.
// Agents at exactly the same position carry no direction and are ignored.
func Steer(self int, agents []Agent, aggression float32, p SteeringParams, rng Rand) components.Velocity {
	a := &agents[self]
	prey := a.Kind.Prey()
	predator := a.Kind.Predator()
	crowdRange := a.Radius * p.RepulsionRange

	var nearestPrey, nearestPredator target
	minPrey := float32(math.Inf(1))
	minPredator := float32(math.Inf(1))

	var moveX, moveY float32

	for i := range agents {
		if i == self {
			continue
		}
		o := &agents[i]
		dx := o.Pos.X - a.Pos.X
		dy := o.Pos.Y - a.Pos.Y
		dist := hypot(dx, dy)
		if dist == 0 {
			continue
		}

		switch o.Kind {
		case prey:
			// Strict comparison keeps the first agent found at the minimum distance.
			if dist < minPrey {
				nearestPrey = target{dx: dx, dy: dy, dist: dist, found: true}
				minPrey = dist
			}
		case predator:
			if dist < minPredator {
				nearestPredator = target{dx: dx, dy: dy, dist: dist, found: true}
				minPredator = dist
			}
		case a.Kind:
			if dist < crowdRange {
				moveX -= dx / dist * p.RepulsionWeight
				moveY -= dy / dist * p.RepulsionWeight
			}
		}
	}

	if nearestPrey.found {
		moveX += nearestPrey.dx / nearestPrey.dist * aggression
		moveY += nearestPrey.dy / nearestPrey.dist * aggression
	}
	if nearestPredator.found {
		moveX -= nearestPredator.dx / nearestPredator.dist * (1 - aggression)
		moveY -= nearestPredator.dy / nearestPredator.dist * (1 - aggression)
	}

	moveX += jitter(rng, p.Jitter)
	moveY += jitter(rng, p.Jitter)

	vel := a.Vel
	mag := hypot(moveX, moveY)
	if mag > 0 {
		vel.X = (1-p.Blend)*vel.X + p.Blend*moveX/mag
		vel.Y = (1-p.Blend)*vel.Y + p.Blend*moveY/mag
	}
	return vel
}
