package systems

import (
	"github.com/pthm-cable/rps/components"
)

// Integrate advances an agent by its velocity scaled by its own speed scale,
// the global speed multiplier and the number of reference frames elapsed.
// Crossing an edge reflects the velocity component away from that edge and
// clamps the position to [radius, dimension-radius].
func Integrate(pos *components.Position, vel *components.Velocity, radius, speedScale, speed, frames float32, b Bounds) {
	step := speedScale * speed * frames
	pos.X += vel.X * step
	pos.Y += vel.Y * step

	pos.X, vel.X = reflect(pos.X, vel.X, radius, b.Width)
	pos.Y, vel.Y = reflect(pos.Y, vel.Y, radius, b.Height)
}

// reflect bounces one axis off the walls at [r, size-r].
func reflect(p, v, r, size float32) (float32, float32) {
	lo, hi := r, size-r
	if hi < lo {
		// Arena narrower than the agent: pin to the center line.
		return size / 2, v
	}
	if p < lo {
		return lo, abs32(v)
	}
	if p > hi {
		return hi, -abs32(v)
	}
	return p, v
}

// MaybeBurst injects a random impulse into vel with the given probability.
// Reports whether a burst happened.
func MaybeBurst(vel *components.Velocity, chance, strength float32, rng Rand) bool {
	if rng.Float32() >= chance {
		return false
	}
	vel.X += jitter(rng, strength)
	vel.Y += jitter(rng, strength)
	return true
}

// IdleDrift nudges vel randomly and caps its magnitude at maxSpeed.
// Used instead of steering while interaction is off or after a win.
func IdleDrift(vel *components.Velocity, drift, maxSpeed float32, rng Rand) {
	vel.X += jitter(rng, drift)
	vel.Y += jitter(rng, drift)

	mag := hypot(vel.X, vel.Y)
	if mag > maxSpeed {
		vel.X = vel.X / mag * maxSpeed
		vel.Y = vel.Y / mag * maxSpeed
	}
}
