package systems

import "math"

// clampFloat clamps a float32 value between min and max.
func clampFloat(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// abs32 returns the absolute value of a float32.
func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// distanceSq returns the squared distance between two points.
func distanceSq(x1, y1, x2, y2 float32) float32 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// hypot returns the Euclidean length of (dx, dy).
func hypot(dx, dy float32) float32 {
	return float32(math.Hypot(float64(dx), float64(dy)))
}

// jitter returns a symmetric uniform sample in [-scale/2, scale/2).
func jitter(rng Rand, scale float32) float32 {
	return (rng.Float32() - 0.5) * scale
}
