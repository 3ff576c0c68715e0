package util

import (
	"math"
)

// Lerp performs linear interpolation between a and b with t in [0,1]
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp restricts a value to be between min and max
func Clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// EaseOutCubic maps t in [0,1] to an ease-out cubic curve
func EaseOutCubic(t float32) float32 {
	t = Clamp(t, 0, 1)
	u := 1 - t
	return 1 - u*u*u
}

// ClampPitch keeps a pitch angle away from the vertical poles by the
// given margin (radians)
func ClampPitch(pitch, margin float32) float32 {
	limit := float32(math.Pi/2) - margin
	return Clamp(pitch, -limit, limit)
}

// Distance2D calculates the Euclidean distance between two 2D points
func Distance2D(x1, y1, x2, y2 float32) float32 {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	return float32(math.Sqrt(dx*dx + dy*dy))
}
