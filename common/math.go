package common

import "github.com/jakecoffman/cp"

// Logical screen size in pixels and the world-to-pixel scale.
const (
	BaseWidth     = 640
	BaseHeight    = 360
	PixelsPerUnit = 32.0
)

// Gravity is the world's vertical acceleration in units per second squared.
const Gravity = -25.0

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// SmoothStep eases from a to b with zero slope at both ends.
func SmoothStep(a, b, t float64) float64 {
	t = Clamp01(t)
	t = t * t * (3 - 2*t)
	return Lerp(a, b, t)
}

// MoveTowards moves current towards target by at most maxDelta and never
// overshoots.
func MoveTowards(current, target cp.Vector, maxDelta float64) cp.Vector {
	diff := target.Sub(current)
	dist := diff.Length()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(diff.Mult(maxDelta / dist))
}
