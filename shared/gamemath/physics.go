// Package gamemath holds the small numeric helpers shared by the systems.
// It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp limits v to [lo, hi]. When lo > hi the lower bound wins, matching a
// camera region that is narrower than the screen.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// LinearToDecibels converts a 0..1 volume slider into mixer decibels.
// Zero is floored at 0.0001 so the result stays finite (-80 dB).
func LinearToDecibels(v float64) float64 {
	return 20 * math.Log10(math.Max(v, 0.0001))
}

// DecibelsToLinear is the inverse of LinearToDecibels, used to turn a group
// gain back into a player volume.
func DecibelsToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}
