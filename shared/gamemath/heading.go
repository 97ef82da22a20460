package gamemath

import "math"

// HeadingOffset aligns the figure's forward axis, which is drawn pointing up,
// with the zero angle of atan2, which points right.
const HeadingOffset = 90.0

// Heading returns the rotation in degrees, normalized to [0, 360), that turns
// the figure at from to face to.
func Heading(from, to Vec) float64 {
	deg := math.Atan2(to.Y-from.Y, to.X-from.X)*180/math.Pi + HeadingOffset
	return NormalizeDegrees(deg)
}

// NormalizeDegrees wraps deg into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
