package figure

import (
	"math"

	"github.com/automoto/skeeter/shared/gamemath"
)

// Segment is a straight stroke piece.
type Segment struct {
	From, To gamemath.Vec
}

// DashSegments splits the line from a to b into the visible pieces of a dash
// pattern. The pattern alternates on and off lengths starting with on. An
// empty or all-zero pattern yields the whole line.
func DashSegments(a, b gamemath.Vec, pattern []float64) []Segment {
	d := b.Sub(a)
	length := math.Hypot(d.X, d.Y)
	if length == 0 {
		return nil
	}

	period := 0.0
	for _, v := range pattern {
		period += math.Max(v, 0)
	}
	if period == 0 {
		return []Segment{{From: a, To: b}}
	}

	var segs []Segment
	pos := 0.0
	for i := 0; pos < length; i = (i + 1) % len(pattern) {
		step := math.Max(pattern[i], 0)
		end := math.Min(pos+step, length)
		if i%2 == 0 && end > pos {
			segs = append(segs, Segment{
				From: gamemath.Lerp(a, b, pos/length),
				To:   gamemath.Lerp(a, b, end/length),
			})
		}
		pos = end
	}
	return segs
}

// OvalOutline returns n points around an ellipse, rotated rotation degrees
// about its center. Points run clockwise on a y-down screen.
func OvalOutline(center gamemath.Vec, rx, ry, rotation float64, n int) []gamemath.Vec {
	if n < 3 {
		n = 3
	}
	pts := make([]gamemath.Vec, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		p := gamemath.Vec{
			X: center.X + rx*math.Cos(theta),
			Y: center.Y + ry*math.Sin(theta),
		}
		pts[i] = gamemath.RotateAround(p, center, rotation)
	}
	return pts
}
