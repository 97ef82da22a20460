package gamemath

import "math"

// Vec is a point or offset in canvas space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Lerp returns the point at fraction t along the segment from a to b.
func Lerp(a, b Vec, t float64) Vec {
	return a.Add(b.Sub(a).Scale(t))
}

// RotateAround rotates p by deg degrees (clockwise on a y-down screen) about pivot.
func RotateAround(p, pivot Vec, deg float64) Vec {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	d := p.Sub(pivot)
	return Vec{
		X: pivot.X + d.X*cos - d.Y*sin,
		Y: pivot.Y + d.X*sin + d.Y*cos,
	}
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
