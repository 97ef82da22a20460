// Package figure describes the mosquito as a list of vector primitives.
//
// The shape is defined with the mosquito facing up (head toward -Y) around its
// center. Mosquito places and rotates that shape; the renderer only has to
// rasterize what it gets back.
package figure

import (
	"image/color"

	"github.com/automoto/skeeter/shared/gamemath"
)

// Kind selects how a primitive is drawn.
type Kind int

const (
	Oval Kind = iota
	Circle
	Line
)

// Part names which piece of the mosquito a primitive draws.
type Part string

const (
	PartBody      Part = "body"
	PartHead      Part = "head"
	PartWing      Part = "wing"
	PartLeg       Part = "leg"
	PartAntenna   Part = "antenna"
	PartProboscis Part = "proboscis"
)

// Primitive is one drawing call in canvas space.
//
// Oval: Center, RadiusX, RadiusY, Rotation (degrees).
// Circle: Center, RadiusX.
// Line: From, To.
type Primitive struct {
	Kind Kind
	Part Part

	Center           gamemath.Vec
	RadiusX, RadiusY float64
	Rotation         float64

	From, To gamemath.Vec

	Color  color.RGBA
	Filled bool
	Width  float64   // stroke width, unused when Filled
	Dash   []float64 // on/off lengths; nil draws a solid stroke
}

var (
	bodyColor = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	black     = color.RGBA{A: 0xff}
	// light gray at half alpha, premultiplied
	wingColor = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0x80}

	legDash = []float64{5, 5}
)

// shape is the mosquito at the origin, facing up.
var shape = []Primitive{
	{Kind: Oval, Part: PartBody, RadiusX: 20, RadiusY: 40, Color: bodyColor, Filled: true},
	{Kind: Circle, Part: PartHead, Center: gamemath.Vec{Y: -50}, RadiusX: 15, Color: black, Filled: true},

	{Kind: Oval, Part: PartWing, Center: gamemath.Vec{X: -35, Y: -30}, RadiusX: 25, RadiusY: 50, Color: wingColor, Width: 2},
	{Kind: Oval, Part: PartWing, Center: gamemath.Vec{X: 35, Y: -30}, RadiusX: 25, RadiusY: 50, Color: wingColor, Width: 2},

	leg(-20, -10, -60, 30),
	leg(-20, 10, -60, 60),
	leg(-20, 30, -60, 90),
	leg(20, -10, 60, 30),
	leg(20, 10, 60, 60),
	leg(20, 30, 60, 90),

	{Kind: Line, Part: PartAntenna, From: gamemath.Vec{X: -10, Y: -65}, To: gamemath.Vec{X: -30, Y: -100}, Color: black, Width: 2},
	{Kind: Line, Part: PartAntenna, From: gamemath.Vec{X: 10, Y: -65}, To: gamemath.Vec{X: 30, Y: -100}, Color: black, Width: 2},

	{Kind: Line, Part: PartProboscis, From: gamemath.Vec{Y: -50}, To: gamemath.Vec{Y: -80}, Color: black, Width: 4},
}

func leg(x0, y0, x1, y1 float64) Primitive {
	return Primitive{
		Kind:  Line,
		Part:  PartLeg,
		From:  gamemath.Vec{X: x0, Y: y0},
		To:    gamemath.Vec{X: x1, Y: y1},
		Color: black,
		Width: 3,
		Dash:  legDash,
	}
}

// Mosquito returns the figure centered on center and rotated heading degrees
// clockwise as one rigid group.
func Mosquito(center gamemath.Vec, heading float64) []Primitive {
	out := make([]Primitive, len(shape))
	for i, p := range shape {
		out[i] = place(p, center, heading)
	}
	return out
}

func place(p Primitive, center gamemath.Vec, heading float64) Primitive {
	switch p.Kind {
	case Line:
		p.From = gamemath.RotateAround(center.Add(p.From), center, heading)
		p.To = gamemath.RotateAround(center.Add(p.To), center, heading)
	default:
		p.Center = gamemath.RotateAround(center.Add(p.Center), center, heading)
		p.Rotation = gamemath.NormalizeDegrees(p.Rotation + heading)
	}
	return p
}

// Count returns how many primitives of the given part are in prims.
func Count(prims []Primitive, part Part) int {
	n := 0
	for _, p := range prims {
		if p.Part == part {
			n++
		}
	}
	return n
}
