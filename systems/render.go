package systems

import (
	"image"
	"image/color"

	cfg "github.com/automoto/skeeter/config"
	"github.com/automoto/skeeter/figure"
	"github.com/automoto/skeeter/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// ovalSegments is how many edges approximate an oval
const ovalSegments = 48

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	// Reused between frames to avoid allocations
	fillVertices []ebiten.Vertex
	fillIndices  []uint16
	fillOp       = &ebiten.DrawTrianglesOptions{AntiAlias: true}
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawCanvas paints the canvas background.
func DrawCanvas(ecs *ecs.ECS, screen *ebiten.Image) {
	b := CanvasBounds()
	vector.FillRect(screen,
		float32(b.Min.X), float32(b.Min.Y),
		float32(b.Dx()), float32(b.Dy()),
		cfg.C.Background, false)
}

// DrawMosquito renders the figure at its eased position, rotated to its heading.
func DrawMosquito(ecs *ecs.ECS, screen *ebiten.Image) {
	pos, heading, ok := MosquitoState(ecs)
	if !ok {
		return
	}
	canvas := screen.SubImage(CanvasBounds()).(*ebiten.Image)
	DrawPrimitives(canvas, figure.Mosquito(pos, heading))
}

// DrawPrimitives rasterizes figure primitives in order.
func DrawPrimitives(dst *ebiten.Image, prims []figure.Primitive) {
	for _, p := range prims {
		switch p.Kind {
		case figure.Oval:
			pts := figure.OvalOutline(p.Center, p.RadiusX, p.RadiusY, p.Rotation, ovalSegments)
			if p.Filled {
				fillPolygon(dst, p.Center, pts, p.Color)
			} else {
				strokePolygon(dst, pts, float32(p.Width), p.Color)
			}
		case figure.Circle:
			if p.Filled {
				vector.FillCircle(dst, float32(p.Center.X), float32(p.Center.Y), float32(p.RadiusX), p.Color, true)
			} else {
				vector.StrokeCircle(dst, float32(p.Center.X), float32(p.Center.Y), float32(p.RadiusX), float32(p.Width), p.Color, true)
			}
		case figure.Line:
			strokeDashed(dst, p.From, p.To, p.Dash, float32(p.Width), p.Color)
		}
	}
}

func strokeDashed(dst *ebiten.Image, a, b gamemath.Vec, dash []float64, width float32, clr color.RGBA) {
	for _, s := range figure.DashSegments(a, b, dash) {
		vector.StrokeLine(dst,
			float32(s.From.X), float32(s.From.Y),
			float32(s.To.X), float32(s.To.Y),
			width, clr, true)
	}
}

func strokePolygon(dst *ebiten.Image, pts []gamemath.Vec, width float32, clr color.RGBA) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

// fillPolygon draws a convex polygon as a triangle fan around center.
func fillPolygon(dst *ebiten.Image, center gamemath.Vec, pts []gamemath.Vec, clr color.RGBA) {
	r, g, b, a := straightAlpha(clr)

	fillVertices = fillVertices[:0]
	fillIndices = fillIndices[:0]

	fillVertices = append(fillVertices, ebiten.Vertex{
		DstX: float32(center.X), DstY: float32(center.Y),
		SrcX: 1, SrcY: 1,
		ColorR: r, ColorG: g, ColorB: b, ColorA: a,
	})
	for _, p := range pts {
		fillVertices = append(fillVertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	n := uint16(len(pts))
	for i := uint16(0); i < n; i++ {
		fillIndices = append(fillIndices, 0, i+1, (i+1)%n+1)
	}

	dst.DrawTriangles(fillVertices, fillIndices, whiteSubImage, fillOp)
}

// straightAlpha converts a premultiplied color into the straight-alpha vertex
// color scale DrawTriangles expects by default.
func straightAlpha(c color.RGBA) (r, g, b, a float32) {
	if c.A == 0 {
		return 0, 0, 0, 0
	}
	a = float32(c.A) / 0xff
	return float32(c.R) / 0xff / a, float32(c.G) / 0xff / a, float32(c.B) / 0xff / a, a
}
