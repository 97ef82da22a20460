package motion

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// CubicBezier returns an easing curve through (0,0), (x1,y1), (x2,y2), (1,1),
// the same shape CSS and Android use for their tween curves.
func CubicBezier(x1, y1, x2, y2 float64) ease.TweenFunc {
	curve := func(p float64) float64 {
		if p <= 0 {
			return 0
		}
		if p >= 1 {
			return 1
		}
		return bezierY(solveBezierX(p, x1, x2), y1, y2)
	}
	return func(t, b, c, d float32) float32 {
		return c*float32(curve(float64(t/d))) + b
	}
}

// FastOutSlowIn accelerates quickly and spends most of the duration settling.
var FastOutSlowIn = CubicBezier(0.4, 0.0, 0.2, 1.0)

var easings = map[string]ease.TweenFunc{
	"linear":        ease.Linear,
	"fastOutSlowIn": FastOutSlowIn,
	"outQuad":       ease.OutQuad,
	"inOutQuad":     ease.InOutQuad,
	"outCubic":      ease.OutCubic,
	"inOutCubic":    ease.InOutCubic,
	"outSine":       ease.OutSine,
	"inOutSine":     ease.InOutSine,
	"outExpo":       ease.OutExpo,
}

// Easing looks up a named easing curve.
func Easing(name string) (ease.TweenFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

func bezierCoord(t, p1, p2 float64) float64 {
	// B(t) with endpoints 0 and 1
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierX(t, x1, x2 float64) float64 { return bezierCoord(t, x1, x2) }

func bezierY(t, y1, y2 float64) float64 { return bezierCoord(t, y1, y2) }

func bezierDX(t, x1, x2 float64) float64 {
	u := 1 - t
	return 3*u*u*x1 + 6*u*t*(x2-x1) + 3*t*t*(1-x2)
}

// solveBezierX finds the curve parameter whose x coordinate is x.
// Newton first, bisection when the slope is too flat to trust.
func solveBezierX(x, x1, x2 float64) float64 {
	const eps = 1e-7

	t := x
	for i := 0; i < 8; i++ {
		err := bezierX(t, x1, x2) - x
		if math.Abs(err) < eps && t >= 0 && t <= 1 {
			return t
		}
		d := bezierDX(t, x1, x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= err / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 64; i++ {
		v := bezierX(t, x1, x2)
		if math.Abs(v-x) < eps {
			return t
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}
