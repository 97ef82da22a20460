package motion

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/automoto/skeeter/shared/gamemath"
	"github.com/tanema/gween/ease"
)

const frame = time.Second / 60

func run(c *Controller, d time.Duration) {
	for d > 0 {
		step := frame
		if d < step {
			step = d
		}
		c.Update(step)
		d -= step
	}
}

func ticks(c *Controller, n int) {
	for i := 0; i < n; i++ {
		c.Update(frame)
	}
}

func TestControllerFinishesOnDeadlineFrame(t *testing.T) {
	start := gamemath.Vec{X: 100, Y: 100}
	target := gamemath.Vec{X: 200, Y: 100}

	for _, tps := range []int{30, 60, 144} {
		t.Run(fmt.Sprintf("tps_%d", tps), func(t *testing.T) {
			dt := time.Second / time.Duration(tps)
			c := NewController(start, time.Second, FastOutSlowIn)
			c.SetTarget(target)

			for i := 0; i < tps-1; i++ {
				c.Update(dt)
			}
			if c.State() != Interpolating {
				t.Fatalf("finished one frame early")
			}

			c.Update(dt)
			if c.State() != Idle {
				t.Fatalf("state after %d frames = %v, want idle", tps, c.State())
			}
			if c.Current() != target || c.Rest() != target {
				t.Fatalf("current %v rest %v, want both %v", c.Current(), c.Rest(), target)
			}

			// the next heading aims from the completed target
			next := gamemath.Vec{X: 200, Y: 200}
			if h := gamemath.Heading(c.Rest(), next); math.Abs(h-180) > 1e-9 {
				t.Fatalf("heading toward %v = %v, want 180", next, h)
			}
		})
	}
}

func TestControllerStartsIdleAtStart(t *testing.T) {
	c := NewController(gamemath.Vec{X: 100, Y: 100}, time.Second, nil)

	if c.State() != Idle {
		t.Fatalf("expected idle, got %v", c.State())
	}
	if c.Current() != (gamemath.Vec{X: 100, Y: 100}) {
		t.Fatalf("unexpected current %v", c.Current())
	}
	if c.Progress() != 1 {
		t.Fatalf("idle progress should be 1, got %v", c.Progress())
	}
}

func TestControllerCompletesExactlyOnTarget(t *testing.T) {
	cases := []struct {
		name   string
		target gamemath.Vec
		easing ease.TweenFunc
	}{
		{"fast_out_slow_in", gamemath.Vec{X: 200, Y: 100}, FastOutSlowIn},
		{"linear", gamemath.Vec{X: 0.1, Y: 333.3}, ease.Linear},
		{"out_cubic_negative", gamemath.Vec{X: -12.5, Y: -7}, ease.OutCubic},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController(gamemath.Vec{X: 100, Y: 100}, time.Second, tc.easing)
			c.SetTarget(tc.target)
			run(c, time.Second)

			if c.State() != Idle {
				t.Fatalf("expected idle after duration, got %v", c.State())
			}
			if c.Current() != tc.target {
				t.Fatalf("current = %v, want exactly %v", c.Current(), tc.target)
			}
			if c.Rest() != tc.target {
				t.Fatalf("rest = %v, want %v", c.Rest(), tc.target)
			}
		})
	}
}

func TestControllerMidwayIsStrictlyBetween(t *testing.T) {
	start := gamemath.Vec{X: 100, Y: 100}
	target := gamemath.Vec{X: 300, Y: 500}
	c := NewController(start, time.Second, FastOutSlowIn)
	c.SetTarget(target)
	run(c, 500*time.Millisecond)

	if c.State() != Interpolating {
		t.Fatalf("expected interpolating at half time, got %v", c.State())
	}

	cur := c.Current()
	if !(cur.X > start.X && cur.X < target.X) || !(cur.Y > start.Y && cur.Y < target.Y) {
		t.Fatalf("current %v not strictly between %v and %v", cur, start, target)
	}

	// both axes advance by the same eased fraction, so the point is on the segment
	fx := (cur.X - start.X) / (target.X - start.X)
	fy := (cur.Y - start.Y) / (target.Y - start.Y)
	if math.Abs(fx-fy) > 1e-9 {
		t.Fatalf("point off the path: fx=%v fy=%v", fx, fy)
	}

	// fast-out-slow-in is well past the midpoint at half time
	if fx <= 0.5 {
		t.Fatalf("expected eased fraction > 0.5 at half time, got %v", fx)
	}

	if c.Rest() != start {
		t.Fatalf("rest must not move before completion, got %v", c.Rest())
	}
}

func TestControllerRetargetFromCurrentValue(t *testing.T) {
	start := gamemath.Vec{X: 0, Y: 0}
	c := NewController(start, time.Second, ease.Linear)
	c.SetTarget(gamemath.Vec{X: 100, Y: 0})
	run(c, 500*time.Millisecond)

	mid := c.Current()
	second := gamemath.Vec{X: 100, Y: 100}
	c.SetTarget(second)

	if c.Current() != mid {
		t.Fatalf("retarget must not jump: before %v after %v", mid, c.Current())
	}
	if c.Target() != second {
		t.Fatalf("target = %v, want %v", c.Target(), second)
	}
	if c.Rest() != start {
		t.Fatalf("superseded interpolation must not update rest, got %v", c.Rest())
	}

	// the new tween gets the full duration
	ticks(c, 59)
	if c.State() != Interpolating {
		t.Fatalf("expected interpolating one frame before the new deadline")
	}
	ticks(c, 1)
	if c.Current() != second || c.Rest() != second {
		t.Fatalf("expected settled at %v, got current %v rest %v", second, c.Current(), c.Rest())
	}
}

func TestControllerRejectsNonFiniteTarget(t *testing.T) {
	c := NewController(gamemath.Vec{X: 1, Y: 2}, time.Second, nil)

	for _, p := range []gamemath.Vec{
		{X: math.NaN(), Y: 0},
		{X: 0, Y: math.Inf(1)},
	} {
		if c.SetTarget(p) {
			t.Fatalf("SetTarget(%v) should be rejected", p)
		}
	}
	if c.State() != Idle || c.Current() != (gamemath.Vec{X: 1, Y: 2}) {
		t.Fatalf("state changed by rejected target")
	}
}

func TestControllerZeroDurationSnaps(t *testing.T) {
	c := NewController(gamemath.Vec{}, 0, nil)
	c.SetTarget(gamemath.Vec{X: 5, Y: 5})

	if c.State() != Idle || c.Current() != (gamemath.Vec{X: 5, Y: 5}) {
		t.Fatalf("zero duration should snap, got %v %v", c.State(), c.Current())
	}
}

func TestControllerIgnoresUpdatesWhenIdle(t *testing.T) {
	c := NewController(gamemath.Vec{X: 3, Y: 4}, time.Second, nil)
	run(c, 5*time.Second)
	if c.Current() != (gamemath.Vec{X: 3, Y: 4}) {
		t.Fatalf("idle controller moved to %v", c.Current())
	}
}
