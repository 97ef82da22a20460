// Package motion eases a point toward tap targets over a fixed duration.
//
// A Controller is a small state machine driven by a frame clock: it is either
// idle at its rest position, or interpolating from the value it showed when the
// current target was set. Setting a new target mid-flight restarts the tween
// from the displayed value, so the motion never jumps.
package motion

import (
	"time"

	"github.com/automoto/skeeter/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// State is the controller phase.
type State int

const (
	Idle State = iota
	Interpolating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Interpolating:
		return "interpolating"
	}
	return "unknown"
}

// Controller owns the rest and displayed positions of one moving point.
type Controller struct {
	duration time.Duration
	easing   ease.TweenFunc

	state   State
	rest    gamemath.Vec
	current gamemath.Vec
	start   gamemath.Vec
	target  gamemath.Vec
	elapsed time.Duration

	// progress runs 0 -> 1 over the duration in seconds
	progress *gween.Tween
}

// NewController returns an idle controller resting at start.
// A nil easing falls back to FastOutSlowIn.
func NewController(start gamemath.Vec, duration time.Duration, easing ease.TweenFunc) *Controller {
	if easing == nil {
		easing = FastOutSlowIn
	}
	return &Controller{
		duration: duration,
		easing:   easing,
		rest:     start,
		current:  start,
	}
}

// SetTarget starts easing from the displayed position toward p. Any in-flight
// interpolation is superseded. Non-finite targets are ignored and false is
// returned.
func (c *Controller) SetTarget(p gamemath.Vec) bool {
	if !p.IsFinite() {
		return false
	}
	c.start = c.current
	c.target = p
	c.elapsed = 0

	if c.duration <= 0 {
		c.finish()
		return true
	}

	c.progress = gween.New(0, 1, float32(c.duration.Seconds()), c.easing)
	c.state = Interpolating
	return true
}

// Update advances the interpolation by one frame of length dt. The tween
// finishes on the frame closest to the deadline, so a frame clock that
// truncates to whole nanoseconds still lands on time.
func (c *Controller) Update(dt time.Duration) {
	if c.state != Interpolating || dt <= 0 {
		return
	}

	c.elapsed += dt
	if c.elapsed+dt/2 >= c.duration {
		c.finish()
		return
	}

	f, _ := c.progress.Set(float32(c.elapsed.Seconds()))
	c.current = gamemath.Lerp(c.start, c.target, float64(f))
}

func (c *Controller) finish() {
	c.current = c.target
	c.rest = c.target
	c.state = Idle
	c.progress = nil
}

// Current returns the displayed position for this frame.
func (c *Controller) Current() gamemath.Vec { return c.current }

// Rest returns the position of the last completed interpolation.
func (c *Controller) Rest() gamemath.Vec { return c.rest }

// Target returns the in-flight target, or the rest position when idle.
func (c *Controller) Target() gamemath.Vec {
	if c.state == Interpolating {
		return c.target
	}
	return c.rest
}

// State reports whether the controller is idle or interpolating.
func (c *Controller) State() State { return c.state }

// Progress is the elapsed fraction of the current interpolation, 1 when idle.
func (c *Controller) Progress() float64 {
	if c.state != Interpolating {
		return 1
	}
	return float64(c.elapsed) / float64(c.duration)
}
