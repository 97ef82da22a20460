package systems

import (
	"image"

	"github.com/automoto/skeeter/components"
	cfg "github.com/automoto/skeeter/config"
	"github.com/automoto/skeeter/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	touchIDs   []ebiten.TouchID
	gamepadIDs []ebiten.GamepadID
)

// UpdateInput polls raw input: key actions into the Input component and at
// most one new tap into the Tap component.
// Must run BEFORE UpdateMosquito in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	if p, ok := pollTap(); ok {
		SubmitTap(ecs, p)
	}
}

// pollTap returns the first new touch of the frame, falling back to a left
// click so the desktop build behaves like a phone. Later touches in the same
// frame are ignored.
func pollTap() (image.Point, bool) {
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return image.Pt(x, y), true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return image.Pt(x, y), true
	}
	return image.Point{}, false
}

// CanvasBounds is the tappable region in screen coordinates.
func CanvasBounds() image.Rectangle {
	return image.Rect(0, 0, cfg.C.Width, cfg.CanvasHeight())
}

// toCanvas converts a screen point into canvas coordinates, rejecting points
// outside the canvas.
func toCanvas(p image.Point, canvas image.Rectangle) (gamemath.Vec, bool) {
	if !p.In(canvas) {
		return gamemath.Vec{}, false
	}
	local := p.Sub(canvas.Min)
	return gamemath.Vec{X: float64(local.X), Y: float64(local.Y)}, true
}

// SubmitTap records a tap at screen point p for this frame. Returns false when
// the point is outside the canvas or a tap was already taken this frame.
func SubmitTap(ecs *ecs.ECS, p image.Point) bool {
	v, ok := toCanvas(p, CanvasBounds())
	if !ok {
		return false
	}
	tap := getOrCreateTap(ecs)
	if tap.Pending {
		return false
	}
	tap.Pending = true
	tap.Point = v
	tap.Total++
	return true
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

func getOrCreateTap(ecs *ecs.ECS) *components.TapData {
	entry, ok := components.Tap.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Tap))
	}
	return components.Tap.Get(entry)
}

// JustPressed reports whether an action went down this frame.
func JustPressed(input *components.InputData, id cfg.ActionID) bool {
	return input.Current[id] && !input.Previous[id]
}

// QuitRequested reports whether the quit action was pressed this frame.
func QuitRequested(ecs *ecs.ECS) bool {
	return JustPressed(getOrCreateInput(ecs), cfg.ActionQuit)
}
