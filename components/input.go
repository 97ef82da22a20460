package components

import (
	cfg "github.com/automoto/skeeter/config"
	"github.com/automoto/skeeter/shared/gamemath"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// key actions. JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// TapData holds the tap accepted this frame, in canvas coordinates.
// At most one tap is taken per frame.
type TapData struct {
	Pending bool
	Point   gamemath.Vec
	Total   int // taps accepted since the scene started
}

var Tap = donburi.NewComponentType[TapData]()
