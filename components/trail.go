package components

import (
	"github.com/automoto/skeeter/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TrailData records tap points in order. Only the debug overlay draws it.
type TrailData struct {
	Points   []gamemath.Vec
	Capacity int // 0 keeps everything
}

// Append adds p, dropping the oldest point once Capacity is reached.
func (t *TrailData) Append(p gamemath.Vec) {
	t.Points = append(t.Points, p)
	if t.Capacity > 0 && len(t.Points) > t.Capacity {
		drop := len(t.Points) - t.Capacity
		t.Points = append(t.Points[:0], t.Points[drop:]...)
	}
}

var Trail = donburi.NewComponentType[TrailData]()
