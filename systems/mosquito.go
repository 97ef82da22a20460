package systems

import (
	"github.com/automoto/skeeter/components"
	cfg "github.com/automoto/skeeter/config"
	"github.com/automoto/skeeter/shared/gamemath"
	"github.com/automoto/skeeter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMosquito applies this frame's tap, then advances the eased position by
// one tick.
func UpdateMosquito(ecs *ecs.ECS) {
	entry, ok := tags.Mosquito.First(ecs.World)
	if !ok {
		return
	}

	if tapEntry, ok := components.Tap.First(ecs.World); ok {
		tap := components.Tap.Get(tapEntry)
		if tap.Pending {
			HandleTap(ecs, entry, tap.Point)
			tap.Pending = false
		}
	}

	m := components.Mosquito.Get(entry)
	m.Motion.Update(cfg.FrameDuration())
}

// HandleTap turns the mosquito toward p, queues the next clip and sends the
// mosquito on its way. The heading is measured from the rest position, so a
// tap during a flight aims from where the last completed flight ended.
func HandleTap(ecs *ecs.ECS, entry *donburi.Entry, p gamemath.Vec) {
	m := components.Mosquito.Get(entry)
	if !p.IsFinite() {
		return
	}

	components.Trail.Get(entry).Append(p)
	m.Heading = gamemath.Heading(m.Motion.Rest(), p)
	QueueClip(ecs)
	m.Motion.SetTarget(p)
}

// MosquitoState returns the displayed position and heading, for renderers.
func MosquitoState(ecs *ecs.ECS) (pos gamemath.Vec, heading float64, ok bool) {
	entry, ok := tags.Mosquito.First(ecs.World)
	if !ok {
		return gamemath.Vec{}, 0, false
	}
	m := components.Mosquito.Get(entry)
	return m.Motion.Current(), m.Heading, true
}
