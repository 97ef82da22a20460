package archetypes

import (
	"github.com/automoto/skeeter/components"
	cfg "github.com/automoto/skeeter/config"
	"github.com/automoto/skeeter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Mosquito = newArchetype(
		tags.Mosquito,
		components.Mosquito,
		components.Trail,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
