package factory

import (
	"log"

	"github.com/automoto/skeeter/archetypes"
	"github.com/automoto/skeeter/components"
	cfg "github.com/automoto/skeeter/config"
	"github.com/automoto/skeeter/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMosquito spawns the mosquito resting at the configured start position.
func CreateMosquito(ecs *ecs.ECS) *donburi.Entry {
	mosquito := archetypes.Mosquito.Spawn(ecs)

	easing, err := motion.Easing(cfg.Mosquito.Easing)
	if err != nil {
		log.Printf("Warning: %v, using fastOutSlowIn", err)
		easing = motion.FastOutSlowIn
	}

	components.Mosquito.SetValue(mosquito, components.MosquitoData{
		Motion: motion.NewController(cfg.Mosquito.Start, cfg.Mosquito.TravelDuration, easing),
	})
	// the trail starts at the rest position, like the first tap came from there
	trail := components.TrailData{Capacity: cfg.Mosquito.TrailCapacity}
	trail.Append(cfg.Mosquito.Start)
	components.Trail.SetValue(mosquito, trail)

	return mosquito
}
