package factory

import (
	"github.com/automoto/blaster/archetypes"
	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/shared/triggers"
	"github.com/automoto/blaster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet at (x, y). The controller is
// attached by the systems package, which owns its collaborators.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	addToSpace(ecs, player, newRectObject(x-w/2, y-h, w, h, tags.ResolvPlayer))

	components.Player.SetValue(player, components.PlayerData{
		Status: triggers.Status{
			HP:    cfg.Player.Health,
			MaxHP: cfg.Player.Health,
		},
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})

	return player
}
