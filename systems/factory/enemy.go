package factory

import (
	"github.com/automoto/blaster/archetypes"
	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/shared/leveldata"
	"github.com/automoto/blaster/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy whose body doubles as its hitbox.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	addToSpace(ecs, enemy, newRectObject(spawn.X, spawn.Y, spawn.W, spawn.H,
		tags.ResolvEnemy, tags.ResolvEnemyHitBox))

	data := components.EnemyData{
		AttackPower: spawn.AttackPower,
		OriginX:     spawn.X,
	}
	if spawn.Patrol > 0 {
		leg := cfg.Enemy.PatrolLegSeconds
		data.Patrol = gween.NewSequence(
			gween.New(0, float32(spawn.Patrol), leg, ease.InOutQuad),
			gween.New(float32(spawn.Patrol), 0, leg, ease.InOutQuad),
		)
	}
	components.Enemy.SetValue(enemy, data)
	components.Health.SetValue(enemy, components.HealthData{
		Current: spawn.Health,
		Max:     spawn.Health,
	})

	return enemy
}
