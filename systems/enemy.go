package systems

import (
	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies walks patrolling enemies along their tween.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := 1 / float32(ebiten.TPS())

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Patrol == nil {
			return
		}

		offset, _, done := enemy.Patrol.Update(dt)
		if done {
			enemy.Patrol.Reset()
		}

		obj := components.Object.Get(e)
		obj.X = enemy.OriginX + float64(offset)
	})
}

// DamageEnemy subtracts damage and removes the enemy once it runs out of
// health.
func DamageEnemy(ecs *ecs.ECS, e *donburi.Entry, damage int) {
	if !e.Valid() || !e.HasComponent(components.Health) {
		return
	}

	health := components.Health.Get(e)
	if health.Current <= 0 {
		return
	}
	health.Current -= damage
	PlaySFX(ecs, cfg.SoundEnemyHurt)
	TriggerHitFlash(e)

	if health.Current <= 0 {
		destroyObjectEntry(ecs, components.Object.Get(e).Object)
	}
}
