package systems

import (
	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets moves bullets in a straight line. A bullet dies on the first
// solid or enemy it touches, when it leaves the level, or when its lifetime
// runs out.
func UpdateBullets(ecs *ecs.ECS) {
	var spent []*resolv.Object

	level, hasLevel := GetLevel(ecs)

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		obj := components.Object.Get(e)

		obj.X += bullet.SpeedX
		obj.Y += bullet.SpeedY
		bullet.FramesLeft--

		if bullet.FramesLeft <= 0 || (hasLevel && outsideLevel(obj.Object, level)) {
			spent = append(spent, obj.Object)
			return
		}

		check := obj.Check(0, 0, tags.ResolvSolid, tags.ResolvEnemy)
		if check == nil {
			return
		}
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if overlaps(obj.Object, solid) {
				spent = append(spent, obj.Object)
				return
			}
		}
		for _, enemy := range check.ObjectsByTags(tags.ResolvEnemy) {
			if overlaps(obj.Object, enemy) {
				spent = append(spent, obj.Object)
				if entry, ok := enemy.Data.(*donburi.Entry); ok {
					DamageEnemy(ecs, entry, cfg.Bullet.Damage)
				}
				return
			}
		}
	})

	// Removal waits until iteration is done.
	for _, obj := range spent {
		destroyObjectEntry(ecs, obj)
	}
}

func outsideLevel(obj *resolv.Object, level *components.LevelData) bool {
	if level.CurrentLevel == nil {
		return false
	}
	w, h := float64(level.CurrentLevel.Width), float64(level.CurrentLevel.Height)
	return obj.X+obj.W < 0 || obj.X > w || obj.Y+obj.H < 0 || obj.Y > h
}
