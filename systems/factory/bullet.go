package factory

import (
	"github.com/automoto/blaster/archetypes"
	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet spawns a bullet centered on (x, y).
func CreateBullet(ecs *ecs.ECS, x, y, speedX, speedY float64) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(ecs)

	w, h := cfg.Bullet.Width, cfg.Bullet.Height
	addToSpace(ecs, bullet, newRectObject(x-w/2, y-h/2, w, h, tags.ResolvBullet))

	components.Bullet.SetValue(bullet, components.BulletData{
		SpeedX:     speedX,
		SpeedY:     speedY,
		FramesLeft: cfg.Bullet.Lifetime,
	})

	return bullet
}
