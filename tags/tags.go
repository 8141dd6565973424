package tags

import (
	"github.com/automoto/blaster/shared/triggers"
	"github.com/yohamta/donburi"
)

var (
	Player       = donburi.NewTag().SetName("Player")
	Wall         = donburi.NewTag().SetName("Wall")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Bullet       = donburi.NewTag().SetName("Bullet")
	HealthPickUp = donburi.NewTag().SetName("HealthPickUp")
	Trigger      = donburi.NewTag().SetName("Trigger")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvBullet = "Bullet"

	ResolvHealthPickUp      = triggers.TagHealthPickUp
	ResolvEnemyHitBox       = triggers.TagEnemyHitBox
	ResolvCameraTrigger     = triggers.TagCameraTrigger
	ResolvLevelClearTrigger = triggers.TagLevelClearTrigger
)
