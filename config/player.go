package config

import "github.com/automoto/blaster/shared/playercontrol"

// PlayerControlConfig converts Player into the controller's tuning values.
func PlayerControlConfig() playercontrol.Config {
	return playerControlConfig(Player)
}

func playerControlConfig(p PlayerConfig) playercontrol.Config {
	return playercontrol.Config{
		RunningSpeed:     p.RunningSpeed,
		RunningDrag:      p.RunningDrag,
		InitialJumpSpeed: p.InitialJumpSpeed,
		ShotReloadTime:   p.ShotReloadTime,
		BulletSpawnOffset: playercontrol.Vec{
			X: p.BulletSpawnOffsetX,
			Y: p.BulletSpawnOffsetY,
		},
		BulletSpeed:    p.BulletSpeed,
		KnockbackSpeed: p.KnockbackSpeed,
		DamageRecovery: p.DamageRecovery,
		DeathWait:      p.DeathWait,
	}
}
