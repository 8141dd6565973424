package playercontrol

import (
	"fmt"
	"time"
)

// Config holds the tuning values. It is copied at construction and never
// mutated afterwards.
type Config struct {
	RunningSpeed     float64 // force per unit of horizontal intent
	RunningDrag      float64 // horizontal velocity multiplier applied each tick
	InitialJumpSpeed float64 // vertical velocity set when a jump starts

	ShotReloadTime    time.Duration
	BulletSpawnOffset Vec // offset when facing right; X is mirrored when facing left
	BulletSpeed       float64

	KnockbackSpeed float64
	DamageRecovery time.Duration
	DeathWait      time.Duration
}

// Validate rejects configurations the state machine cannot run with.
func (c Config) Validate() error {
	if c.RunningDrag < 0 || c.RunningDrag > 1 {
		return fmt.Errorf("%w: running drag %v outside [0,1]", ErrInvalidConfig, c.RunningDrag)
	}
	if c.ShotReloadTime < 0 || c.DamageRecovery < 0 || c.DeathWait < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidConfig)
	}
	return nil
}
