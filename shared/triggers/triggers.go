// Package triggers resolves what happens when the player overlaps a tagged
// object. Resolution runs on every tick the overlap lasts, so invincibility
// is what keeps an enemy from hitting every frame.
package triggers

import (
	"math"
	"time"

	"github.com/automoto/blaster/shared/gamemath"
)

// Tag names carried by resolv objects.
const (
	TagHealthPickUp      = "HealthPickUp"
	TagEnemyHitBox       = "EnemyHitBox"
	TagCameraTrigger     = "CameraTrigger"
	TagLevelClearTrigger = "LevelClearTrigger"
)

type Kind int

const (
	KindNone Kind = iota
	KindHealthPickUp
	KindEnemyHitBox
	KindCameraTrigger
	KindLevelClear
)

// KindOf returns the first trigger kind found in tags.
func KindOf(tags []string) Kind {
	for _, t := range tags {
		switch t {
		case TagHealthPickUp:
			return KindHealthPickUp
		case TagEnemyHitBox:
			return KindEnemyHitBox
		case TagCameraTrigger:
			return KindCameraTrigger
		case TagLevelClearTrigger:
			return KindLevelClear
		}
	}
	return KindNone
}

// Contact is one overlapping object. Amount is the heal amount for pickups
// and the attack power for enemy hitboxes.
type Contact struct {
	Kind   Kind
	Amount int
	Rig    gamemath.CameraRig
}

// Status is the player state collisions can change.
type Status struct {
	HP    int
	MaxHP int

	invincibleUntil time.Duration
	invincible      bool
}

// InvincibleAt reports whether the hit window is open at now without
// closing an expired one. Safe to call from draw code.
func (s *Status) InvincibleAt(now time.Duration) bool {
	return s.invincible && now < s.invincibleUntil
}

// Invincible reports whether the hit window is still open at now, clearing
// it once it has expired.
func (s *Status) Invincible(now time.Duration) bool {
	if s.invincible && now >= s.invincibleUntil {
		s.invincible = false
	}
	return s.invincible
}

// Heal raises HP by n, capped at MaxHP, and returns the amount gained.
func (s *Status) Heal(n int) int {
	before := s.HP
	s.HP = min(s.HP+n, s.MaxHP)
	return s.HP - before
}

// Outcome tells the host which side effects to run.
type Outcome struct {
	Consume    bool // destroy the touched object
	Healed     int
	Hurt       bool
	Lethal     bool
	Rig        *gamemath.CameraRig
	LevelClear bool
}

// Resolve applies a contact to s. window is how long the player stays
// invincible after a hit.
func Resolve(s *Status, c Contact, now, window time.Duration) Outcome {
	var out Outcome
	switch c.Kind {
	case KindHealthPickUp:
		out.Healed = s.Heal(c.Amount)
		out.Consume = true
	case KindEnemyHitBox:
		if s.Invincible(now) {
			return out
		}
		s.HP -= c.Amount
		out.Hurt = true
		out.Lethal = s.HP <= 0
		// A lethal hit also closes the window so nothing else lands while dying.
		s.invincible = true
		if out.Lethal {
			s.invincibleUntil = math.MaxInt64
		} else {
			s.invincibleUntil = now + window
		}
	case KindCameraTrigger:
		rig := c.Rig
		out.Rig = &rig
	case KindLevelClear:
		out.LevelClear = true
	}
	return out
}
