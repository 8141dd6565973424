package systems

import (
	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/shared/playercontrol"
	"github.com/automoto/blaster/shared/triggers"
	"github.com/automoto/blaster/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var triggerTags = []string{
	tags.ResolvHealthPickUp,
	tags.ResolvEnemyHitBox,
	tags.ResolvCameraTrigger,
	tags.ResolvLevelClearTrigger,
}

// UpdateTriggers resolves everything the player overlaps. It runs every
// tick the overlap lasts.
func UpdateTriggers(ecs *ecs.ECS) {
	playerEntry, player, ok := GetPlayer(ecs)
	if !ok || player.Controller == nil || player.Controller.State() == playercontrol.Dying {
		return
	}

	obj := components.Object.Get(playerEntry)
	check := obj.Check(0, 0, triggerTags...)
	if check == nil {
		return
	}

	now := components.Clock.Get(GetOrCreateClock(ecs)).Now()

	for _, tag := range triggerTags {
		kind := triggers.KindOf([]string{tag})
		for _, other := range check.ObjectsByTags(tag) {
			if !overlaps(obj.Object, other) {
				continue
			}
			contact, ok := contactFor(kind, other)
			if !ok {
				continue
			}
			out := triggers.Resolve(&player.Status, contact, now, cfg.Player.InvincibilityTime)
			applyTriggerOutcome(ecs, player, other, out)
		}
	}
}

// overlaps tests the bounds; Check only reports shared cells.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func contactFor(kind triggers.Kind, obj *resolv.Object) (triggers.Contact, bool) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() {
		return triggers.Contact{}, false
	}

	contact := triggers.Contact{Kind: kind}
	switch kind {
	case triggers.KindHealthPickUp:
		contact.Amount = components.HealthPickUp.Get(entry).HealAmount
	case triggers.KindEnemyHitBox:
		contact.Amount = components.Enemy.Get(entry).AttackPower
	case triggers.KindCameraTrigger:
		contact.Rig = components.CameraTrigger.Get(entry).Rig
	}
	return contact, true
}

func applyTriggerOutcome(ecs *ecs.ECS, player *components.PlayerData, obj *resolv.Object, out triggers.Outcome) {
	if out.Consume {
		PlaySFX(ecs, cfg.SoundHealthPickUp)
		destroyObjectEntry(ecs, obj)
	}

	if out.Hurt {
		PlaySFX(ecs, cfg.SoundEnemyAttack)
		TriggerScreenShake(ecs, cfg.ScreenShake.PlayerDamageIntensity, cfg.ScreenShake.PlayerDamageDuration)
		player.Controller.Hurt(out.Lethal)
	}

	if out.Rig != nil {
		SetNewCameraAttributes(ecs, *out.Rig)
	}

	if out.LevelClear {
		CompleteLevel(ecs)
	}
}

// destroyObjectEntry removes an object from the space and its entity from
// the world.
func destroyObjectEntry(ecs *ecs.ECS, obj *resolv.Object) {
	if obj.Space != nil {
		obj.Space.Remove(obj)
	}
	if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() {
		ecs.World.Remove(entry.Entity())
	}
}
