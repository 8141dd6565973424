package factory

import (
	"github.com/automoto/blaster/archetypes"
	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/shared/leveldata"
	"github.com/automoto/blaster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateHealthPickUp(ecs *ecs.ECS, p leveldata.HealthPickUp) *donburi.Entry {
	pickup := archetypes.HealthPickUp.Spawn(ecs)
	addToSpace(ecs, pickup, newRectObject(p.X, p.Y, p.W, p.H, tags.ResolvHealthPickUp))
	components.HealthPickUp.SetValue(pickup, components.HealthPickUpData{
		HealAmount: p.HealAmount,
	})
	return pickup
}

func CreateCameraTrigger(ecs *ecs.ECS, t leveldata.CameraTrigger) *donburi.Entry {
	trigger := archetypes.CameraTrigger.Spawn(ecs)
	addToSpace(ecs, trigger, newRectObject(t.X, t.Y, t.W, t.H, tags.ResolvCameraTrigger))
	components.CameraTrigger.SetValue(trigger, components.CameraTriggerData{
		Rig: t.Rig,
	})
	return trigger
}

func CreateLevelClear(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	trigger := archetypes.LevelClear.Spawn(ecs)
	addToSpace(ecs, trigger, newRectObject(r.X, r.Y, r.W, r.H, tags.ResolvLevelClearTrigger))
	return trigger
}
