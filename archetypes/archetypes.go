package archetypes

import (
	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Flash,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Object,
	)
	HealthPickUp = newArchetype(
		tags.HealthPickUp,
		components.HealthPickUp,
		components.Object,
	)
	CameraTrigger = newArchetype(
		tags.Trigger,
		components.CameraTrigger,
		components.Object,
	)
	LevelClear = newArchetype(
		tags.Trigger,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
	ScreenFade = newArchetype(
		components.ScreenFade,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
