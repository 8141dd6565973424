package factory

import (
	"github.com/automoto/blaster/archetypes"
	"github.com/automoto/blaster/assets"
	"github.com/automoto/blaster/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	return CreateLevelAtIndex(ecs, 0)
}

func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	levels := assets.MustLoadLevels()

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: levels[levelIndex],
	})

	return level
}
