package systems

import (
	"github.com/automoto/blaster/archetypes"
	"github.com/automoto/blaster/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances simulation time by one tick. It runs behind the pause
// check so timers freeze with the game.
func UpdateClock(ecs *ecs.ECS) {
	components.Clock.Get(GetOrCreateClock(ecs)).Ticks++
}

// GetOrCreateClock returns the clock singleton entry, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *donburi.Entry {
	if e, ok := components.Clock.First(ecs.World); ok {
		return e
	}
	return archetypes.Clock.Spawn(ecs)
}
