package systems

import (
	"github.com/automoto/blaster/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity. Horizontal drag belongs to the player
// controller, so nothing here touches SpeedX.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Kinematic {
			return
		}

		physics.SpeedY += physics.Gravity
		if physics.SpeedY > physics.MaxFallSpeed {
			physics.SpeedY = physics.MaxFallSpeed
		}
	})
}
