package systems

import (
	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/shared/gamemath"
	"github.com/automoto/blaster/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves physics bodies by their speed and stops them
// against solids.
func UpdateCollisions(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Kinematic {
			return
		}
		obj := components.Object.Get(e)

		resolveObjectHorizontalCollision(physics, obj.Object)
		resolveObjectVerticalCollision(physics, obj.Object)
	})
}

// resolveObjectHorizontalCollision handles horizontal movement and wall collision
func resolveObjectHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	// Cells only narrow the search; keep the solids in the body's rows that
	// the move would reach.
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsVertically(object, solid) {
			continue
		}
		if dx > 0 {
			if gap := solid.X - (object.X + object.W); gap >= 0 && gap < dx {
				dx = gap
				physics.SpeedX = 0
			}
		} else if gap := solid.X + solid.W - object.X; gap <= 0 && gap > dx {
			dx = gap
			physics.SpeedX = 0
		}
	}

	object.X += dx
}

// resolveObjectVerticalCollision handles vertical movement and ground collision
func resolveObjectVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := gamemath.ClampSpeed(physics.SpeedY, cfg.Physics.MaxStepSpeed)

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsHorizontally(object, solid) {
			continue
		}
		if dy >= 0 {
			if gap := solid.Y - (object.Y + object.H); gap >= 0 && gap <= dy {
				dy = gap
				physics.SpeedY = 0
				physics.OnGround = solid
			}
		} else if gap := solid.Y + solid.H - object.Y; gap <= 0 && gap > dy {
			// Head bump
			dy = gap
			physics.SpeedY = 0
		}
	}

	object.Y += dy
}

func overlapsVertically(object, solid *resolv.Object) bool {
	return object.Y+object.H > solid.Y && object.Y < solid.Y+solid.H
}

func overlapsHorizontally(object, solid *resolv.Object) bool {
	return object.X+object.W > solid.X && object.X < solid.X+solid.W
}
