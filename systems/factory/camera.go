package factory

import (
	"github.com/automoto/blaster/archetypes"
	"github.com/automoto/blaster/components"
	"github.com/automoto/blaster/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera looking at (x, y) with the given rig.
func CreateCamera(ecs *ecs.ECS, x, y float64, rig gamemath.CameraRig) {
	camera := archetypes.Camera.Spawn(ecs)
	data := &components.CameraData{Rig: rig}
	data.Position.X, data.Position.Y = rig.Follow(x, y)
	components.Camera.Set(camera, data)
}
