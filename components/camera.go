package components

import (
	"github.com/automoto/blaster/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // center of the view in world space
	Rig      gamemath.CameraRig
}

var Camera = donburi.NewComponentType[CameraData]()
