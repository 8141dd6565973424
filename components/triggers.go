package components

import (
	"github.com/automoto/blaster/shared/gamemath"
	"github.com/yohamta/donburi"
)

type HealthPickUpData struct {
	HealAmount int
}

var HealthPickUp = donburi.NewComponentType[HealthPickUpData]()

// CameraTriggerData is the rig applied while the player stands in the region.
type CameraTriggerData struct {
	Rig gamemath.CameraRig
}

var CameraTrigger = donburi.NewComponentType[CameraTriggerData]()
