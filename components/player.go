package components

import (
	"github.com/automoto/blaster/shared/playercontrol"
	"github.com/automoto/blaster/shared/triggers"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *playercontrol.Controller
	Status     triggers.Status
}

var Player = donburi.NewComponentType[PlayerData]()
