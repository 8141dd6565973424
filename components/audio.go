package components

import (
	cfg "github.com/automoto/blaster/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sounds requested during a tick (singleton component).
// The audio system drains it once per update.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
