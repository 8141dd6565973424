package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PausePanel is the overlay shown while paused.
type PausePanel interface {
	Update()
	Draw(screen *ebiten.Image)
}

// PauseData stores the pause state (singleton)
type PauseData struct {
	IsPaused bool
	Panel    PausePanel
}

var Pause = donburi.NewComponentType[PauseData]()
