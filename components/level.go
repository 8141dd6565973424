package components

import (
	"github.com/automoto/blaster/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelChange is what the scene should do once the outgoing fade ends.
type LevelChange int

const (
	LevelChangeNone LevelChange = iota
	LevelChangeRestart
	LevelChangeNext
	LevelChangeMenu
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Levels       []*leveldata.Level
	// Transitioning is set once a restart or level change has started, so
	// a second request during the fade is dropped.
	Transitioning bool
	Pending       LevelChange
}

var Level = donburi.NewComponentType[LevelData]()
