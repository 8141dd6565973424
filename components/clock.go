package components

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ClockData is the world's simulation clock (singleton). It only advances
// while the game is not paused.
type ClockData struct {
	Ticks int64
}

// Now converts elapsed ticks into time.
func (c *ClockData) Now() time.Duration {
	return time.Duration(c.Ticks) * time.Second / time.Duration(ebiten.TPS())
}

var Clock = donburi.NewComponentType[ClockData]()
