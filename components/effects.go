package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks a hit flash on a drawn rectangle
type FlashData struct {
	Duration int // frames remaining
}

var Flash = donburi.NewComponentType[FlashData]()

// ScreenFadeData is the full-screen veil drawn over the world (singleton).
// Alpha runs 0 (clear) to 1 (opaque).
type ScreenFadeData struct {
	Alpha  float64
	Tween  *gween.Tween
	OnDone func()
}

var ScreenFade = donburi.NewComponentType[ScreenFadeData]()
