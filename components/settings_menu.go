package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData holds the user's audio and display settings. Volumes are
// slider values in 0..1.
type SettingsData struct {
	MusicVolume float64
	SFXVolume   float64
	Muted       bool
	Fullscreen  bool
}

// Settings is the component type for the settings singleton
var Settings = donburi.NewComponentType[SettingsData]()
