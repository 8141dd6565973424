package systems

import (
	"fmt"
	"math"
	"strings"

	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/shared/gamemath"
)

// StepMusicVolume moves the music volume one step and saves it.
func StepMusicVolume(direction int) {
	SetMusicVolume(gamemath.StepVolume(globalSettings.MusicVolume, cfg.SettingsMenu.VolumeSteps, direction))
	SaveCurrentSettings()
}

// StepSFXVolume moves the effects volume one step and saves it.
func StepSFXVolume(direction int) {
	SetSFXVolume(gamemath.StepVolume(globalSettings.SFXVolume, cfg.SettingsMenu.VolumeSteps, direction))
	SaveCurrentSettings()
}

// ToggleMute flips mute and saves it.
func ToggleMute() {
	SetMuted(!globalSettings.Muted)
	SaveCurrentSettings()
}

// ToggleFullscreen flips fullscreen and saves it.
func ToggleFullscreen() {
	SetFullscreen(!globalSettings.Fullscreen)
	SaveCurrentSettings()
}

// FormatVolumeBar creates a visual volume bar
func FormatVolumeBar(volume float64) string {
	volume = math.Max(0, math.Min(1, volume))
	filled := int(volume*10 + 0.5)
	bar := strings.Repeat("|", filled) + strings.Repeat(".", 10-filled)
	return fmt.Sprintf("[%s] %d%%", bar, int(volume*100+0.5))
}

// FormatToggle formats a boolean as On/Off
func FormatToggle(value bool) string {
	if value {
		return "On"
	}
	return "Off"
}
