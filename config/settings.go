package config

// SettingsMenuConfig contains settings panel configuration
type SettingsMenuConfig struct {
	VolumeSteps []float64
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps: []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
	}
}
