package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
}

// SavedGameProgress is the furthest level reached.
type SavedGameProgress struct {
	LevelIndex int `json:"levelIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// globalSettings outlives scenes; the audio system and the pause panel read
// and write it.
var globalSettings = components.SettingsData{
	MusicVolume: cfg.Audio.DefaultMusicVol,
	SFXVolume:   cfg.Audio.DefaultSFXVol,
}

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "blaster",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings writes the live settings to disk
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		MusicVolume: globalSettings.MusicVolume,
		SFXVolume:   globalSettings.SFXVolume,
		Muted:       globalSettings.Muted,
		Fullscreen:  globalSettings.Fullscreen,
	})
}

// ApplySavedSettingsGlobal applies settings loaded at startup, before any
// scene exists. The audio system picks the volumes up when it initializes.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalSettings = components.SettingsData{
		MusicVolume: saved.MusicVolume,
		SFXVolume:   saved.SFXVolume,
		Muted:       saved.Muted,
		Fullscreen:  saved.Fullscreen,
	}
	if globalMixer != nil {
		applyAudioSettings()
	}

	ebiten.SetFullscreen(saved.Fullscreen)
}

// CurrentSettings returns a copy of the live settings.
func CurrentSettings() components.SettingsData {
	return globalSettings
}

// SetFullscreen toggles fullscreen and remembers the choice
func SetFullscreen(on bool) {
	globalSettings.Fullscreen = on
	ebiten.SetFullscreen(on)
}

func LoadGameProgress() (*SavedGameProgress, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		log.Printf("Warning: Could not load game progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedGameProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}

	return &progress, nil
}

// SaveGameProgress records levelIndex as the level to continue from.
func SaveGameProgress(levelIndex int) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(&SavedGameProgress{LevelIndex: levelIndex})
	if err != nil {
		log.Printf("Warning: Could not serialize game progress: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("progress", data); err != nil {
		log.Printf("Warning: Could not save game progress: %v", err)
		return err
	}

	return nil
}

// HasSaveGame returns true if a saved game progress exists
func HasSaveGame() bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil || len(data) == 0 {
		return false
	}

	return true
}

// ClearGameProgress removes any saved game progress
func ClearGameProgress() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	// Save empty data to clear the progress
	if err := gdataManager.SaveItem("progress", nil); err != nil {
		log.Printf("Warning: Could not clear game progress: %v", err)
		return err
	}

	return nil
}
