package systems

import (
	"log"
	"sync"

	"github.com/automoto/blaster/assets"
	"github.com/automoto/blaster/components"
	cfg "github.com/automoto/blaster/config"
	"github.com/automoto/blaster/shared/mixer"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalMixer        *mixer.Mixer
	audioInitOnce      sync.Once
)

// initGlobalAudio creates the audio context and renders every sound once.
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalMixer = buildMixer(assets.NewAudioLoader(globalAudioContext))
		applyAudioSettings()
	})
}

func buildMixer(loader *assets.AudioLoader) *mixer.Mixer {
	m := mixer.New()

	for id, def := range cfg.Sound.SFX {
		players, err := loader.LoadSFX(id, def)
		if err != nil {
			log.Printf("Warning: %v", err)
			continue
		}
		sources := make([]mixer.Source, len(players))
		for i, p := range players {
			sources[i] = p
		}
		if err := m.Add(string(id), mixer.GroupFX, def.Volume, sources...); err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	for id, def := range cfg.Sound.Music {
		player, err := loader.LoadMusic(id, def)
		if err != nil {
			log.Printf("Warning: %v", err)
			continue
		}
		if err := m.Add(string(id), mixer.GroupMusic, def.Volume, player); err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	return m
}

// PreloadAudio renders all sounds up front so the first level does not stall.
func PreloadAudio() {
	initGlobalAudio()
}

// UpdateAudio plays the sound effects queued during this update
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		globalMixer.Play(string(soundID))
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// PlayMusic starts a looping track. The same track already playing is left
// alone.
func PlayMusic(e *ecs.ECS, track cfg.SoundID) {
	initGlobalAudio()
	globalMixer.PlayMusic(string(track))
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	initGlobalAudio()
	globalMixer.StopMusic()
}

// PauseMusic pauses the current music playback
func PauseMusic(e *ecs.ECS) {
	initGlobalAudio()
	globalMixer.PauseMusic()
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	initGlobalAudio()
	globalMixer.ResumeMusic()
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalSettings.MusicVolume = volume
	if globalMixer != nil {
		globalMixer.SetMusicVolume(volume)
	}
}

// SetSFXVolume changes the effects volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSettings.SFXVolume = volume
	if globalMixer != nil {
		globalMixer.SetFXVolume(volume)
	}
}

// SetMuted silences all audio without forgetting the volumes
func SetMuted(muted bool) {
	globalSettings.Muted = muted
	if globalMixer != nil {
		globalMixer.SetMuted(muted)
	}
}

// applyAudioSettings pushes the current settings into the mixer.
func applyAudioSettings() {
	SetMusicVolume(globalSettings.MusicVolume)
	SetSFXVolume(globalSettings.SFXVolume)
	SetMuted(globalSettings.Muted)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
