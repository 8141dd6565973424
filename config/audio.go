package config

import (
	"time"

	"github.com/automoto/blaster/shared/synth"
)

// SoundID names a sound in the mixer. The player controller's sound ids use
// the same strings.
type SoundID string

const (
	SoundPlayerJump   SoundID = "PlayerJump"
	SoundPlayerShoot  SoundID = "PlayerShoot"
	SoundPlayerHurt   SoundID = "PlayerHurt"
	SoundHealthPickUp SoundID = "HealthPickUp"
	SoundEnemyHurt    SoundID = "EnemyHurt"
	SoundEnemyAttack  SoundID = "EnemyAttack"

	MusicLevelTheme SoundID = "LevelTheme"
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	PlayMusic       bool // start the level theme with each level
}

// SoundDef describes how a sound is rendered and pooled.
type SoundDef struct {
	TotalSources int     // players allocated for round-robin playback
	Volume       float64 // multiplier on top of the group volume
	Tones        []synth.Tone
}

// SoundConfig maps sound IDs to their definitions
type SoundConfig struct {
	SFX   map[SoundID]SoundDef
	Music map[SoundID]SoundDef
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.5,
		DefaultSFXVol:   0.8,
		PlayMusic:       true,
	}

	ms := time.Millisecond
	Sound = SoundConfig{
		SFX: map[SoundID]SoundDef{
			SoundPlayerJump: {TotalSources: 2, Volume: 0.6, Tones: []synth.Tone{
				{Wave: synth.WaveSquare, Freq: 260, FreqEnd: 620, Duration: 120 * ms, Attack: 5 * ms, Release: 60 * ms, Volume: 0.4},
			}},
			SoundPlayerShoot: {TotalSources: 4, Volume: 0.5, Tones: []synth.Tone{
				{Wave: synth.WaveSquare, Freq: 900, FreqEnd: 300, Duration: 80 * ms, Attack: 2 * ms, Release: 40 * ms, Volume: 0.35},
			}},
			SoundPlayerHurt: {TotalSources: 2, Volume: 0.8, Tones: []synth.Tone{
				{Wave: synth.WaveSaw, Freq: 400, FreqEnd: 90, Duration: 250 * ms, Attack: 2 * ms, Release: 120 * ms, Volume: 0.5},
			}},
			SoundHealthPickUp: {TotalSources: 2, Volume: 0.7, Tones: []synth.Tone{
				{Wave: synth.WaveSine, Freq: 880, Duration: 70 * ms, Attack: 2 * ms, Release: 30 * ms, Volume: 0.6},
				{Wave: synth.WaveSine, Freq: 1320, Duration: 120 * ms, Attack: 2 * ms, Release: 80 * ms, Volume: 0.6},
			}},
			SoundEnemyHurt: {TotalSources: 3, Volume: 0.6, Tones: []synth.Tone{
				{Wave: synth.WaveNoise, Duration: 90 * ms, Attack: 1 * ms, Release: 60 * ms, Volume: 0.5},
			}},
			SoundEnemyAttack: {TotalSources: 2, Volume: 0.6, Tones: []synth.Tone{
				{Wave: synth.WaveSaw, Freq: 150, FreqEnd: 110, Duration: 150 * ms, Attack: 5 * ms, Release: 70 * ms, Volume: 0.5},
			}},
		},
		Music: map[SoundID]SoundDef{
			MusicLevelTheme: {TotalSources: 1, Volume: 0.5, Tones: levelTheme()},
		},
	}
}

// levelTheme is a short square-wave bass loop.
func levelTheme() []synth.Tone {
	notes := []float64{
		110.00, 0, 130.81, 110.00, 164.81, 0, 146.83, 130.81,
		98.00, 0, 116.54, 98.00, 146.83, 0, 130.81, 116.54,
	}
	tones := make([]synth.Tone, 0, len(notes))
	for _, f := range notes {
		t := synth.Tone{Duration: 180 * time.Millisecond}
		if f > 0 {
			t.Wave = synth.WaveSquare
			t.Freq = f
			t.Attack = 5 * time.Millisecond
			t.Release = 60 * time.Millisecond
			t.Volume = 0.3
		}
		tones = append(tones, t)
	}
	return tones
}
