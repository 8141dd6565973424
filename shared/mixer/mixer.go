// Package mixer keeps named, pooled sound sources split into an effects
// group and a music group. Each play takes the next source of its sound in
// round robin, so rapid repeats overlap instead of cutting each other off.
//
// It is headless: *audio.Player from ebiten satisfies Source, and tests use
// fakes.
package mixer

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/blaster/shared/gamemath"
)

// Source is one playable voice.
type Source interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
}

// Group selects which volume a sound follows.
type Group int

const (
	GroupFX Group = iota
	GroupMusic
)

func (g Group) String() string {
	if g == GroupMusic {
		return "music"
	}
	return "fx"
}

var (
	ErrNoSources      = errors.New("mixer: sound needs at least one source")
	ErrDuplicateSound = errors.New("mixer: sound already registered")
)

// Sound is a named pool of sources.
type Sound struct {
	Name   string
	Group  Group
	Volume float64 // per-sound multiplier on top of the group volume

	sources []Source
	current int
}

// Next returns the source the next play will use and advances the cursor.
func (s *Sound) next() Source {
	src := s.sources[s.current]
	s.current = (s.current + 1) % len(s.sources)
	return src
}

// Mixer owns every registered sound. It is not safe for concurrent use; the
// game calls it from the update goroutine only.
type Mixer struct {
	sounds map[string]*Sound
	music  map[string]*Sound

	gainDB map[Group]float64
	muted  bool

	playing *Sound
}

// New returns a mixer with both groups at full volume.
func New() *Mixer {
	return &Mixer{
		sounds: make(map[string]*Sound),
		music:  make(map[string]*Sound),
		gainDB: map[Group]float64{GroupFX: 0, GroupMusic: 0},
	}
}

// Add registers a sound with its pool of sources.
func (m *Mixer) Add(name string, group Group, volume float64, sources ...Source) error {
	if len(sources) == 0 {
		return fmt.Errorf("%w: %s", ErrNoSources, name)
	}
	table := m.table(group)
	if _, ok := table[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSound, name)
	}
	s := &Sound{Name: name, Group: group, Volume: volume, sources: sources}
	table[name] = s
	m.applyVolume(s)
	return nil
}

func (m *Mixer) table(g Group) map[string]*Sound {
	if g == GroupMusic {
		return m.music
	}
	return m.sounds
}

// Play starts the next source of an effect. Unknown names are logged and
// ignored.
func (m *Mixer) Play(name string) bool {
	s, ok := m.sounds[name]
	if !ok {
		log.Printf("Warning: sound %s could not be found", name)
		return false
	}
	src := s.next()
	if err := src.Rewind(); err != nil {
		log.Printf("Warning: rewind %s: %v", name, err)
	}
	src.Play()
	return true
}

// PlayMusic switches the music track. Asking for the track already playing
// is a no-op.
func (m *Mixer) PlayMusic(name string) bool {
	s, ok := m.music[name]
	if !ok {
		log.Printf("Warning: music %s could not be found", name)
		return false
	}
	if m.playing == s {
		return true
	}
	m.StopMusic()
	src := s.next()
	if err := src.Rewind(); err != nil {
		log.Printf("Warning: rewind %s: %v", name, err)
	}
	src.Play()
	m.playing = s
	return true
}

// StopMusic pauses every source of the current track.
func (m *Mixer) StopMusic() {
	if m.playing == nil {
		return
	}
	for _, src := range m.playing.sources {
		src.Pause()
	}
	m.playing = nil
}

// PauseMusic and ResumeMusic leave the track selection untouched.
func (m *Mixer) PauseMusic() {
	if m.playing == nil {
		return
	}
	for _, src := range m.playing.sources {
		src.Pause()
	}
}

func (m *Mixer) ResumeMusic() {
	if m.playing == nil {
		return
	}
	last := (m.playing.current - 1 + len(m.playing.sources)) % len(m.playing.sources)
	m.playing.sources[last].Play()
}

// MusicPlaying returns the current track name, or "".
func (m *Mixer) MusicPlaying() string {
	if m.playing == nil {
		return ""
	}
	return m.playing.Name
}

// SetFXVolume sets the effects group from a 0..1 slider value.
func (m *Mixer) SetFXVolume(v float64) { m.setGroupVolume(GroupFX, v) }

// SetMusicVolume sets the music group from a 0..1 slider value.
func (m *Mixer) SetMusicVolume(v float64) { m.setGroupVolume(GroupMusic, v) }

func (m *Mixer) setGroupVolume(g Group, v float64) {
	m.gainDB[g] = gamemath.LinearToDecibels(v)
	for _, s := range m.table(g) {
		m.applyVolume(s)
	}
}

// GroupGain returns a group's gain in decibels.
func (m *Mixer) GroupGain(g Group) float64 {
	return m.gainDB[g]
}

// SetMuted silences both groups without losing their gains.
func (m *Mixer) SetMuted(muted bool) {
	m.muted = muted
	for _, s := range m.sounds {
		m.applyVolume(s)
	}
	for _, s := range m.music {
		m.applyVolume(s)
	}
}

func (m *Mixer) Muted() bool { return m.muted }

func (m *Mixer) applyVolume(s *Sound) {
	vol := 0.0
	if !m.muted {
		vol = gamemath.DecibelsToLinear(m.gainDB[s.Group]) * s.Volume
	}
	for _, src := range s.sources {
		src.SetVolume(vol)
	}
}
