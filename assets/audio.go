package assets

import (
	"bytes"
	"fmt"
	"io"

	"github.com/automoto/blaster/config"
	"github.com/automoto/blaster/shared/synth"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader renders the configured tones and hands out players for them
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // decoded PCM, reused by every source
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// render synthesizes a sound as WAV and decodes it at the context's rate.
func (l *AudioLoader) render(id config.SoundID, def config.SoundDef) (*wav.Stream, error) {
	rate := beep.SampleRate(l.context.SampleRate())
	data, err := synth.EncodeWAV(synth.Sequence(rate, def.Tones...), rate)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", id, err)
	}
	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav %s: %w", id, err)
	}
	return stream, nil
}

// LoadSFX returns def.TotalSources players for a sound effect. The decoded
// bytes are cached so every player shares one render.
func (l *AudioLoader) LoadSFX(id config.SoundID, def config.SoundDef) ([]*audio.Player, error) {
	decoded, ok := l.sfxCache[id]
	if !ok {
		stream, err := l.render(id, def)
		if err != nil {
			return nil, err
		}
		decoded, err = io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("failed to read decoded audio %s: %w", id, err)
		}
		l.sfxCache[id] = decoded
	}

	total := max(def.TotalSources, 1)
	players := make([]*audio.Player, 0, total)
	for range total {
		players = append(players, l.context.NewPlayerFromBytes(decoded))
	}
	return players, nil
}

// LoadMusic returns a looping player for a music track.
func (l *AudioLoader) LoadMusic(id config.SoundID, def config.SoundDef) (*audio.Player, error) {
	stream, err := l.render(id, def)
	if err != nil {
		return nil, err
	}

	// Create infinite loop for music
	loop := audio.NewInfiniteLoop(stream, stream.Length())

	player, err := l.context.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player %s: %w", id, err)
	}
	return player, nil
}
