package mixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	plays   int
	pauses  int
	rewinds int
	volume  float64
}

func (f *fakeSource) Play()               { f.plays++ }
func (f *fakeSource) Pause()              { f.pauses++ }
func (f *fakeSource) Rewind() error       { f.rewinds++; return nil }
func (f *fakeSource) SetVolume(v float64) { f.volume = v }

func pool(n int) ([]*fakeSource, []Source) {
	fakes := make([]*fakeSource, n)
	srcs := make([]Source, n)
	for i := range fakes {
		fakes[i] = &fakeSource{}
		srcs[i] = fakes[i]
	}
	return fakes, srcs
}

func TestMixer_AddRejectsBadInput(t *testing.T) {
	m := New()
	assert.ErrorIs(t, m.Add("empty", GroupFX, 1), ErrNoSources)

	_, srcs := pool(1)
	require.NoError(t, m.Add("jump", GroupFX, 1, srcs...))
	assert.ErrorIs(t, m.Add("jump", GroupFX, 1, srcs...), ErrDuplicateSound)
}

func TestMixer_PlayRoundRobin(t *testing.T) {
	m := New()
	fakes, srcs := pool(3)
	require.NoError(t, m.Add("shoot", GroupFX, 1, srcs...))

	for i := 0; i < 7; i++ {
		assert.True(t, m.Play("shoot"))
	}
	// 7 plays over 3 sources: 3, 2, 2
	assert.Equal(t, 3, fakes[0].plays)
	assert.Equal(t, 2, fakes[1].plays)
	assert.Equal(t, 2, fakes[2].plays)
	for _, f := range fakes {
		assert.Equal(t, f.plays, f.rewinds)
	}
}

func TestMixer_UnknownSoundIsNoop(t *testing.T) {
	m := New()
	assert.False(t, m.Play("missing"))
	assert.False(t, m.PlayMusic("missing"))
	assert.Equal(t, "", m.MusicPlaying())
}

func TestMixer_MusicTableIsSeparate(t *testing.T) {
	m := New()
	_, srcs := pool(1)
	require.NoError(t, m.Add("LevelTheme", GroupMusic, 1, srcs...))
	assert.False(t, m.Play("LevelTheme"), "music is not reachable as an effect")
	assert.True(t, m.PlayMusic("LevelTheme"))
}

func TestMixer_PlayMusicSwitchesTracks(t *testing.T) {
	m := New()
	a, aSrcs := pool(1)
	b, bSrcs := pool(1)
	require.NoError(t, m.Add("a", GroupMusic, 1, aSrcs...))
	require.NoError(t, m.Add("b", GroupMusic, 1, bSrcs...))

	m.PlayMusic("a")
	m.PlayMusic("a")
	assert.Equal(t, 1, a[0].plays, "same track does not restart")

	m.PlayMusic("b")
	assert.Equal(t, 1, a[0].pauses)
	assert.Equal(t, 1, b[0].plays)
	assert.Equal(t, "b", m.MusicPlaying())

	m.PauseMusic()
	m.ResumeMusic()
	assert.Equal(t, 2, b[0].plays)

	m.StopMusic()
	assert.Equal(t, "", m.MusicPlaying())
}

func TestMixer_GroupVolume(t *testing.T) {
	tests := []struct {
		name    string
		set     func(m *Mixer)
		wantDB  map[Group]float64
		wantFX  float64
		wantMus float64
	}{
		{
			name:    "defaults",
			set:     func(m *Mixer) {},
			wantDB:  map[Group]float64{GroupFX: 0, GroupMusic: 0},
			wantFX:  0.5,
			wantMus: 1,
		},
		{
			name:    "fx at a tenth",
			set:     func(m *Mixer) { m.SetFXVolume(0.1) },
			wantDB:  map[Group]float64{GroupFX: -20, GroupMusic: 0},
			wantFX:  0.05,
			wantMus: 1,
		},
		{
			name:    "music silenced",
			set:     func(m *Mixer) { m.SetMusicVolume(0) },
			wantDB:  map[Group]float64{GroupFX: 0, GroupMusic: -80},
			wantFX:  0.5,
			wantMus: 0.0001,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			fx, fxSrcs := pool(2)
			mus, musSrcs := pool(1)
			require.NoError(t, m.Add("hurt", GroupFX, 0.5, fxSrcs...))
			require.NoError(t, m.Add("theme", GroupMusic, 1, musSrcs...))

			tt.set(m)

			for g, db := range tt.wantDB {
				assert.InDelta(t, db, m.GroupGain(g), 1e-9)
			}
			for _, f := range fx {
				assert.InDelta(t, tt.wantFX, f.volume, 1e-9)
			}
			assert.InDelta(t, tt.wantMus, mus[0].volume, 1e-9)
		})
	}
}

func TestMixer_VolumeAppliesToLaterSounds(t *testing.T) {
	m := New()
	m.SetFXVolume(0.1)
	fx, srcs := pool(1)
	require.NoError(t, m.Add("late", GroupFX, 1, srcs...))
	assert.InDelta(t, 0.1, fx[0].volume, 1e-9)
}

func TestMixer_Mute(t *testing.T) {
	m := New()
	fx, srcs := pool(1)
	require.NoError(t, m.Add("jump", GroupFX, 1, srcs...))

	m.SetMuted(true)
	assert.True(t, m.Muted())
	assert.Zero(t, fx[0].volume)

	m.SetMuted(false)
	assert.InDelta(t, 1.0, fx[0].volume, 1e-9)
}
