package synth

import (
	"encoding/binary"
	"io"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rate = beep.SampleRate(44100)

func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneLengthAndRange(t *testing.T) {
	tests := []struct {
		name string
		tone Tone
	}{
		{"sine", Tone{Wave: WaveSine, Freq: 440, Duration: 100 * time.Millisecond, Volume: 1}},
		{"square sweep", Tone{Wave: WaveSquare, Freq: 200, FreqEnd: 800, Duration: 50 * time.Millisecond, Volume: 0.5}},
		{"saw", Tone{Wave: WaveSaw, Freq: 110, Duration: 20 * time.Millisecond, Volume: 1}},
		{"noise", Tone{Wave: WaveNoise, Duration: 30 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 10 * time.Millisecond, Volume: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, peak := drain(tt.tone.Streamer(rate))
			assert.Equal(t, rate.N(tt.tone.Duration), n)
			assert.LessOrEqual(t, peak, tt.tone.Volume+1e-9)
			assert.Greater(t, peak, 0.0)
		})
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	tone := Tone{Wave: WaveSquare, Freq: 100, Duration: 50 * time.Millisecond, Attack: 10 * time.Millisecond, Volume: 1}
	buf := make([][2]float64, 1)
	n, ok := tone.Streamer(rate).Stream(buf)
	require.Equal(t, 1, n)
	require.True(t, ok)
	assert.Zero(t, buf[0][0])
}

func TestSequenceRests(t *testing.T) {
	s := Sequence(rate,
		Tone{Wave: WaveSine, Freq: 440, Duration: 10 * time.Millisecond, Volume: 1},
		Tone{Duration: 20 * time.Millisecond},
		Tone{Wave: WaveSine, Freq: 660, Duration: 10 * time.Millisecond, Volume: 1},
	)
	n, _ := drain(s)
	assert.Equal(t, rate.N(10*time.Millisecond)*2+rate.N(20*time.Millisecond), n)
}

func TestEncodeWAV(t *testing.T) {
	tone := Tone{Wave: WaveSine, Freq: 440, Duration: 25 * time.Millisecond, Volume: 1}
	data, err := EncodeWAV(tone.Streamer(rate), rate)
	require.NoError(t, err)

	require.Greater(t, len(data), 44)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	// 16-bit stereo: 4 bytes per frame after the 44 byte header
	assert.Equal(t, rate.N(tone.Duration)*4, len(data)-44)
	assert.Equal(t, uint32(len(data)-8), binary.LittleEndian.Uint32(data[4:8]))
}

func TestMemFileSeek(t *testing.T) {
	var f memFile
	_, err := f.Write([]byte("abcdef"))
	require.NoError(t, err)

	pos, err := f.Seek(2, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pos)
	_, err = f.Write([]byte("XY"))
	require.NoError(t, err)
	assert.Equal(t, "abXYef", string(f.buf))

	pos, err = f.Seek(-1, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(5), pos)

	_, err = f.Seek(-10, io.SeekCurrent)
	assert.Error(t, err)
}
