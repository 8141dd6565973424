package synth

import (
	"errors"
	"fmt"
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Format is what every rendered clip uses: 16-bit stereo.
func Format(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

// EncodeWAV renders s to completion and returns a WAV file in memory.
func EncodeWAV(s beep.Streamer, rate beep.SampleRate) ([]byte, error) {
	var f memFile
	if err := wav.Encode(&f, s, Format(rate)); err != nil {
		return nil, fmt.Errorf("encode wav: %w", err)
	}
	return f.buf, nil
}

// memFile is an in-memory io.WriteSeeker; wav.Encode seeks back to patch
// the header sizes.
type memFile struct {
	buf []byte
	pos int64
}

func (m *memFile) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.buf)) {
		m.buf = append(m.buf, make([]byte, end-int64(len(m.buf)))...)
	}
	copy(m.buf[m.pos:], p)
	m.pos = end
	return len(p), nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = m.pos + offset
	case io.SeekEnd:
		abs = int64(len(m.buf)) + offset
	default:
		return 0, errors.New("synth: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("synth: negative position")
	}
	m.pos = abs
	return abs, nil
}
