// Package synth renders the game's sound effects and music from oscillator
// descriptions, so the binary ships without audio files. Output is WAV
// encoded and decoded again by the audio loader like any other asset.
package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone is one enveloped oscillator note. FreqEnd slides the pitch linearly
// over the note when non-zero.
type Tone struct {
	Wave     Wave
	Freq     float64
	FreqEnd  float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Volume   float64 // 0..1
}

type oscillator struct {
	from, to float64
	phase    float64
	position int
	total    int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(t Tone, rate beep.SampleRate) *oscillator {
	to := t.FreqEnd
	if to == 0 {
		to = t.Freq
	}
	return &oscillator{
		from:  t.Freq,
		to:    to,
		total: rate.N(t.Duration),
		wave:  t.Wave,
		rate:  rate,
		// Fixed seed so noise renders identically every run.
		rng: rand.New(rand.NewSource(int64(t.Freq*1000) + int64(t.Duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.total)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.position >= start && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Streamer renders a single tone.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(t, rate)
	shaped := &envelope{
		streamer: osc,
		attack:   rate.N(t.Attack),
		release:  rate.N(t.Release),
		total:    osc.total,
	}
	return volume(shaped, t.Volume)
}

// Sequence plays tones back to back. A Tone with zero Volume is a rest.
func Sequence(rate beep.SampleRate, tones ...Tone) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		if t.Volume <= 0 {
			parts = append(parts, beep.Silence(rate.N(t.Duration)))
			continue
		}
		parts = append(parts, t.Streamer(rate))
	}
	return beep.Seq(parts...)
}

// volume scales linearly; effects.Volume works in powers of Base.
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
