// Package audio turns gameplay cues into pulse-wave playback: Synth generates
// and caches waveforms, Scheduler delays notes until they are due.
package audio

import "math"

const DefaultSampleRate = 44100

// DefaultTimbre is the duty cycle used when a note names none.
const DefaultTimbre = 0.5

// waveKey quantizes a waveform request: whole hertz, milliseconds and percent
// of duty cycle.
type waveKey struct {
	freq   int
	millis int
	timbre int
}

func quantize(freq, duration, timbre float64) waveKey {
	return waveKey{
		freq:   int(math.Floor(freq)),
		millis: int(math.Floor(duration * 1000)),
		timbre: int(math.Floor(timbre * 100)),
	}
}

// Wave is a generated mono pulse wave. Samples are +1 or -1; gain and pan are
// applied at playback.
type Wave struct {
	key     waveKey
	Samples []float32
}

// Output plays mono samples with a gain and a stereo position in [-1,1].
// Implementations must not block.
type Output interface {
	Play(samples []float32, volume, pan float64)
}

// Silent discards everything. Used when the audio device is unavailable.
type Silent struct{}

func (Silent) Play([]float32, float64, float64) {}

// Synth generates pulse waves and caches them for the process lifetime.
type Synth struct {
	rate  int
	out   Output
	cache map[waveKey]*Wave
}

func NewSynth(sampleRate int, out Output) *Synth {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if out == nil {
		out = Silent{}
	}
	return &Synth{
		rate:  sampleRate,
		out:   out,
		cache: make(map[waveKey]*Wave),
	}
}

// SampleRate returns the generation rate in hertz.
func (s *Synth) SampleRate() int { return s.rate }

// CacheLen returns the number of distinct cached waveforms.
func (s *Synth) CacheLen() int { return len(s.cache) }

// Synthesize returns the waveform for the quantized (freq, duration, timbre)
// triple, generating it on first use. Requests with freq or duration <= 0
// yield nil.
func (s *Synth) Synthesize(freq, duration, timbre float64) *Wave {
	if freq <= 0 || duration <= 0 {
		return nil
	}
	key := quantize(freq, duration, timbre)
	if w, ok := s.cache[key]; ok {
		return w
	}

	n := int(duration * float64(s.rate))
	period := int(float64(s.rate) / freq)
	if period < 1 {
		period = 1
	}
	duty := int(timbre * float64(period))
	samples := make([]float32, n)
	for i := range samples {
		if i%period < duty {
			samples[i] = 1
		} else {
			samples[i] = -1
		}
	}
	w := &Wave{key: key, Samples: samples}
	s.cache[key] = w
	return w
}

// Play hands w to the output. It returns immediately.
func (s *Synth) Play(w *Wave, volume, pan float64) {
	if w == nil || len(w.Samples) == 0 || volume <= 0 {
		return
	}
	s.out.Play(w.Samples, volume, pan)
}

// Beep synthesizes and plays a note right away.
func (s *Synth) Beep(freq, duration, volume, timbre, pan float64) {
	s.Play(s.Synthesize(freq, duration, timbre), volume, pan)
}
