package audio

import (
	"fmt"
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	channelCount = 2
	frameBytes   = 4 * channelCount // float32 LE per channel
	// maxVoices caps simultaneous players; collisions in a crowded level can
	// fire a burst of blips in one frame.
	maxVoices = 24
)

// OtoOutput plays waveforms on an oto/v2 context. Each Play gets its own
// player, which a goroutine closes once the sound has finished.
type OtoOutput struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	voices int32
}

// NewOtoOutput opens the audio device. volume is the master gain in [0,1].
func NewOtoOutput(sampleRate int, volume float64) (*OtoOutput, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	return &OtoOutput{ctx: ctx, ready: ready, volume: clampF(volume, 0, 1)}, nil
}

// Play starts samples at volume, positioned at pan. Sounds requested before
// the device is ready, or beyond the voice cap, are dropped.
func (o *OtoOutput) Play(samples []float32, volume, pan float64) {
	if len(samples) == 0 || volume <= 0 {
		return
	}
	select {
	case <-o.ready:
	default:
		return
	}
	if atomic.AddInt32(&o.voices, 1) > maxVoices {
		atomic.AddInt32(&o.voices, -1)
		return
	}
	left, right := panGains(pan)
	go func() {
		defer atomic.AddInt32(&o.voices, -1)
		reader := &pannedReader{data: samples, left: left, right: right}
		player := o.ctx.NewPlayer(reader)
		player.SetVolume(o.volume * clampF(volume, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// panGains maps pan in [-1,1] to channel gains; the centre plays both
// channels at full level.
func panGains(pan float64) (left, right float64) {
	pan = clampF(pan, -1, 1)
	return math.Min(1, 1-pan), math.Min(1, 1+pan)
}

// pannedReader streams a mono buffer as interleaved stereo float32 frames.
type pannedReader struct {
	data        []float32
	pos         int
	left, right float64
}

func (r *pannedReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	frames := len(p) / frameBytes
	if rest := len(r.data) - r.pos; frames > rest {
		frames = rest
	}
	for i := 0; i < frames; i++ {
		s := float64(r.data[r.pos+i])
		putStereoF32LR(p, i, s*r.left, s*r.right)
	}
	r.pos += frames
	return frames * frameBytes, nil
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
