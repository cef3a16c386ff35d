package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestPanGains(t *testing.T) {
	cases := []struct {
		pan         float64
		left, right float64
	}{
		{0, 1, 1},
		{-1, 1, 0},
		{1, 0, 1},
		{0.5, 0.5, 1},
		{-3, 1, 0},
	}
	for _, c := range cases {
		l, r := panGains(c.pan)
		if l != c.left || r != c.right {
			t.Errorf("panGains(%v) = (%v, %v), want (%v, %v)", c.pan, l, r, c.left, c.right)
		}
	}
}

func TestPannedReaderInterleaves(t *testing.T) {
	r := &pannedReader{data: []float32{1, -1, 1}, left: 0.5, right: 1}
	buf := make([]byte, 2*frameBytes)
	n, err := r.Read(buf)
	if err != nil || n != 2*frameBytes {
		t.Fatalf("first read: n=%d err=%v", n, err)
	}
	left := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:]))
	right := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:]))
	if left != 0.5 || right != 1 {
		t.Fatalf("frame 0: got (%f, %f)", left, right)
	}
	left = math.Float32frombits(binary.LittleEndian.Uint32(buf[8:]))
	if left != -0.5 {
		t.Fatalf("frame 1 left: got %f", left)
	}
	n, err = r.Read(buf)
	if err != nil || n != frameBytes {
		t.Fatalf("tail read: n=%d err=%v", n, err)
	}
	if _, err := r.Read(buf); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestRandFreqRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	lo, hi := Semitone(880, -3), Semitone(880, 3)
	for i := 0; i < 200; i++ {
		f := RandFreq(rng, 880, -3, 3)
		if f < lo-1e-9 || f > hi+1e-9 {
			t.Fatalf("frequency %f outside [%f, %f]", f, lo, hi)
		}
	}
	if got := RandFreqOf(rng, 440, []int{12}); math.Abs(got-880) > 1e-9 {
		t.Fatalf("octave step: got %f", got)
	}
	if got := RandFreqOf(rng, 440, nil); got != 440 {
		t.Fatalf("empty steps should keep base, got %f", got)
	}
}
