package audio

import (
	"math"

	"golang.org/x/exp/rand"
)

// Semitone returns base shifted by n equal-tempered semitones.
func Semitone(base float64, n float64) float64 {
	return base * math.Pow(2, n/12.0)
}

// RandFreq returns base shifted by a whole number of semitones drawn
// uniformly from [low, high].
func RandFreq(rng *rand.Rand, base float64, low, high int) float64 {
	if high < low {
		low, high = high, low
	}
	return Semitone(base, float64(low+rng.Intn(high-low+1)))
}

// RandFreqOf returns base shifted by one of steps, chosen uniformly.
func RandFreqOf(rng *rand.Rand, base float64, steps []int) float64 {
	if len(steps) == 0 {
		return base
	}
	return Semitone(base, float64(steps[rng.Intn(len(steps))]))
}
