package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine returns length samples of a zero-phase sine.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	w := 2 * math.Pi * freqHz / sampleRate
	out := make([]float64, length)
	for n := range out {
		out[n] = amplitude * math.Sin(w*float64(n))
	}
	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude) from a
// seeded source, so repeated calls with one seed are identical.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	src := rand.New(rand.NewSource(seed))
	out := make([]float64, length)
	for n := range out {
		out[n] = amplitude * (2*src.Float64() - 1)
	}
	return out
}

// Impulse returns a buffer with a single 1 at pos. An out-of-range pos
// yields silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC returns a constant buffer.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for n := range out {
		out[n] = value
	}
	return out
}

// Ones is DC(1, n).
func Ones(n int) []float64 { return DC(1, n) }

// StereoSine returns independent left and right sines sharing one sample
// rate.
func StereoSine(freqL, freqR, sampleRate, amplitude float64, length int) (left, right []float64) {
	return DeterministicSine(freqL, sampleRate, amplitude, length),
		DeterministicSine(freqR, sampleRate, amplitude, length)
}

// StereoNoise returns two uncorrelated noise channels seeded with seed and
// seed+1.
func StereoNoise(seed int64, amplitude float64, length int) (left, right []float64) {
	return DeterministicNoise(seed, amplitude, length),
		DeterministicNoise(seed+1, amplitude, length)
}

// Clone returns a deep copy of each channel.
func Clone(channels ...[]float64) [][]float64 {
	out := make([][]float64, len(channels))
	for i, ch := range channels {
		out[i] = append([]float64(nil), ch...)
	}
	return out
}

// Interleave packs left and right into one LRLR... buffer of their common
// length.
func Interleave(left, right []float64) []float64 {
	n := min(len(left), len(right))
	out := make([]float64, 0, 2*n)
	for i := range n {
		out = append(out, left[i], right[i])
	}
	return out
}
