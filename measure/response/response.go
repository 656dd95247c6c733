package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stereo/dsp/core"
)

var (
	// ErrInvalidSize is returned when the FFT size is not a power of two >= 2.
	ErrInvalidSize = errors.New("response: size must be a power of two >= 2")
	// ErrInvalidSampleRate is returned for a non-positive or non-finite rate.
	ErrInvalidSampleRate = errors.New("response: sample rate must be > 0 and finite")
)

// Processor transforms a set of channel buffers in place.
type Processor interface {
	Process(channels [][]float64)
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc func(channels [][]float64)

// Process calls f(channels).
func (f ProcessorFunc) Process(channels [][]float64) { f(channels) }

// Excitation selects which channels receive the impulse.
type Excitation int

const (
	// ExciteBoth drives both channels with the same impulse (pure mid).
	ExciteBoth Excitation = iota
	// ExciteLeft drives the left channel only.
	ExciteLeft
	// ExciteRight drives the right channel only.
	ExciteRight
	// ExciteSide drives left with +1 and right with -1 (pure side).
	ExciteSide
)

// String returns the excitation name.
func (e Excitation) String() string {
	switch e {
	case ExciteBoth:
		return "mid"
	case ExciteLeft:
		return "left"
	case ExciteRight:
		return "right"
	case ExciteSide:
		return "side"
	default:
		return fmt.Sprintf("Excitation(%d)", int(e))
	}
}

// Channel selects an output channel of a Response.
type Channel int

const (
	Left Channel = iota
	Right
)

// Response is the measured magnitude response of a stereo processor.
// Magnitudes hold bins 0..Size/2 for each output channel.
type Response struct {
	SampleRate float64
	Size       int
	Excitation Excitation

	Magnitudes [2][]float64
	Impulse    [2][]float64
}

// Measure feeds a unit impulse of length n through p and returns the
// magnitude response of both outputs. The processor is expected to be
// freshly configured or reset.
func Measure(p Processor, sampleRate float64, n int, exc Excitation) (*Response, error) {
	if n < 2 || n&(n-1) != 0 {
		return nil, ErrInvalidSize
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, ErrInvalidSampleRate
	}

	left := make([]float64, n)
	right := make([]float64, n)

	switch exc {
	case ExciteBoth:
		left[0], right[0] = 1, 1
	case ExciteLeft:
		left[0] = 1
	case ExciteRight:
		right[0] = 1
	case ExciteSide:
		left[0], right[0] = 1, -1
	default:
		return nil, fmt.Errorf("response: unknown excitation %d", int(exc))
	}

	p.Process([][]float64{left, right})

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	r := &Response{
		SampleRate: sampleRate,
		Size:       n,
		Excitation: exc,
		Impulse:    [2][]float64{left, right},
	}

	in := make([]complex128, n)
	out := make([]complex128, n)
	re := make([]float64, n/2+1)
	im := make([]float64, n/2+1)

	for ch, data := range r.Impulse {
		for i, v := range data {
			in[i] = complex(v, 0)
		}

		err = plan.Forward(out, in)
		if err != nil {
			return nil, fmt.Errorf("response: fft: %w", err)
		}

		for k := range re {
			re[k] = real(out[k])
			im[k] = imag(out[k])
		}

		mag := make([]float64, n/2+1)
		vecmath.Magnitude(mag, re, im)
		r.Magnitudes[ch] = mag
	}

	return r, nil
}

// Bin returns the FFT bin nearest to freq, clamped to [0, Size/2].
func (r *Response) Bin(freq float64) int {
	k := int(math.Round(freq * float64(r.Size) / r.SampleRate))
	return min(max(k, 0), r.Size/2)
}

// BinFrequency returns the centre frequency of bin k in Hz.
func (r *Response) BinFrequency(k int) float64 {
	return float64(k) * r.SampleRate / float64(r.Size)
}

// MagnitudeAt returns the linear magnitude of ch at the bin nearest freq.
func (r *Response) MagnitudeAt(ch Channel, freq float64) float64 {
	return r.Magnitudes[ch][r.Bin(freq)]
}

// MagnitudeDBAt returns MagnitudeAt in dB, floored at core.SilenceFloorDB.
func (r *Response) MagnitudeDBAt(ch Channel, freq float64) float64 {
	return core.LinearToDecibels(r.MagnitudeAt(ch, freq))
}

// MaxDeviationDB returns the largest absolute deviation from 0 dB of ch
// over the bins between lo and hi Hz.
func (r *Response) MaxDeviationDB(ch Channel, lo, hi float64) float64 {
	worst := 0.0
	for k := r.Bin(lo); k <= r.Bin(hi); k++ {
		worst = math.Max(worst, math.Abs(core.LinearToDecibels(r.Magnitudes[ch][k])))
	}
	return worst
}
