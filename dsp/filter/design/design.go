package design

import (
	"math"

	"github.com/cwbudde/algo-stereo/dsp/filter/biquad"
)

// ButterworthQ is the quality factor of a maximally flat second-order section.
const ButterworthQ = 1 / math.Sqrt2

// Lowpass designs a Butterworth lowpass section at freq (Hz).
// Invalid input (freq outside (0, Nyquist), bad sample rate) returns
// identity coefficients so callers never run an unstable filter.
func Lowpass(freq, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * ButterworthQ)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Highpass designs a Butterworth highpass section at freq (Hz).
// Invalid input returns identity coefficients.
func Highpass(freq, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * ButterworthQ)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Allpass designs a second-order allpass section centered at freq (Hz).
// A non-positive or non-finite q falls back to ButterworthQ.
// Invalid frequencies return identity coefficients.
func Allpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		q = ButterworthQ
	}

	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b0 := 1 - alpha
	b1 := -2 * cw
	b2 := 1 + alpha
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// LinkwitzRileyLP returns the two identical Butterworth lowpass sections of
// a fourth-order Linkwitz-Riley lowpass branch.
func LinkwitzRileyLP(freq, sampleRate float64) []biquad.Coefficients {
	c := Lowpass(freq, sampleRate)
	return []biquad.Coefficients{c, c}
}

// LinkwitzRileyHP returns the two identical Butterworth highpass sections of
// a fourth-order Linkwitz-Riley highpass branch.
func LinkwitzRileyHP(freq, sampleRate float64) []biquad.Coefficients {
	c := Highpass(freq, sampleRate)
	return []biquad.Coefficients{c, c}
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Identity()
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
