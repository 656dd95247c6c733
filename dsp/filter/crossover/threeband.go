package crossover

import (
	"fmt"

	"github.com/cwbudde/algo-stereo/dsp/filter/biquad"
	"github.com/cwbudde/algo-stereo/dsp/filter/design"
)

// ThreeBand splits one channel into low, mid and high bands with two
// cascaded LR4 crossovers.
//
// The first stage splits at the low/mid frequency f1. Its highpass output
// feeds the second stage at the mid/high frequency f2. A plain cascade sums
// to LP1 + AP2·HP1, which is not flat, so the low band is passed through
// the allpass AP2 as well. The three bands then sum to AP2·AP1.
type ThreeBand struct {
	lowMid  *Crossover
	midHigh *Crossover
	comp    *biquad.Section
}

// NewThreeBand creates a three-band splitter with split frequencies
// lowMid and midHigh. Both must be valid for sampleRate.
func NewThreeBand(lowMid, midHigh, sampleRate float64) (*ThreeBand, error) {
	lm, err := New(lowMid, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("crossover: low/mid stage: %w", err)
	}

	mh, err := New(midHigh, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("crossover: mid/high stage: %w", err)
	}

	return &ThreeBand{
		lowMid:  lm,
		midHigh: mh,
		comp:    biquad.NewSection(design.Allpass(midHigh, design.ButterworthQ, sampleRate)),
	}, nil
}

// ProcessSample splits one input sample into its three bands.
func (t *ThreeBand) ProcessSample(x float64) (low, mid, high float64) {
	low, rest := t.lowMid.ProcessSample(x)
	mid, high = t.midHigh.ProcessSample(rest)
	low = t.comp.ProcessSample(low)

	return low, mid, high
}

// SetLowMid moves the low/mid split frequency, keeping filter memory.
func (t *ThreeBand) SetLowMid(freq float64) error {
	return t.lowMid.SetFrequency(freq)
}

// SetMidHigh moves the mid/high split frequency and the low-band phase
// compensation with it, keeping filter memory.
func (t *ThreeBand) SetMidHigh(freq float64) error {
	if err := t.midHigh.SetFrequency(freq); err != nil {
		return err
	}

	t.comp.Coefficients = design.Allpass(freq, design.ButterworthQ, t.midHigh.SampleRate())

	return nil
}

// RetuneLowMid is SetLowMid with the frequency clamped by ClampFrequency.
// It returns the applied frequency.
func (t *ThreeBand) RetuneLowMid(freq float64) float64 {
	return t.lowMid.Retune(freq)
}

// RetuneMidHigh is SetMidHigh with the frequency clamped by
// ClampFrequency. It returns the applied frequency.
func (t *ThreeBand) RetuneMidHigh(freq float64) float64 {
	freq = t.midHigh.Retune(freq)
	t.comp.Coefficients = design.Allpass(freq, design.ButterworthQ, t.midHigh.SampleRate())

	return freq
}

// SetSampleRate recomputes all stages for a new sample rate and clears
// their memory.
func (t *ThreeBand) SetSampleRate(sampleRate float64) error {
	if err := t.lowMid.SetSampleRate(sampleRate); err != nil {
		return fmt.Errorf("crossover: low/mid stage: %w", err)
	}

	if err := t.midHigh.SetSampleRate(sampleRate); err != nil {
		return fmt.Errorf("crossover: mid/high stage: %w", err)
	}

	t.comp.Coefficients = design.Allpass(t.midHigh.Freq(), design.ButterworthQ, sampleRate)
	t.comp.Reset()

	return nil
}

// Reset clears all filter memory.
func (t *ThreeBand) Reset() {
	t.lowMid.Reset()
	t.midHigh.Reset()
	t.comp.Reset()
}

// LowMid returns the low/mid split frequency in Hz.
func (t *ThreeBand) LowMid() float64 { return t.lowMid.Freq() }

// MidHigh returns the mid/high split frequency in Hz.
func (t *ThreeBand) MidHigh() float64 { return t.midHigh.Freq() }

// Stages returns the low/mid and mid/high crossovers.
func (t *ThreeBand) Stages() (lowMid, midHigh *Crossover) {
	return t.lowMid, t.midHigh
}

// Compensation returns the allpass section applied to the low band.
func (t *ThreeBand) Compensation() *biquad.Section { return t.comp }
