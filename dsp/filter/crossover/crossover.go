package crossover

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-stereo/dsp/filter/biquad"
	"github.com/cwbudde/algo-stereo/dsp/filter/design"
)

// Limits applied by ClampFrequency.
const (
	MinFrequency    = 1.0
	MaxNyquistRatio = 0.49
)

// Crossover is a two-way fourth-order Linkwitz-Riley crossover that splits
// an input signal into complementary lowpass and highpass outputs.
//
// The lowpass and highpass outputs sum to the Butterworth allpass at the
// crossover frequency (flat magnitude response).
type Crossover struct {
	lp   *biquad.Chain
	hp   *biquad.Chain
	freq float64
	sr   float64
}

// New creates an LR4 crossover at freq for the given sample rate.
//
// Returns an error when sampleRate is not positive or freq is outside
// (0, sampleRate/2).
func New(freq, sampleRate float64) (*Crossover, error) {
	if err := validate(freq, sampleRate); err != nil {
		return nil, err
	}

	return &Crossover{
		lp:   biquad.NewChain(design.LinkwitzRileyLP(freq, sampleRate)),
		hp:   biquad.NewChain(design.LinkwitzRileyHP(freq, sampleRate)),
		freq: freq,
		sr:   sampleRate,
	}, nil
}

// ProcessSample filters one input sample and returns the lowpass and
// highpass outputs.
func (c *Crossover) ProcessSample(x float64) (lo, hi float64) {
	return c.lp.ProcessSample(x), c.hp.ProcessSample(x)
}

// ProcessBlock filters a block of input samples, writing the lowpass
// output to lo and the highpass output to hi. All three slices must
// have the same length.
func (c *Crossover) ProcessBlock(input, lo, hi []float64) {
	n := len(input)
	if n == 0 {
		return
	}

	_ = lo[n-1]
	_ = hi[n-1]

	copy(lo, input)
	copy(hi, input)
	c.lp.ProcessBlock(lo)
	c.hp.ProcessBlock(hi)
}

// SetFrequency moves the split frequency. Coefficients are recomputed
// immediately and the filter memory is kept, so a change mid-stream may
// produce a small discontinuity.
func (c *Crossover) SetFrequency(freq float64) error {
	if err := validate(freq, c.sr); err != nil {
		return err
	}

	c.setCoefficients(freq)

	return nil
}

// Retune moves the split frequency like SetFrequency but never fails: freq
// is limited with ClampFrequency first. It returns the applied frequency.
func (c *Crossover) Retune(freq float64) float64 {
	freq = ClampFrequency(freq, c.sr)
	c.setCoefficients(freq)

	return freq
}

func (c *Crossover) setCoefficients(freq float64) {
	c.freq = freq
	c.lp.UpdateCoefficients(design.LinkwitzRileyLP(freq, c.sr))
	c.hp.UpdateCoefficients(design.LinkwitzRileyHP(freq, c.sr))
}

// SetSampleRate recomputes the coefficients for a new sample rate and
// clears the filter memory.
func (c *Crossover) SetSampleRate(sampleRate float64) error {
	if err := validate(c.freq, sampleRate); err != nil {
		return err
	}

	c.sr = sampleRate
	c.lp.UpdateCoefficients(design.LinkwitzRileyLP(c.freq, sampleRate))
	c.hp.UpdateCoefficients(design.LinkwitzRileyHP(c.freq, sampleRate))
	c.Reset()

	return nil
}

// LP returns the lowpass chain for direct inspection or analysis.
func (c *Crossover) LP() *biquad.Chain { return c.lp }

// HP returns the highpass chain for direct inspection or analysis.
func (c *Crossover) HP() *biquad.Chain { return c.hp }

// Freq returns the crossover frequency in Hz.
func (c *Crossover) Freq() float64 { return c.freq }

// SampleRate returns the sample rate in Hz.
func (c *Crossover) SampleRate() float64 { return c.sr }

// Reset clears the internal filter states of both LP and HP chains.
func (c *Crossover) Reset() {
	c.lp.Reset()
	c.hp.Reset()
}

// ClampFrequency limits freq to [MinFrequency, MaxNyquistRatio*sampleRate],
// a range every positive sample rate above 2*MinFrequency/MaxNyquistRatio
// accepts. NaN maps to MinFrequency.
func ClampFrequency(freq, sampleRate float64) float64 {
	if !(freq > MinFrequency) {
		return MinFrequency
	}

	return math.Min(freq, sampleRate*MaxNyquistRatio)
}

func validate(freq, sampleRate float64) error {
	if !(sampleRate > 0) {
		return fmt.Errorf("crossover: sample rate must be positive, got %v", sampleRate)
	}

	if !(freq > 0) || freq >= sampleRate/2 {
		return fmt.Errorf("crossover: frequency must be in (0, %v), got %v", sampleRate/2, freq)
	}

	return nil
}
