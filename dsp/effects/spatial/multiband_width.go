package spatial

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-stereo/dsp/core"
	"github.com/cwbudde/algo-stereo/dsp/filter/crossover"
	"github.com/cwbudde/algo-stereo/dsp/param"
	"github.com/cwbudde/algo-stereo/measure/stereo"
)

const (
	defaultLowMidFreq  = 250.0
	defaultMidHighFreq = 4000.0
	defaultBandWidth   = 100.0

	minLowMidFreq  = 80.0
	maxLowMidFreq  = 1000.0
	minMidHighFreq = 1000.0
	maxMidHighFreq = 10000.0
)

// Band identifies one band of a MultibandWidth processor.
type Band int

const (
	BandLow Band = iota
	BandMid
	BandHigh

	numBands = 3
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandMid:
		return "mid"
	case BandHigh:
		return "high"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// MultibandWidthOption mutates multiband width construction parameters.
type MultibandWidthOption func(*multibandWidthConfig) error

type multibandWidthConfig struct {
	lowMid      float64
	midHigh     float64
	widths      [numBands]float64
	enabled     bool
	smoothingMs float64
}

func defaultMultibandWidthConfig() multibandWidthConfig {
	return multibandWidthConfig{
		lowMid:      defaultLowMidFreq,
		midHigh:     defaultMidHighFreq,
		widths:      [numBands]float64{defaultBandWidth, defaultBandWidth, defaultBandWidth},
		smoothingMs: param.DefaultRampMs,
	}
}

// WithCrossovers sets the low/mid and mid/high split frequencies in Hz.
// Valid ranges are [80, 1000] and [1000, 10000].
func WithCrossovers(lowMid, midHigh float64) MultibandWidthOption {
	return func(cfg *multibandWidthConfig) error {
		if lowMid < minLowMidFreq || lowMid > maxLowMidFreq || math.IsNaN(lowMid) {
			return fmt.Errorf("multiband width low/mid crossover must be in [%g, %g]: %f",
				minLowMidFreq, maxLowMidFreq, lowMid)
		}

		if midHigh < minMidHighFreq || midHigh > maxMidHighFreq || math.IsNaN(midHigh) {
			return fmt.Errorf("multiband width mid/high crossover must be in [%g, %g]: %f",
				minMidHighFreq, maxMidHighFreq, midHigh)
		}

		cfg.lowMid = lowMid
		cfg.midHigh = midHigh

		return nil
	}
}

// WithBandWidths sets the initial low, mid and high widths in percent.
func WithBandWidths(low, mid, high float64) MultibandWidthOption {
	return func(cfg *multibandWidthConfig) error {
		for i, w := range [numBands]float64{low, mid, high} {
			if w < minWidthPercent || w > maxWidthPercent || math.IsNaN(w) {
				return fmt.Errorf("multiband width %s band width must be in [%g, %g]: %f",
					Band(i), minWidthPercent, maxWidthPercent, w)
			}
		}

		cfg.widths = [numBands]float64{low, mid, high}

		return nil
	}
}

// WithMultibandEnabled sets whether the processor starts enabled.
func WithMultibandEnabled(enabled bool) MultibandWidthOption {
	return func(cfg *multibandWidthConfig) error {
		cfg.enabled = enabled
		return nil
	}
}

// WithBandSmoothingMs sets the ramp time of the band width smoothers.
func WithBandSmoothingMs(ms float64) MultibandWidthOption {
	return func(cfg *multibandWidthConfig) error {
		if ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
			return fmt.Errorf("multiband width smoothing must be >= 0 and finite: %f", ms)
		}

		cfg.smoothingMs = ms

		return nil
	}
}

// MultibandWidth applies independent mid/side width to three frequency
// bands.
//
// Each channel is split by a phase-compensated three-band LR4 network; the
// band pairs are width-processed and summed back. With every band at 100%
// the output is an allpass-filtered copy of the input. When disabled or
// bypassed, Process returns without touching the buffers or running any
// filter.
type MultibandWidth struct {
	sampleRate float64
	blockSize  int

	lowMid  float64
	midHigh float64
	enabled bool
	bypass  bool

	widthPercent [numBands]float64
	width        [numBands]*param.Smoother

	splitL *crossover.ThreeBand
	splitR *crossover.ThreeBand

	level [numBands]stereo.Value
}

// NewMultibandWidth creates a three-band width processor for sampleRate.
// The processor starts disabled unless WithMultibandEnabled(true) is given.
func NewMultibandWidth(sampleRate float64, opts ...MultibandWidthOption) (*MultibandWidth, error) {
	cfg := defaultMultibandWidthConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	m := &MultibandWidth{
		lowMid:       cfg.lowMid,
		midHigh:      cfg.midHigh,
		enabled:      cfg.enabled,
		widthPercent: cfg.widths,
	}
	for b := range numBands {
		m.width[b] = param.NewSmoother(cfg.widths[b]/100, cfg.smoothingMs)
	}

	err := m.Configure(sampleRate, core.DefaultProcessorConfig().BlockSize)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Configure prepares the processor for a stream format. Coefficients and
// smoothing rates are recomputed and all state is cleared.
func (m *MultibandWidth) Configure(sampleRate float64, blockSize int) error {
	if !(core.ProcessorConfig{SampleRate: sampleRate, BlockSize: blockSize}).Validate() {
		return fmt.Errorf("multiband width: invalid configuration: sample rate %v, block size %d",
			sampleRate, blockSize)
	}

	f1 := crossover.ClampFrequency(m.lowMid, sampleRate)
	f2 := crossover.ClampFrequency(m.midHigh, sampleRate)

	splitL, err := crossover.NewThreeBand(f1, f2, sampleRate)
	if err != nil {
		return fmt.Errorf("multiband width: %w", err)
	}

	splitR, err := crossover.NewThreeBand(f1, f2, sampleRate)
	if err != nil {
		return fmt.Errorf("multiband width: %w", err)
	}

	m.sampleRate = sampleRate
	m.blockSize = blockSize
	m.splitL = splitL
	m.splitR = splitR

	for _, s := range m.width {
		s.Configure(sampleRate)
	}

	m.Reset()

	return nil
}

// Reset clears filter memory and published band levels. Parameter values
// are kept; smoothers jump to their targets.
func (m *MultibandWidth) Reset() {
	m.splitL.Reset()
	m.splitR.Reset()

	for b := range numBands {
		m.width[b].Snap()
		m.level[b].Store(0)
	}
}

// Process transforms paired left/right buffers in place. Only the common
// prefix of both buffers is processed.
func (m *MultibandWidth) Process(left, right []float64) {
	if !m.enabled || m.bypass {
		return
	}

	n := min(len(left), len(right))
	if n == 0 {
		return
	}

	var sum [numBands]float64

	for i := range n {
		var bl, br [numBands]float64
		bl[BandLow], bl[BandMid], bl[BandHigh] = m.splitL.ProcessSample(left[i])
		br[BandLow], br[BandMid], br[BandHigh] = m.splitR.ProcessSample(right[i])

		var outL, outR float64
		for b := range numBands {
			w := m.width[b].Next()
			mid := (bl[b] + br[b]) * 0.5
			side := (bl[b] - br[b]) * 0.5 * w
			l := mid + side
			r := mid - side

			sum[b] += math.Abs(l) + math.Abs(r)
			outL += l
			outR += r
		}

		left[i], right[i] = outL, outR
	}

	inv := 1 / float64(2*n)
	for b := range numBands {
		m.level[b].Store(sum[b] * inv)
	}
}

// SetLowMidCrossover sets the low/mid split frequency, clamped to
// [80, 1000] Hz. The change is applied immediately.
func (m *MultibandWidth) SetLowMidCrossover(freq float64) {
	m.lowMid = core.Clamp(freq, minLowMidFreq, maxLowMidFreq)
	m.splitL.RetuneLowMid(m.lowMid)
	m.splitR.RetuneLowMid(m.lowMid)
}

// SetMidHighCrossover sets the mid/high split frequency, clamped to
// [1000, 10000] Hz. The change is applied immediately.
func (m *MultibandWidth) SetMidHighCrossover(freq float64) {
	m.midHigh = core.Clamp(freq, minMidHighFreq, maxMidHighFreq)
	m.splitL.RetuneMidHigh(m.midHigh)
	m.splitR.RetuneMidHigh(m.midHigh)
}

// SetBandWidth sets the width of one band in percent, clamped to [0, 200].
func (m *MultibandWidth) SetBandWidth(band Band, percent float64) {
	if band < 0 || band >= numBands {
		return
	}

	m.widthPercent[band] = core.Clamp(percent, minWidthPercent, maxWidthPercent)
	m.width[band].SetTarget(m.widthPercent[band] / 100)
}

// SetLowWidth sets the low band width in percent.
func (m *MultibandWidth) SetLowWidth(percent float64) { m.SetBandWidth(BandLow, percent) }

// SetMidWidth sets the mid band width in percent.
func (m *MultibandWidth) SetMidWidth(percent float64) { m.SetBandWidth(BandMid, percent) }

// SetHighWidth sets the high band width in percent.
func (m *MultibandWidth) SetHighWidth(percent float64) { m.SetBandWidth(BandHigh, percent) }

// SetEnabled switches multiband processing on or off.
func (m *MultibandWidth) SetEnabled(enabled bool) { m.enabled = enabled }

// SetBypass makes Process leave its buffers untouched.
func (m *MultibandWidth) SetBypass(bypass bool) { m.bypass = bypass }

// Enabled reports whether multiband processing is on.
func (m *MultibandWidth) Enabled() bool { return m.enabled }

// Bypass reports whether the processor is bypassed.
func (m *MultibandWidth) Bypass() bool { return m.bypass }

// Active reports whether Process will modify its input.
func (m *MultibandWidth) Active() bool { return m.enabled && !m.bypass }

// LowMidCrossover returns the low/mid split frequency in Hz.
func (m *MultibandWidth) LowMidCrossover() float64 { return m.lowMid }

// MidHighCrossover returns the mid/high split frequency in Hz.
func (m *MultibandWidth) MidHighCrossover() float64 { return m.midHigh }

// BandWidth returns the target width of band in percent.
func (m *MultibandWidth) BandWidth(band Band) float64 {
	if band < 0 || band >= numBands {
		return 0
	}
	return m.widthPercent[band]
}

// SampleRate returns the configured sample rate in Hz.
func (m *MultibandWidth) SampleRate() float64 { return m.sampleRate }

// BlockSize returns the configured block size.
func (m *MultibandWidth) BlockSize() int { return m.blockSize }

// BandLevel returns the average of |L|+|R| over the last block for band,
// normalized by the number of channels.
func (m *MultibandWidth) BandLevel(band Band) float64 {
	if band < 0 || band >= numBands {
		return 0
	}
	return m.level[band].Load()
}

// LowLevel returns the low band level of the last block.
func (m *MultibandWidth) LowLevel() float64 { return m.level[BandLow].Load() }

// MidLevel returns the mid band level of the last block.
func (m *MultibandWidth) MidLevel() float64 { return m.level[BandMid].Load() }

// HighLevel returns the high band level of the last block.
func (m *MultibandWidth) HighLevel() float64 { return m.level[BandHigh].Load() }
