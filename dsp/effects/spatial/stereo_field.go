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
	defaultFieldWidth        = 100.0
	defaultMonoBassFreq     = 120.0
	defaultMonoBassEnabled  = true
	defaultFieldSmoothingMs = param.DefaultRampMs
	minWidthPercent         = 0.0
	maxWidthPercent         = 200.0
	minMonoBassFreq         = 20.0
	maxMonoBassFreq         = 500.0
)

// StereoFieldOption mutates stereo field construction parameters.
type StereoFieldOption func(*stereoFieldConfig) error

type stereoFieldConfig struct {
	width           float64
	pan             float64
	balance         float64
	monoBassFreq    float64
	monoBassEnabled bool
	smoothingMs     float64
	corrWindow      int
	scatterCap      int
}

func defaultStereoFieldConfig() stereoFieldConfig {
	return stereoFieldConfig{
		width:           defaultFieldWidth,
		monoBassFreq:    defaultMonoBassFreq,
		monoBassEnabled: defaultMonoBassEnabled,
		smoothingMs:     defaultFieldSmoothingMs,
		corrWindow:      stereo.DefaultCorrelationWindow,
		scatterCap:      stereo.DefaultScatterCapacity,
	}
}

// WithFieldWidth sets the initial stereo width in percent.
// 0 = mono, 100 = unchanged, 200 = doubled side signal.
func WithFieldWidth(percent float64) StereoFieldOption {
	return func(cfg *stereoFieldConfig) error {
		if percent < minWidthPercent || percent > maxWidthPercent || math.IsNaN(percent) {
			return fmt.Errorf("stereo field width must be in [%g, %g]: %f",
				minWidthPercent, maxWidthPercent, percent)
		}

		cfg.width = percent

		return nil
	}
}

// WithPan sets the initial pan position in [-1, 1].
func WithPan(pan float64) StereoFieldOption {
	return func(cfg *stereoFieldConfig) error {
		if pan < -1 || pan > 1 || math.IsNaN(pan) {
			return fmt.Errorf("stereo field pan must be in [-1, 1]: %f", pan)
		}

		cfg.pan = pan

		return nil
	}
}

// WithBalance sets the initial balance in [-1, 1].
func WithBalance(balance float64) StereoFieldOption {
	return func(cfg *stereoFieldConfig) error {
		if balance < -1 || balance > 1 || math.IsNaN(balance) {
			return fmt.Errorf("stereo field balance must be in [-1, 1]: %f", balance)
		}

		cfg.balance = balance

		return nil
	}
}

// WithMonoBass sets the mono-bass crossover frequency and whether the
// stage is active. The frequency must be in [20, 500] Hz.
func WithMonoBass(freq float64, enabled bool) StereoFieldOption {
	return func(cfg *stereoFieldConfig) error {
		if freq < minMonoBassFreq || freq > maxMonoBassFreq || math.IsNaN(freq) {
			return fmt.Errorf("stereo field mono bass freq must be in [%g, %g]: %f",
				minMonoBassFreq, maxMonoBassFreq, freq)
		}

		cfg.monoBassFreq = freq
		cfg.monoBassEnabled = enabled

		return nil
	}
}

// WithFieldSmoothingMs sets the ramp time of the width, pan and balance
// smoothers. 0 disables smoothing.
func WithFieldSmoothingMs(ms float64) StereoFieldOption {
	return func(cfg *stereoFieldConfig) error {
		if ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
			return fmt.Errorf("stereo field smoothing must be >= 0 and finite: %f", ms)
		}

		cfg.smoothingMs = ms

		return nil
	}
}

// WithCorrelationWindow sets the correlation window length in samples.
func WithCorrelationWindow(samples int) StereoFieldOption {
	return func(cfg *stereoFieldConfig) error {
		if samples <= 0 {
			return fmt.Errorf("stereo field correlation window must be > 0: %d", samples)
		}

		cfg.corrWindow = samples

		return nil
	}
}

// WithScatterCapacity sets the number of frames kept for the scatter display.
func WithScatterCapacity(frames int) StereoFieldOption {
	return func(cfg *stereoFieldConfig) error {
		if frames <= 0 {
			return fmt.Errorf("stereo field scatter capacity must be > 0: %d", frames)
		}

		cfg.scatterCap = frames

		return nil
	}
}

// StereoField is the single-band stereo imaging path.
//
// Per sample, in order: optional mono-bass consolidation, mid/side width,
// attenuate-only balance, constant-power pan toward the mono sum, then
// correlation, level and scatter metering. Width, pan and balance ramp
// through one-pole smoothers; the mono-bass frequency and flag apply
// immediately.
//
// Process runs on one goroutine and does not allocate. Meter getters and
// ScatterSamples may be called concurrently with Process.
type StereoField struct {
	sampleRate float64
	blockSize  int

	widthPercent    float64
	monoBassFreq    float64
	monoBassEnabled bool
	bypass          bool

	width   *param.Smoother
	pan     *param.Smoother
	balance *param.Smoother

	monoBass *crossover.Stereo

	corr    *stereo.Correlation
	scatter *stereo.Scatter

	correlation stereo.Value
	leftLevel   stereo.Value
	rightLevel  stereo.Value
	midLevel    stereo.Value
	sideLevel   stereo.Value
}

// NewStereoField creates a stereo field processor configured for
// sampleRate and the default block size.
func NewStereoField(sampleRate float64, opts ...StereoFieldOption) (*StereoField, error) {
	cfg := defaultStereoFieldConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	f := &StereoField{
		widthPercent:    cfg.width,
		monoBassFreq:    cfg.monoBassFreq,
		monoBassEnabled: cfg.monoBassEnabled,
		width:           param.NewSmoother(cfg.width/100, cfg.smoothingMs),
		pan:             param.NewSmoother(cfg.pan, cfg.smoothingMs),
		balance:         param.NewSmoother(cfg.balance, cfg.smoothingMs),
		corr:            stereo.NewCorrelation(cfg.corrWindow),
		scatter:         stereo.NewScatter(cfg.scatterCap, stereo.DefaultScatterDecimation),
	}

	err := f.Configure(sampleRate, core.DefaultProcessorConfig().BlockSize)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// Configure prepares the processor for a stream format. Coefficients and
// smoothing rates are recomputed and all state is cleared.
func (f *StereoField) Configure(sampleRate float64, blockSize int) error {
	if !(core.ProcessorConfig{SampleRate: sampleRate, BlockSize: blockSize}).Validate() {
		return fmt.Errorf("stereo field: invalid configuration: sample rate %v, block size %d",
			sampleRate, blockSize)
	}

	xo, err := crossover.NewStereo(crossover.ClampFrequency(f.monoBassFreq, sampleRate), sampleRate)
	if err != nil {
		return fmt.Errorf("stereo field: mono bass: %w", err)
	}

	f.sampleRate = sampleRate
	f.blockSize = blockSize
	f.monoBass = xo

	f.width.Configure(sampleRate)
	f.pan.Configure(sampleRate)
	f.balance.Configure(sampleRate)

	f.Reset()

	return nil
}

// Reset clears filter memory, correlation sums, the scatter ring and the
// published meters. Parameter values are kept; smoothers jump to their
// targets.
func (f *StereoField) Reset() {
	f.monoBass.Reset()
	f.corr.Reset()
	f.scatter.Reset()

	f.width.Snap()
	f.pan.Snap()
	f.balance.Snap()

	f.correlation.Store(0)
	f.leftLevel.Store(0)
	f.rightLevel.Store(0)
	f.midLevel.Store(0)
	f.sideLevel.Store(0)
}

// Process transforms paired left/right buffers in place. Only the common
// prefix of both buffers is processed.
func (f *StereoField) Process(left, right []float64) {
	if f.bypass {
		return
	}

	n := min(len(left), len(right))
	if n == 0 {
		return
	}

	var sumL, sumR, sumMid, sumSide float64

	for i := range n {
		l, r := left[i], right[i]

		if f.monoBassEnabled {
			loL, hiL, loR, hiR := f.monoBass.ProcessSample(l, r)
			bass := (loL + loR) * 0.5
			l = bass + hiL
			r = bass + hiR
		}

		w := f.width.Next()
		mid := (l + r) * 0.5
		side := (l - r) * 0.5 * w
		l = mid + side
		r = mid - side

		if b := f.balance.Next(); b < 0 {
			r *= 1 + b
		} else if b > 0 {
			l *= 1 - b
		}

		gL, gR := panGains(f.pan.Next())
		mono := (l + r) * 0.5
		l = l*gL + mono*(1-gL)
		r = r*gR + mono*(1-gR)

		left[i], right[i] = l, r

		if v, ok := f.corr.Add(l, r); ok {
			f.correlation.Store(v)
		}

		sumL += math.Abs(l)
		sumR += math.Abs(r)
		sumMid += math.Abs((l + r) * 0.5)
		sumSide += math.Abs((l - r) * 0.5)

		f.scatter.Offer(l, r)
	}

	inv := 1 / float64(n)
	f.leftLevel.Store(sumL * inv)
	f.rightLevel.Store(sumR * inv)
	f.midLevel.Store(sumMid * inv)
	f.sideLevel.Store(sumSide * inv)
}

// panGains maps pan in [-1, 1] onto a quarter turn and returns the
// constant-power gains cos and sin of that angle. Each gain blends its
// channel against the mono sum, so mid-only content is unchanged at any pan.
func panGains(pan float64) (gL, gR float64) {
	theta := (pan + 1) * math.Pi / 4
	return math.Cos(theta), math.Sin(theta)
}

// SetWidth sets the stereo width in percent, clamped to [0, 200].
func (f *StereoField) SetWidth(percent float64) {
	f.widthPercent = core.Clamp(percent, minWidthPercent, maxWidthPercent)
	f.width.SetTarget(f.widthPercent / 100)
}

// SetPan sets the pan position, clamped to [-1, 1].
func (f *StereoField) SetPan(pan float64) {
	f.pan.SetTarget(core.Clamp(pan, -1, 1))
}

// SetBalance sets the balance, clamped to [-1, 1]. Negative values
// attenuate the right channel, positive values the left.
func (f *StereoField) SetBalance(balance float64) {
	f.balance.SetTarget(core.Clamp(balance, -1, 1))
}

// SetMonoBassFreq sets the mono-bass crossover frequency, clamped to
// [20, 500] Hz. The change is applied immediately.
func (f *StereoField) SetMonoBassFreq(freq float64) {
	f.monoBassFreq = core.Clamp(freq, minMonoBassFreq, maxMonoBassFreq)
	f.monoBass.Retune(f.monoBassFreq)
}

// SetMonoBassEnabled switches the mono-bass stage.
func (f *StereoField) SetMonoBassEnabled(enabled bool) { f.monoBassEnabled = enabled }

// SetBypass makes Process leave its buffers untouched.
func (f *StereoField) SetBypass(bypass bool) { f.bypass = bypass }

// Width returns the target width in percent.
func (f *StereoField) Width() float64 { return f.widthPercent }

// Pan returns the target pan position.
func (f *StereoField) Pan() float64 { return f.pan.Target() }

// Balance returns the target balance.
func (f *StereoField) Balance() float64 { return f.balance.Target() }

// MonoBassFreq returns the mono-bass crossover frequency in Hz.
func (f *StereoField) MonoBassFreq() float64 { return f.monoBassFreq }

// MonoBassEnabled reports whether the mono-bass stage is active.
func (f *StereoField) MonoBassEnabled() bool { return f.monoBassEnabled }

// Bypass reports whether the processor is bypassed.
func (f *StereoField) Bypass() bool { return f.bypass }

// SampleRate returns the configured sample rate in Hz.
func (f *StereoField) SampleRate() float64 { return f.sampleRate }

// BlockSize returns the configured block size.
func (f *StereoField) BlockSize() int { return f.blockSize }

// Correlation returns the last published phase correlation in [-1, 1].
func (f *StereoField) Correlation() float64 { return f.correlation.Load() }

// LeftLevel returns the average absolute left level of the last block.
func (f *StereoField) LeftLevel() float64 { return f.leftLevel.Load() }

// RightLevel returns the average absolute right level of the last block.
func (f *StereoField) RightLevel() float64 { return f.rightLevel.Load() }

// MidLevel returns the average absolute mid level of the last block.
func (f *StereoField) MidLevel() float64 { return f.midLevel.Load() }

// SideLevel returns the average absolute side level of the last block.
func (f *StereoField) SideLevel() float64 { return f.sideLevel.Load() }

// ScatterSamples copies the captured scatter frames into dst, oldest
// first. See [stereo.Scatter.Snapshot].
func (f *StereoField) ScatterSamples(dst []stereo.Sample) []stereo.Sample {
	return f.scatter.Snapshot(dst)
}
