package imager

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stereo/dsp/core"
	"github.com/cwbudde/algo-stereo/dsp/effects/spatial"
	"github.com/cwbudde/algo-stereo/measure/stereo"
)

// Engine is a stereo imaging engine. See the package documentation for the
// signal path.
//
// Configure, Reset, Process, ProcessInterleaved and the setters must be
// called from one goroutine. Meters, the meter getters and ScatterSamples
// are safe to call concurrently with processing.
type Engine struct {
	cfg    core.ProcessorConfig
	params Params

	inGain  float64
	outGain float64

	field     *spatial.StereoField
	multiband *spatial.MultibandWidth

	scratchL []float64
	scratchR []float64

	inPeakL  stereo.Value
	inPeakR  stereo.Value
	outPeakL stereo.Value
	outPeakR stereo.Value
}

// New creates an engine with DefaultParams at 44.1 kHz and a block size of
// 512 unless overridden by options.
func New(opts ...Option) (*Engine, error) {
	cfg := engineConfig{params: DefaultParams()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	pc := core.ApplyProcessorOptions(cfg.processor...)

	field, err := spatial.NewStereoField(pc.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("imager: %w", err)
	}

	multiband, err := spatial.NewMultibandWidth(pc.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("imager: %w", err)
	}

	e := &Engine{
		field:     field,
		multiband: multiband,
	}
	e.SetParams(cfg.params)

	err = e.Configure(pc.SampleRate, pc.BlockSize)
	if err != nil {
		return nil, err
	}

	return e, nil
}

// Configure prepares the engine for a stream format. All coefficients are
// recomputed, all state is cleared and the interleave scratch buffers are
// sized for blockSize. Call it between blocks only.
func (e *Engine) Configure(sampleRate float64, blockSize int) error {
	cfg := core.ProcessorConfig{SampleRate: sampleRate, BlockSize: blockSize}
	if !cfg.Validate() {
		return fmt.Errorf("imager: sample rate must be > 0 and finite and block size > 0: %v, %d",
			sampleRate, blockSize)
	}

	err := e.field.Configure(sampleRate, blockSize)
	if err != nil {
		return fmt.Errorf("imager: %w", err)
	}

	err = e.multiband.Configure(sampleRate, blockSize)
	if err != nil {
		return fmt.Errorf("imager: %w", err)
	}

	e.cfg = cfg
	e.scratchL = core.EnsureLen(e.scratchL, blockSize)
	e.scratchR = core.EnsureLen(e.scratchR, blockSize)

	e.Reset()

	return nil
}

// Reset clears filter memory, correlation sums, the scatter ring and all
// meters. Parameters are kept.
func (e *Engine) Reset() {
	e.field.Reset()
	e.multiband.Reset()

	e.inPeakL.Store(0)
	e.inPeakR.Store(0)
	e.outPeakL.Store(0)
	e.outPeakR.Store(0)
}

// Process transforms the first two channels in place. Fewer than two
// channels is a no-op; further channels are left untouched. Only the common
// length of the first two channels is processed.
func (e *Engine) Process(channels [][]float64) {
	if len(channels) < 2 {
		return
	}

	left, right := channels[0], channels[1]
	n := min(len(left), len(right))
	e.processPair(left[:n], right[:n])
}

// ProcessInterleaved transforms the first two channels of an interleaved
// buffer in place, in chunks of the configured block size. numChannels is
// the frame stride. Fewer than two channels is a no-op; a trailing partial
// frame is ignored.
func (e *Engine) ProcessInterleaved(buf []float64, numChannels int) {
	if numChannels < 2 {
		return
	}

	frames := len(buf) / numChannels
	for start := 0; start < frames; start += e.cfg.BlockSize {
		end := min(start+e.cfg.BlockSize, frames)
		chunk := buf[start*numChannels : end*numChannels]

		k := core.Deinterleave(e.scratchL, e.scratchR, chunk, numChannels)
		e.processPair(e.scratchL[:k], e.scratchR[:k])
		core.Interleave(chunk, e.scratchL[:k], e.scratchR[:k], numChannels)
	}
}

func (e *Engine) processPair(left, right []float64) {
	if e.params.Bypass || len(left) == 0 {
		return
	}

	if e.inGain != 1 {
		vecmath.ScaleBlockInPlace(left, e.inGain)
		vecmath.ScaleBlockInPlace(right, e.inGain)
	}

	e.inPeakL.Store(vecmath.MaxAbs(left))
	e.inPeakR.Store(vecmath.MaxAbs(right))

	e.field.Process(left, right)
	e.multiband.Process(left, right)

	if e.outGain != 1 {
		vecmath.ScaleBlockInPlace(left, e.outGain)
		vecmath.ScaleBlockInPlace(right, e.outGain)
	}

	e.outPeakL.Store(vecmath.MaxAbs(left))
	e.outPeakR.Store(vecmath.MaxAbs(right))
}

// ScatterSamples copies the captured scatter frames into dst, oldest first.
func (e *Engine) ScatterSamples(dst []stereo.Sample) []stereo.Sample {
	return e.field.ScatterSamples(dst)
}

// SampleRate returns the configured sample rate in Hz.
func (e *Engine) SampleRate() float64 { return e.cfg.SampleRate }

// BlockSize returns the configured block size.
func (e *Engine) BlockSize() int { return e.cfg.BlockSize }
