package imager

import "github.com/cwbudde/algo-stereo/dsp/core"

// Option configures an Engine at construction.
type Option func(*engineConfig)

type engineConfig struct {
	processor []core.ProcessorOption
	params    Params
}

// WithSampleRate sets the initial sample rate. Invalid values are ignored.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *engineConfig) {
		cfg.processor = append(cfg.processor, core.WithSampleRate(sampleRate))
	}
}

// WithBlockSize sets the initial maximum block size. Invalid values are
// ignored.
func WithBlockSize(blockSize int) Option {
	return func(cfg *engineConfig) {
		cfg.processor = append(cfg.processor, core.WithBlockSize(blockSize))
	}
}

// WithParams sets the initial parameters. Out-of-range values are clamped.
func WithParams(p Params) Option {
	return func(cfg *engineConfig) {
		cfg.params = p
	}
}
