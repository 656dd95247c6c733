package imager

import "github.com/cwbudde/algo-stereo/dsp/core"

const (
	minGainDB = -24.0
	maxGainDB = 24.0
)

// Params is a complete engine parameter set in native units.
// Values outside their documented range are clamped when applied.
type Params struct {
	// Bypass skips the whole engine, gains included.
	Bypass bool

	// InputGainDB and OutputGainDB are in dB, [-24, 24].
	InputGainDB  float64
	OutputGainDB float64

	// Width is the stereo width in percent, [0, 200].
	Width float64
	// Pan is in [-1, 1], negative is left.
	Pan float64
	// Balance is in [-1, 1]; it only attenuates.
	Balance float64

	// MonoBassFreq is the mono-bass crossover in Hz, [20, 500].
	MonoBassFreq    float64
	MonoBassEnabled bool

	MultibandEnabled bool
	// LowMidFreq is in [80, 1000] Hz, MidHighFreq in [1000, 10000] Hz.
	LowMidFreq  float64
	MidHighFreq float64
	// Band widths in percent, [0, 200].
	LowWidth  float64
	MidWidth  float64
	HighWidth float64
}

// DefaultParams returns the engine's initial parameter set.
func DefaultParams() Params {
	return Params{
		Width:           100,
		MonoBassFreq:    120,
		MonoBassEnabled: true,
		LowMidFreq:      250,
		MidHighFreq:     4000,
		LowWidth:        100,
		MidWidth:        100,
		HighWidth:       100,
	}
}

func clampGainDB(db float64) float64 {
	return core.Clamp(db, minGainDB, maxGainDB)
}
