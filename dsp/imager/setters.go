package imager

import (
	"github.com/cwbudde/algo-stereo/dsp/core"
	"github.com/cwbudde/algo-stereo/dsp/effects/spatial"
)

// SetParams applies a whole parameter set. Every value is clamped to its
// range; Params returns the clamped result.
func (e *Engine) SetParams(p Params) {
	e.SetBypass(p.Bypass)
	e.SetInputGainDB(p.InputGainDB)
	e.SetOutputGainDB(p.OutputGainDB)

	e.SetPan(p.Pan)
	e.SetBalance(p.Balance)
	e.SetMonoBassFreq(p.MonoBassFreq)
	e.SetMonoBassEnabled(p.MonoBassEnabled)

	e.SetLowMidCrossover(p.LowMidFreq)
	e.SetMidHighCrossover(p.MidHighFreq)
	e.SetLowWidth(p.LowWidth)
	e.SetMidWidth(p.MidWidth)
	e.SetHighWidth(p.HighWidth)
	e.SetMultibandEnabled(p.MultibandEnabled)

	e.SetWidth(p.Width)
}

// Params returns the current parameter set as applied, after clamping.
func (e *Engine) Params() Params { return e.params }

// SetBypass switches the master bypass.
func (e *Engine) SetBypass(bypass bool) { e.params.Bypass = bypass }

// SetInputGainDB sets the input gain in dB, clamped to [-24, 24].
func (e *Engine) SetInputGainDB(db float64) {
	e.params.InputGainDB = clampGainDB(db)
	e.inGain = core.DecibelsToLinear(e.params.InputGainDB)
}

// SetOutputGainDB sets the output gain in dB, clamped to [-24, 24].
func (e *Engine) SetOutputGainDB(db float64) {
	e.params.OutputGainDB = clampGainDB(db)
	e.outGain = core.DecibelsToLinear(e.params.OutputGainDB)
}

// SetWidth sets the stereo width in percent, clamped to [0, 200]. While
// multiband mode is active the value is stored but the stereo field stays
// at 100%.
func (e *Engine) SetWidth(percent float64) {
	e.params.Width = core.Clamp(percent, 0, 200)
	e.syncFieldWidth()
}

// SetPan sets the pan position, clamped to [-1, 1].
func (e *Engine) SetPan(pan float64) {
	e.field.SetPan(pan)
	e.params.Pan = e.field.Pan()
}

// SetBalance sets the balance, clamped to [-1, 1].
func (e *Engine) SetBalance(balance float64) {
	e.field.SetBalance(balance)
	e.params.Balance = e.field.Balance()
}

// SetMonoBassFreq sets the mono-bass crossover, clamped to [20, 500] Hz.
func (e *Engine) SetMonoBassFreq(freq float64) {
	e.field.SetMonoBassFreq(freq)
	e.params.MonoBassFreq = e.field.MonoBassFreq()
}

// SetMonoBassEnabled switches the mono-bass stage.
func (e *Engine) SetMonoBassEnabled(enabled bool) {
	e.field.SetMonoBassEnabled(enabled)
	e.params.MonoBassEnabled = enabled
}

// SetMultibandEnabled switches multiband mode.
func (e *Engine) SetMultibandEnabled(enabled bool) {
	e.multiband.SetEnabled(enabled)
	e.params.MultibandEnabled = enabled
	e.syncFieldWidth()
}

// SetLowMidCrossover sets the low/mid split, clamped to [80, 1000] Hz.
func (e *Engine) SetLowMidCrossover(freq float64) {
	e.multiband.SetLowMidCrossover(freq)
	e.params.LowMidFreq = e.multiband.LowMidCrossover()
}

// SetMidHighCrossover sets the mid/high split, clamped to [1000, 10000] Hz.
func (e *Engine) SetMidHighCrossover(freq float64) {
	e.multiband.SetMidHighCrossover(freq)
	e.params.MidHighFreq = e.multiband.MidHighCrossover()
}

// SetLowWidth sets the low band width in percent, clamped to [0, 200].
func (e *Engine) SetLowWidth(percent float64) {
	e.multiband.SetLowWidth(percent)
	e.params.LowWidth = e.multiband.BandWidth(spatial.BandLow)
}

// SetMidWidth sets the mid band width in percent, clamped to [0, 200].
func (e *Engine) SetMidWidth(percent float64) {
	e.multiband.SetMidWidth(percent)
	e.params.MidWidth = e.multiband.BandWidth(spatial.BandMid)
}

// SetHighWidth sets the high band width in percent, clamped to [0, 200].
func (e *Engine) SetHighWidth(percent float64) {
	e.multiband.SetHighWidth(percent)
	e.params.HighWidth = e.multiband.BandWidth(spatial.BandHigh)
}

func (e *Engine) syncFieldWidth() {
	if e.multiband.Active() {
		e.field.SetWidth(100)
		return
	}

	e.field.SetWidth(e.params.Width)
}
