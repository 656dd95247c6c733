package param

import "math"

const (
	// DefaultRampMs is the default smoothing ramp time in milliseconds.
	DefaultRampMs = 20.0

	// settleThreshold is the distance below which a smoother is considered
	// to have reached its target.
	settleThreshold = 1e-4
)

// Coefficient returns the one-pole smoothing coefficient for a ramp of
// rampMs milliseconds at sampleRate:
//
//	1 - exp(-1 / (sampleRate * rampMs * 0.001))
//
// A ramp time <= 0 (or an invalid sample rate) yields 1, which makes the
// smoother track its target immediately.
func Coefficient(sampleRate, rampMs float64) float64 {
	if rampMs <= 0 || math.IsNaN(rampMs) || math.IsInf(rampMs, 0) {
		return 1
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 1
	}

	return 1 - math.Exp(-1/(sampleRate*rampMs*0.001))
}

// Smoother is an exponential parameter smoother.
//
// Each call to Next advances the current value by
// coeff * (target - current). A Smoother is not safe for concurrent use.
type Smoother struct {
	current float64
	target  float64
	rampMs  float64
	coeff   float64
}

// NewSmoother returns a smoother resting at initial with the given ramp time.
// The coefficient stays at 1 until Configure supplies a sample rate.
func NewSmoother(initial, rampMs float64) *Smoother {
	return &Smoother{
		current: initial,
		target:  initial,
		rampMs:  rampMs,
		coeff:   1,
	}
}

// Configure recomputes the smoothing coefficient for sampleRate and snaps
// the current value to the target.
func (s *Smoother) Configure(sampleRate float64) {
	s.coeff = Coefficient(sampleRate, s.rampMs)
	s.current = s.target
}

// SetRampMs changes the ramp time. Call Configure afterwards to apply it.
func (s *Smoother) SetRampMs(rampMs float64) {
	s.rampMs = rampMs
}

// SetTarget sets the value the smoother ramps toward.
func (s *Smoother) SetTarget(target float64) {
	s.target = target
}

// SetCurrentAndTarget jumps to value without ramping.
func (s *Smoother) SetCurrentAndTarget(value float64) {
	s.current = value
	s.target = value
}

// Snap moves the current value onto the target.
func (s *Smoother) Snap() {
	s.current = s.target
}

// Next advances one sample and returns the new current value.
func (s *Smoother) Next() float64 {
	s.current += s.coeff * (s.target - s.current)
	return s.current
}

// Current returns the current value without advancing.
func (s *Smoother) Current() float64 { return s.current }

// Target returns the target value.
func (s *Smoother) Target() float64 { return s.target }

// RampMs returns the ramp time in milliseconds.
func (s *Smoother) RampMs() float64 { return s.rampMs }

// Coeff returns the per-sample smoothing coefficient.
func (s *Smoother) Coeff() float64 { return s.coeff }

// IsSmoothing reports whether the current value is still moving toward the
// target.
func (s *Smoother) IsSmoothing() bool {
	return math.Abs(s.target-s.current) >= settleThreshold
}
