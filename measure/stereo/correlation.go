package stereo

import "math"

const (
	// DefaultCorrelationWindow is the number of samples per correlation
	// estimate.
	DefaultCorrelationWindow = 2048

	// correlationEpsilon guards the denominator. Windows with less energy
	// are reported as fully correlated.
	correlationEpsilon = 1e-4
)

// Correlation estimates the phase correlation between two channels over
// fixed, non-overlapping windows:
//
//	Σ(L·R) / sqrt(Σ(L²)·Σ(R²))
//
// The estimate changes only when a window completes; the accumulators are
// then cleared and the next window starts. A Correlation is not safe for
// concurrent use.
type Correlation struct {
	window int
	count  int
	sumLR  float64
	sumLL  float64
	sumRR  float64
	value  float64
}

// NewCorrelation returns a correlation estimator with the given window
// length. A window <= 0 falls back to DefaultCorrelationWindow.
func NewCorrelation(window int) *Correlation {
	if window <= 0 {
		window = DefaultCorrelationWindow
	}

	return &Correlation{window: window}
}

// Add accumulates one stereo frame. When the frame completes a window, Add
// returns the new estimate and true.
func (c *Correlation) Add(l, r float64) (float64, bool) {
	c.sumLR += l * r
	c.sumLL += l * l
	c.sumRR += r * r
	c.count++

	if c.count < c.window {
		return c.value, false
	}

	c.value = correlate(c.sumLR, c.sumLL, c.sumRR)
	c.count = 0
	c.sumLR, c.sumLL, c.sumRR = 0, 0, 0

	return c.value, true
}

// Value returns the estimate of the last completed window, or 0 before the
// first window completes.
func (c *Correlation) Value() float64 { return c.value }

// Window returns the window length in samples.
func (c *Correlation) Window() int { return c.window }

// Pending returns the number of samples accumulated in the current window.
func (c *Correlation) Pending() int { return c.count }

// Reset discards the partial window and the last estimate.
func (c *Correlation) Reset() {
	c.count = 0
	c.sumLR, c.sumLL, c.sumRR = 0, 0, 0
	c.value = 0
}

func correlate(sumLR, sumLL, sumRR float64) float64 {
	den := math.Sqrt(sumLL * sumRR)
	if den < correlationEpsilon {
		return 1
	}

	r := sumLR / den
	if r > 1 {
		return 1
	}
	if r < -1 {
		return -1
	}
	return r
}

// PhaseStatus is a coarse reading of a correlation value.
type PhaseStatus int

const (
	PhaseInPhase PhaseStatus = iota
	PhaseMostlyInPhase
	PhasePartiallyCorrelated
	PhaseMostlyOutOfPhase
	PhaseOutOfPhase
)

// ClassifyPhase maps a correlation in [-1, 1] to a PhaseStatus.
func ClassifyPhase(corr float64) PhaseStatus {
	switch {
	case corr > 0.9:
		return PhaseInPhase
	case corr > 0.5:
		return PhaseMostlyInPhase
	case corr > -0.5:
		return PhasePartiallyCorrelated
	case corr > -0.9:
		return PhaseMostlyOutOfPhase
	default:
		return PhaseOutOfPhase
	}
}

// String returns a human readable label.
func (s PhaseStatus) String() string {
	switch s {
	case PhaseInPhase:
		return "in phase"
	case PhaseMostlyInPhase:
		return "mostly in phase"
	case PhasePartiallyCorrelated:
		return "partially correlated"
	case PhaseMostlyOutOfPhase:
		return "mostly out of phase"
	case PhaseOutOfPhase:
		return "out of phase"
	default:
		return "unknown"
	}
}
