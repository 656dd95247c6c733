package core

import "math"

const defaultEpsilon = 1e-12

// SilenceFloorDB is the level reported for zero or negative amplitudes.
const SilenceFloorDB = -100.0

// Clamp limits value to the inclusive range [min, max]. NaN maps to min.
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min || math.IsNaN(value) {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// DecibelsToLinear converts dB to linear amplitude (20*log10 convention).
func DecibelsToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDecibels converts linear amplitude to dB (20*log10 convention).
// Zero and negative input return SilenceFloorDB, never -Inf or NaN.
func LinearToDecibels(linear float64) float64 {
	if linear <= 0 || math.IsNaN(linear) {
		return SilenceFloorDB
	}

	return 20 * math.Log10(linear)
}

// MapRange linearly maps value from [inMin, inMax] onto [outMin, outMax].
// A degenerate input range returns outMin.
func MapRange(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}

	return outMin + (outMax-outMin)*(value-inMin)/(inMax-inMin)
}

// SoftClip saturates x smoothly towards ±1.
func SoftClip(x float64) float64 {
	return math.Tanh(x)
}

// HardClip limits x to ±threshold. A non-positive threshold uses 1.
func HardClip(x, threshold float64) float64 {
	if threshold <= 0 {
		threshold = 1
	}

	return Clamp(x, -threshold, threshold)
}
