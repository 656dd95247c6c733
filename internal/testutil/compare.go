package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t on a length mismatch or when any pair of
// elements differs by more than eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	requireSameLen(t, got, want)
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps || math.IsNaN(d) {
			t.Fatalf("index %d: got %v, want %v (diff %g > %g)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireBitIdentical fails t unless got and want match bit for bit.
func RequireBitIdentical(t *testing.T, got, want []float64) {
	t.Helper()
	requireSameLen(t, got, want)
	for i := range got {
		if math.Float64bits(got[i]) != math.Float64bits(want[i]) {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func requireSameLen(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
}

// RMS returns the root-mean-square level of data, or 0 for an empty slice.
func RMS(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range data {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(data)))
}
