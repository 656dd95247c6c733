package crossover

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-stereo/dsp/filter/biquad"
	"github.com/cwbudde/algo-stereo/internal/testutil"
)

const tolerance = 0.05 // dB

func TestNew_ValidParameters(t *testing.T) {
	tests := []struct {
		freq float64
		sr   float64
	}{
		{20, 44100},
		{120, 48000},
		{1000, 48000},
		{500, 44100},
		{10000, 96000},
	}
	for _, tt := range tests {
		xo, err := New(tt.freq, tt.sr)
		if err != nil {
			t.Errorf("New(%.0f, %.0f): unexpected error: %v", tt.freq, tt.sr, err)
			continue
		}
		if xo.Freq() != tt.freq {
			t.Errorf("Freq() = %v, want %v", xo.Freq(), tt.freq)
		}
		if xo.SampleRate() != tt.sr {
			t.Errorf("SampleRate() = %v, want %v", xo.SampleRate(), tt.sr)
		}
		if xo.LP().NumSections() != 2 || xo.HP().NumSections() != 2 {
			t.Errorf("want 2 sections per branch, got LP=%d HP=%d", xo.LP().NumSections(), xo.HP().NumSections())
		}
	}
}

func TestNew_InvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		freq float64
		sr   float64
	}{
		{"zero freq", 0, 48000},
		{"negative freq", -100, 48000},
		{"nan freq", math.NaN(), 48000},
		{"freq at Nyquist", 24000, 48000},
		{"freq above Nyquist", 25000, 48000},
		{"zero sample rate", 1000, 0},
		{"negative sample rate", 1000, -44100},
	}
	for _, tt := range tests {
		if _, err := New(tt.freq, tt.sr); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
}

// LP + HP must be flat for every split frequency used by the processors.
func TestCrossover_AllpassFrequencyResponse(t *testing.T) {
	sr := 48000.0

	for _, fc := range []float64{20, 80, 120, 250, 500, 1000, 4000, 10000} {
		xo, err := New(fc, sr)
		if err != nil {
			t.Fatalf("fc=%v: %v", fc, err)
		}

		for _, f := range []float64{20, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000} {
			sum := xo.LP().Response(f, sr) + xo.HP().Response(f, sr)
			if mag := 20 * math.Log10(cmplx.Abs(sum)); math.Abs(mag) > tolerance {
				t.Errorf("fc=%v sum at %.0f Hz: %.4f dB (want 0 ±%.2f dB)", fc, f, mag, tolerance)
			}
		}
	}
}

func TestCrossover_MinusSixDBAtSplit(t *testing.T) {
	xo, _ := New(1000, 48000)

	if got := xo.LP().MagnitudeDB(1000, 48000); math.Abs(got+6.0206) > 0.01 {
		t.Errorf("LP at split = %.4f dB, want -6.02", got)
	}
	if got := xo.HP().MagnitudeDB(1000, 48000); math.Abs(got+6.0206) > 0.01 {
		t.Errorf("HP at split = %.4f dB, want -6.02", got)
	}
}

func TestCrossover_ProcessSample_Decays(t *testing.T) {
	xo, err := New(1000, 48000)
	if err != nil {
		t.Fatal(err)
	}

	lo, hi := xo.ProcessSample(1.0)
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		t.Fatalf("non-finite output: lo=%v hi=%v", lo, hi)
	}

	for range 2000 {
		lo, hi = xo.ProcessSample(0.0)
	}
	if math.Abs(lo) > 1e-10 || math.Abs(hi) > 1e-10 {
		t.Errorf("outputs should have decayed: lo=%v hi=%v", lo, hi)
	}
}

// An allpass fed a unit impulse returns unit energy.
func TestCrossover_AllpassImpulseSum(t *testing.T) {
	for _, fc := range []float64{120, 1000, 4000} {
		xo, _ := New(fc, 48000)

		energy := 0.0
		for i := range 16384 {
			x := 0.0
			if i == 0 {
				x = 1.0
			}
			lo, hi := xo.ProcessSample(x)
			s := lo + hi
			energy += s * s
		}

		if math.Abs(energy-1.0) > 0.001 {
			t.Errorf("fc=%v: allpass impulse energy = %v, want 1.0", fc, energy)
		}
	}
}

func TestCrossover_ProcessBlock_Empty(t *testing.T) {
	xo, _ := New(1000, 48000)
	xo.ProcessBlock([]float64{}, []float64{}, []float64{})
}

func TestCrossover_ProcessBlock(t *testing.T) {
	sr := 48000.0
	n := 256

	xoSample, _ := New(1000, sr)
	xoBlock, _ := New(1000, sr)

	input := testutil.DeterministicNoise(7, 0.5, n)

	loS := make([]float64, n)
	hiS := make([]float64, n)
	for i, x := range input {
		loS[i], hiS[i] = xoSample.ProcessSample(x)
	}

	loB := make([]float64, n)
	hiB := make([]float64, n)
	xoBlock.ProcessBlock(input, loB, hiB)

	testutil.RequireSliceNearlyEqual(t, loB, loS, 1e-12)
	testutil.RequireSliceNearlyEqual(t, hiB, hiS, 1e-12)
}

func TestCrossover_Reset(t *testing.T) {
	xo, _ := New(1000, 48000)
	xo.ProcessSample(1.0)
	xo.ProcessSample(0.5)

	xo.Reset()
	fresh, _ := New(1000, 48000)

	for i := range 64 {
		x := 0.0
		if i == 0 {
			x = 1.0
		}
		lo1, hi1 := xo.ProcessSample(x)
		lo2, hi2 := fresh.ProcessSample(x)
		if lo1 != lo2 || hi1 != hi2 {
			t.Fatalf("sample %d: reset=(%v,%v) fresh=(%v,%v)", i, lo1, hi1, lo2, hi2)
		}
	}
}

func TestCrossover_SetFrequency_KeepsState(t *testing.T) {
	xo, _ := New(1000, 48000)
	xo.ProcessSample(1.0)

	before := xo.LP().State()
	if err := xo.SetFrequency(2000); err != nil {
		t.Fatal(err)
	}

	if xo.Freq() != 2000 {
		t.Fatalf("Freq() = %v, want 2000", xo.Freq())
	}
	after := xo.LP().State()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("section %d state changed: %v -> %v", i, before[i], after[i])
		}
	}

	ref, _ := New(2000, 48000)
	if xo.LP().Section(0).Coefficients != ref.LP().Section(0).Coefficients {
		t.Fatal("coefficients not recomputed")
	}
}

func TestCrossover_SetFrequency_Invalid(t *testing.T) {
	xo, _ := New(1000, 48000)

	if err := xo.SetFrequency(30000); err == nil {
		t.Fatal("expected error for frequency above Nyquist")
	}
	if xo.Freq() != 1000 {
		t.Fatalf("Freq() = %v, want unchanged 1000", xo.Freq())
	}
}

func TestClampFrequency(t *testing.T) {
	tests := []struct {
		freq, sr, want float64
	}{
		{1000, 48000, 1000},
		{30000, 48000, 23520},
		{500, 1000, 490},
		{0, 48000, MinFrequency},
		{-20, 48000, MinFrequency},
		{math.NaN(), 48000, MinFrequency},
	}

	for _, tt := range tests {
		if got := ClampFrequency(tt.freq, tt.sr); got != tt.want {
			t.Errorf("ClampFrequency(%v, %v) = %v, want %v", tt.freq, tt.sr, got, tt.want)
		}
	}
}

func TestCrossover_Retune(t *testing.T) {
	xo, _ := New(1000, 48000)
	xo.ProcessSample(1.0)
	before := xo.HP().State()

	if got := xo.Retune(30000); got != 23520 || xo.Freq() != 23520 {
		t.Fatalf("Retune(30000) = %v, Freq() = %v, want 23520", got, xo.Freq())
	}

	after := xo.HP().State()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("section %d state changed: %v -> %v", i, before[i], after[i])
		}
	}

	ref, _ := New(23520, 48000)
	if xo.LP().Section(0).Coefficients != ref.LP().Section(0).Coefficients {
		t.Fatal("coefficients not recomputed")
	}

	if got := xo.Retune(2000); got != 2000 {
		t.Fatalf("Retune(2000) = %v, want unchanged 2000", got)
	}
}

func TestCrossover_SetSampleRate_ResetsState(t *testing.T) {
	xo, _ := New(1000, 48000)
	xo.ProcessSample(1.0)

	if err := xo.SetSampleRate(96000); err != nil {
		t.Fatal(err)
	}

	for _, st := range xo.LP().State() {
		if st != (biquad.State{}) {
			t.Fatalf("state not cleared: %v", st)
		}
	}

	ref, _ := New(1000, 96000)
	if xo.HP().Section(1).Coefficients != ref.HP().Section(1).Coefficients {
		t.Fatal("coefficients not recomputed for new rate")
	}

	if err := xo.SetSampleRate(1500); err == nil {
		t.Fatal("expected error when frequency exceeds new Nyquist")
	}
}
