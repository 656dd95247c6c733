package param

import (
	"math"
	"testing"
)

func TestCoefficient(t *testing.T) {
	tests := []struct {
		name   string
		sr, ms float64
		want   float64
	}{
		{"zero ramp", 48000, 0, 1},
		{"negative ramp", 48000, -5, 1},
		{"nan ramp", 48000, math.NaN(), 1},
		{"zero rate", 0, 20, 1},
		{"20ms at 48k", 48000, 20, 1 - math.Exp(-1/(48000*20*0.001))},
		{"1ms at 44.1k", 44100, 1, 1 - math.Exp(-1/44.1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Coefficient(tt.sr, tt.ms); math.Abs(got-tt.want) > 1e-15 {
				t.Fatalf("Coefficient(%v, %v) = %v, want %v", tt.sr, tt.ms, got, tt.want)
			}
		})
	}
}

func TestSmoother_NextFollowsRecurrence(t *testing.T) {
	s := NewSmoother(0, DefaultRampMs)
	s.Configure(48000)
	s.SetTarget(1)

	coeff := Coefficient(48000, DefaultRampMs)
	want := 0.0
	for i := range 100 {
		want += coeff * (1 - want)
		if got := s.Next(); got != want {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestSmoother_ConvergesWithinFiveTimeConstants(t *testing.T) {
	const sr = 48000.0
	s := NewSmoother(0, DefaultRampMs)
	s.Configure(sr)
	s.SetTarget(2)

	if !s.IsSmoothing() {
		t.Fatal("expected smoother to be moving after SetTarget")
	}

	n := int(5 * DefaultRampMs * 0.001 * sr)
	for range n {
		s.Next()
	}

	if d := math.Abs(s.Current() - 2); d > 2*math.Exp(-5)+1e-9 {
		t.Fatalf("after 5 tau: |current-target| = %v", d)
	}
}

func TestSmoother_ZeroRampTracksImmediately(t *testing.T) {
	s := NewSmoother(0, 0)
	s.Configure(44100)
	s.SetTarget(0.75)

	if got := s.Next(); got != 0.75 {
		t.Fatalf("Next() = %v, want 0.75", got)
	}
	if s.IsSmoothing() {
		t.Fatal("zero-ramp smoother should be settled")
	}
}

func TestSmoother_ConfigureSnapsToTarget(t *testing.T) {
	s := NewSmoother(1, DefaultRampMs)
	s.Configure(48000)
	s.SetTarget(0.25)
	s.Next()

	s.Configure(96000)

	if s.Current() != 0.25 {
		t.Fatalf("Current() = %v, want 0.25 after Configure", s.Current())
	}
	if want := Coefficient(96000, DefaultRampMs); s.Coeff() != want {
		t.Fatalf("Coeff() = %v, want %v", s.Coeff(), want)
	}
}

func TestSmoother_SetCurrentAndTarget(t *testing.T) {
	s := NewSmoother(0, DefaultRampMs)
	s.Configure(48000)
	s.SetCurrentAndTarget(0.5)

	if s.IsSmoothing() {
		t.Fatal("expected settled smoother")
	}
	if got := s.Next(); got != 0.5 {
		t.Fatalf("Next() = %v, want 0.5", got)
	}
}

func TestSmoother_UnconfiguredIsImmediate(t *testing.T) {
	s := NewSmoother(0, DefaultRampMs)
	s.SetTarget(3)

	if got := s.Next(); got != 3 {
		t.Fatalf("Next() = %v, want 3 before Configure", got)
	}
}
