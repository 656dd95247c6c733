package biquad

import (
	"testing"

	"github.com/cwbudde/algo-stereo/internal/testutil"
)

var cascade = []Coefficients{
	smooth,
	{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
}

func TestChain_MatchesSeriesSections(t *testing.T) {
	s0, s1 := NewSection(cascade[0]), NewSection(cascade[1])
	c := NewChain(cascade)

	for i, x := range testutil.DeterministicNoise(3, 1, 64) {
		want := s1.ProcessSample(s0.ProcessSample(x))
		if got := c.ProcessSample(x); got != want {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestChain_BlockMatchesSample(t *testing.T) {
	in := testutil.DeterministicNoise(5, 1, 300)

	a := NewChain(cascade)
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = a.ProcessSample(x)
	}

	b := NewChain(cascade)
	got := append([]float64(nil), in...)
	b.ProcessBlock(got)

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestChain_SectionsOwnTheirMemory(t *testing.T) {
	c := NewChain([]Coefficients{smooth, smooth})
	c.ProcessSample(1)

	st := c.State()
	if len(st) != 2 || st[0] == st[1] {
		t.Fatalf("expected distinct per-section state, got %+v", st)
	}
}

func TestChain_ResetAndRestore(t *testing.T) {
	c := NewChain(cascade)
	c.ProcessBlock(testutil.DeterministicNoise(9, 1, 32))

	saved := c.State()
	want := c.ProcessSample(0.25)

	c.Reset()
	for i, st := range c.State() {
		if st != (State{}) {
			t.Fatalf("section %d not cleared: %+v", i, st)
		}
	}

	c.SetState(saved)
	if got := c.ProcessSample(0.25); got != want {
		t.Fatalf("restored output %v, want %v", got, want)
	}
}

func TestChain_UpdateCoefficients(t *testing.T) {
	c := NewChain(cascade)
	c.ProcessSample(1)
	saved := c.State()

	swapped := []Coefficients{cascade[1], cascade[0]}
	c.UpdateCoefficients(swapped)

	if c.Section(0).Coefficients != cascade[1] {
		t.Fatal("coefficients not applied")
	}
	for i, st := range c.State() {
		if st != saved[i] {
			t.Fatalf("section %d memory changed on retune", i)
		}
	}

	c.UpdateCoefficients([]Coefficients{smooth})
	if c.NumSections() != 1 || c.State()[0] != (State{}) {
		t.Fatal("resized chain should be rebuilt cleared")
	}
}
