package biquad

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-stereo/internal/testutil"
)

var smooth = Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}

func TestStep_Recurrence(t *testing.T) {
	c := Coefficients{B0: 0.3, B1: -0.1, B2: 0.05, A1: -0.4, A2: 0.12}
	var st State
	var z1, z2 float64

	for i, x := range []float64{1, -0.5, 0.25, 0, 0.8, -1} {
		want := c.B0*x + z1
		z1, z2 = c.B1*x-c.A1*want+z2, c.B2*x-c.A2*want

		if got := c.Step(&st, x); math.Abs(got-want) > 1e-15 {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
		if math.Abs(st.Z1-z1) > 1e-15 || math.Abs(st.Z2-z2) > 1e-15 {
			t.Fatalf("sample %d: state %+v, want {%v %v}", i, st, z1, z2)
		}
	}
}

func TestSection_Identity(t *testing.T) {
	s := NewSection(Identity())
	in := testutil.DeterministicNoise(1, 1, 64)
	out := append([]float64(nil), in...)
	s.ProcessBlock(out)
	testutil.RequireBitIdentical(t, out, in)
}

func TestSection_PureDelay(t *testing.T) {
	s := NewSection(Coefficients{B2: 1})
	out := testutil.Impulse(5, 0)
	s.ProcessBlock(out)
	testutil.RequireBitIdentical(t, out, []float64{0, 0, 1, 0, 0})
}

func TestSection_BlockMatchesSample(t *testing.T) {
	in := testutil.DeterministicNoise(7, 1, 257)

	a := NewSection(smooth)
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = a.ProcessSample(x)
	}

	b := NewSection(smooth)
	got := append([]float64(nil), in...)
	b.ProcessBlock(got[:100])
	b.ProcessBlock(got[100:])

	testutil.RequireBitIdentical(t, got, want)
	if a.State() != b.State() {
		t.Fatalf("state mismatch: %+v vs %+v", a.State(), b.State())
	}
}

func TestSection_ResetAndState(t *testing.T) {
	s := NewSection(smooth)
	s.ProcessSample(1)
	s.ProcessSample(0.5)

	saved := s.State()
	if saved == (State{}) {
		t.Fatal("expected non-zero state after input")
	}

	next := s.ProcessSample(0)
	s.Reset()
	if s.State() != (State{}) {
		t.Fatalf("Reset left %+v", s.State())
	}
	if s.Coefficients != smooth {
		t.Fatal("Reset changed coefficients")
	}

	s.SetState(saved)
	if got := s.ProcessSample(0); got != next {
		t.Fatalf("restored output %v, want %v", got, next)
	}
}

func TestSection_StableDecay(t *testing.T) {
	s := NewSection(smooth)
	s.ProcessSample(1)

	buf := make([]float64, 4096)
	s.ProcessBlock(buf)
	if math.Abs(buf[len(buf)-1]) > 1e-12 {
		t.Fatalf("impulse tail did not decay: %v", buf[len(buf)-1])
	}
}
