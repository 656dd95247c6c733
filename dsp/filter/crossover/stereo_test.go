package crossover

import (
	"testing"

	"github.com/cwbudde/algo-stereo/dsp/filter/biquad"
)

func TestStereo_ChannelsMatchMonoCrossovers(t *testing.T) {
	st, err := NewStereo(120, 44100)
	if err != nil {
		t.Fatal(err)
	}

	refL, _ := New(120, 44100)
	refR, _ := New(120, 44100)

	for i := range 128 {
		l := float64(i%7) * 0.1
		r := -float64(i%5) * 0.2

		loL, hiL, loR, hiR := st.ProcessSample(l, r)
		wantLoL, wantHiL := refL.ProcessSample(l)
		wantLoR, wantHiR := refR.ProcessSample(r)

		if loL != wantLoL || hiL != wantHiL || loR != wantLoR || hiR != wantHiR {
			t.Fatalf("sample %d: channel outputs diverge from mono crossovers", i)
		}
	}
}

func TestStereo_SetFrequency(t *testing.T) {
	st, _ := NewStereo(120, 44100)

	if err := st.SetFrequency(300); err != nil {
		t.Fatal(err)
	}
	if st.Freq() != 300 || st.Left().Freq() != 300 || st.Right().Freq() != 300 {
		t.Fatalf("frequency not applied to both channels")
	}

	if err := st.SetFrequency(-1); err == nil {
		t.Fatal("expected error")
	}
}

func TestStereo_Retune(t *testing.T) {
	st, _ := NewStereo(120, 1000)

	if got := st.Retune(500); got != 490 {
		t.Fatalf("Retune(500) = %v, want 490", got)
	}
	if st.Left().Freq() != 490 || st.Right().Freq() != 490 {
		t.Fatalf("channels = %v/%v, want 490", st.Left().Freq(), st.Right().Freq())
	}
}

func TestStereo_SetSampleRateAndReset(t *testing.T) {
	st, _ := NewStereo(120, 44100)
	st.ProcessSample(1, -1)

	if err := st.SetSampleRate(48000); err != nil {
		t.Fatal(err)
	}
	if st.Left().SampleRate() != 48000 || st.Right().SampleRate() != 48000 {
		t.Fatal("sample rate not applied")
	}

	st.ProcessSample(1, 1)
	st.Reset()
	for _, s := range st.Right().HP().State() {
		if s != (biquad.State{}) {
			t.Fatalf("right HP state not cleared: %v", s)
		}
	}

	if err := st.SetSampleRate(0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}
