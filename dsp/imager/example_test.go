package imager_test

import (
	"fmt"

	"github.com/cwbudde/algo-stereo/dsp/imager"
)

func ExampleEngine_Process() {
	p := imager.DefaultParams()
	p.Width = 0
	p.MonoBassEnabled = false

	e, err := imager.New(imager.WithSampleRate(48000), imager.WithParams(p))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	left := []float64{1, 0.5}
	right := []float64{0, -0.5}
	e.Process([][]float64{left, right})

	fmt.Printf("L=%v R=%v\n", left, right)
	// Output:
	// L=[0.5 0] R=[0.5 0]
}

func ExampleEngine_Meters() {
	p := imager.DefaultParams()
	p.InputGainDB = 6

	e, _ := imager.New(imager.WithParams(p))
	e.Process([][]float64{{0.25, -0.5}, {0.1, 0.2}})

	m := e.Meters()
	fmt.Printf("input peak L=%.3f R=%.3f\n", m.InputPeakL, m.InputPeakR)
	// Output:
	// input peak L=0.998 R=0.399
}

func ExampleDefaultParams() {
	p := imager.DefaultParams()

	fmt.Printf("width=%.0f%% mono bass=%.0f Hz (%v) crossovers=%.0f/%.0f Hz\n",
		p.Width, p.MonoBassFreq, p.MonoBassEnabled, p.LowMidFreq, p.MidHighFreq)
	// Output:
	// width=100% mono bass=120 Hz (true) crossovers=250/4000 Hz
}
