package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-stereo/dsp/filter/design"
)

func ExampleLowpass() {
	lp := design.Lowpass(1000, 48000)

	fmt.Printf("100 Hz:  %.2f dB\n", lp.MagnitudeDB(100, 48000))
	fmt.Printf("1 kHz:   %.2f dB\n", lp.MagnitudeDB(1000, 48000))
	// Output:
	// 100 Hz:  -0.00 dB
	// 1 kHz:   -3.01 dB
}
