package param_test

import (
	"fmt"

	"github.com/cwbudde/algo-stereo/dsp/param"
)

func ExampleSmoother() {
	s := param.NewSmoother(0, 0)
	s.Configure(48000)
	s.SetTarget(1)

	fmt.Println(s.Next())
	// Output:
	// 1
}

func ExampleCoefficient() {
	fmt.Printf("%.6f\n", param.Coefficient(48000, 0))
	fmt.Printf("%.6f\n", param.Coefficient(1000, 1))
	// Output:
	// 1.000000
	// 0.632121
}
