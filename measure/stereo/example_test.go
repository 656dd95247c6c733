package stereo_test

import (
	"fmt"

	"github.com/cwbudde/algo-stereo/measure/stereo"
)

func ExampleCorrelation() {
	corr := stereo.NewCorrelation(4)

	var published stereo.Value
	for _, frame := range [][2]float64{{1, -1}, {0.5, -0.5}, {-1, 1}, {0.25, -0.25}} {
		if v, ok := corr.Add(frame[0], frame[1]); ok {
			published.Store(v)
		}
	}

	fmt.Printf("%.1f %s\n", published.Load(), stereo.ClassifyPhase(published.Load()))
	// Output:
	// -1.0 out of phase
}

func ExampleScatter() {
	sc := stereo.NewScatter(3, 2)
	for i := range 10 {
		sc.Offer(float64(i), 0)
	}

	fmt.Println(sc.Snapshot(nil))
	// Output:
	// [{4 0} {6 0} {8 0}]
}
