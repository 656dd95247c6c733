// Package stereo provides the metering primitives of a stereo imaging
// processor.
//
//   - Value: a float64 meter published atomically by the audio goroutine
//     and read by a display goroutine without locking.
//   - Correlation: a phase correlation estimate over fixed, non-overlapping
//     windows of consecutive samples.
//   - Average: a block-average accumulator for level meters.
//   - Scatter: a decimated, fixed-capacity ring of (L, R) pairs for a
//     goniometer display, guarded by a short critical section.
//
// # Usage
//
//	corr := stereo.NewCorrelation(stereo.DefaultCorrelationWindow)
//	var published stereo.Value
//	for i := range left {
//		if v, ok := corr.Add(left[i], right[i]); ok {
//			published.Store(v)
//		}
//	}
//	fmt.Println(stereo.ClassifyPhase(published.Load()))
package stereo
