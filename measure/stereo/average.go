package stereo

// Average accumulates a block average. The zero value is ready to use.
type Average struct {
	sum float64
	n   int
}

// Add accumulates one value.
func (a *Average) Add(v float64) {
	a.sum += v
	a.n++
}

// Mean returns the average of the accumulated values, or 0 if none were
// added.
func (a *Average) Mean() float64 {
	if a.n == 0 {
		return 0
	}
	return a.sum / float64(a.n)
}

// Flush returns Mean and clears the accumulator.
func (a *Average) Flush() float64 {
	m := a.Mean()
	a.Reset()
	return m
}

// Reset clears the accumulator.
func (a *Average) Reset() {
	a.sum = 0
	a.n = 0
}
