// Package response measures the magnitude response of a stereo processor.
//
// A unit impulse is fed through the processor and both output channels are
// transformed with an FFT. The result answers questions such as "is the
// multiband path flat?" or "how much side signal survives at 60 Hz?".
//
// # Usage
//
//	r, err := response.Measure(engine, 48000, 8192, response.ExciteSide)
//	fmt.Printf("%.2f dB at 1 kHz\n", r.MagnitudeDBAt(response.Left, 1000))
package response
