// Package crossover provides fourth-order Linkwitz-Riley crossover networks
// for splitting an audio signal into frequency bands.
//
// A [Crossover] divides one channel into complementary lowpass and highpass
// outputs. Each branch is two cascaded Butterworth sections, so the branches
// are -6.02 dB at the split frequency and sum to a second-order allpass
// (flat magnitude response).
//
// [Stereo] runs one crossover per channel at a shared frequency. [ThreeBand]
// cascades two crossovers into low, mid and high bands and phase-compensates
// the low band so the three outputs sum to an allpass.
//
// Example:
//
//	xo, _ := crossover.New(1000, 48000) // LR4 at 1 kHz
//	lo, hi := xo.ProcessSample(inputSample)
//	sum := lo + hi // allpass-filtered input
//
// Changing the split frequency recomputes coefficients immediately and keeps
// the filter memory. Changing the sample rate recomputes and clears it.
package crossover
