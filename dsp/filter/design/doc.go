// Package design provides the RBJ-style biquad coefficient designers used by
// the crossover network.
//
// All crossover sections use the Butterworth quality factor [ButterworthQ].
// Cascading two identical sections per branch yields a fourth-order
// Linkwitz-Riley crossover whose lowpass and highpass outputs sum to the
// second-order allpass returned by [Allpass] at the same frequency.
package design
