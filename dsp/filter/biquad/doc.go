// Package biquad provides the second-order IIR filter runtime used by the
// crossover and stereo processors.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections are cascaded via
// [Chain] to build the fourth-order Linkwitz-Riley branches.
//
// This package provides the processing runtime only. Coefficient design
// lives in dsp/filter/design.
package biquad
