// Package param provides one-pole parameter smoothing for real-time
// processors.
//
// A [Smoother] ramps its current value toward a target once per sample so
// gain-like parameters (width, pan, balance, gain) change without zipper
// noise. The ramp time is expressed in milliseconds and converted to a
// per-sample coefficient with [Coefficient].
package param
