// Package spatial provides stereo imaging processors.
//
// Included processors:
//   - StereoField: Single-band mid/side width, mono bass, balance and
//     constant-power pan with correlation, level and scatter metering.
//   - MultibandWidth: Independent mid/side width for low, mid and high bands
//     split by phase-compensated Linkwitz-Riley crossovers.
//
// Both processors work on paired left/right buffers in place, do not
// allocate in Process, and publish their meters atomically so a display
// goroutine may read them while audio is running.
package spatial
