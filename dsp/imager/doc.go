// Package imager is a real-time stereo imaging engine.
//
// An [Engine] runs a fixed signal path on the first two channels of a
// buffer:
//
//	input gain -> input peak meter
//	  -> stereo field (mono bass, width, balance, pan, metering)
//	  -> multiband width (optional)
//	  -> output gain -> output peak meter
//
// While multiband mode is active the stereo field width is held at 100% so
// the band widths are the only width control in effect.
//
// Parameters are set between blocks from the processing goroutine, either
// one by one or as a whole [Params] value. Meters may be read from any
// goroutine at any time.
//
// Example:
//
//	e, _ := imager.New(imager.WithSampleRate(48000), imager.WithBlockSize(256))
//	e.SetWidth(150)
//	e.Process([][]float64{left, right})
//	m := e.Meters()
package imager
