package imager

// Snapshot is a point-in-time copy of every engine meter. Levels are
// linear magnitudes; Correlation is in [-1, 1].
type Snapshot struct {
	InputPeakL  float64
	InputPeakR  float64
	OutputPeakL float64
	OutputPeakR float64

	Correlation float64
	LeftLevel   float64
	RightLevel  float64
	MidLevel    float64
	SideLevel   float64

	LowLevel     float64
	MidBandLevel float64
	HighLevel    float64
}

// Meters returns the most recently published meter values. Safe to call
// from any goroutine.
func (e *Engine) Meters() Snapshot {
	return Snapshot{
		InputPeakL:  e.inPeakL.Load(),
		InputPeakR:  e.inPeakR.Load(),
		OutputPeakL: e.outPeakL.Load(),
		OutputPeakR: e.outPeakR.Load(),

		Correlation: e.field.Correlation(),
		LeftLevel:   e.field.LeftLevel(),
		RightLevel:  e.field.RightLevel(),
		MidLevel:    e.field.MidLevel(),
		SideLevel:   e.field.SideLevel(),

		LowLevel:     e.multiband.LowLevel(),
		MidBandLevel: e.multiband.MidLevel(),
		HighLevel:    e.multiband.HighLevel(),
	}
}

// Correlation returns the last published phase correlation.
func (e *Engine) Correlation() float64 { return e.field.Correlation() }

// InputPeak returns the input peak levels of the last block.
func (e *Engine) InputPeak() (left, right float64) {
	return e.inPeakL.Load(), e.inPeakR.Load()
}

// OutputPeak returns the output peak levels of the last block.
func (e *Engine) OutputPeak() (left, right float64) {
	return e.outPeakL.Load(), e.outPeakR.Load()
}
