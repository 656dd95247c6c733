package biquad

// Coefficients are the five normalized coefficients of one second-order
// section; a0 is 1 and not stored.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Identity returns a pass-through section.
func Identity() Coefficients {
	return Coefficients{B0: 1}
}

// State is the two-cell memory of a transposed direct form II section.
// The zero value is a cleared filter.
type State struct {
	Z1, Z2 float64
}

// Reset clears both cells.
func (s *State) Reset() { *s = State{} }

// Step advances st by one input sample and returns the output:
//
//	y  = B0*x + Z1
//	Z1 = B1*x - A1*y + Z2
//	Z2 = B2*x - A2*y
//
// y is formed before either cell is rewritten.
func (c *Coefficients) Step(st *State, x float64) float64 {
	y := c.B0*x + st.Z1
	st.Z1 = c.B1*x - c.A1*y + st.Z2
	st.Z2 = c.B2*x - c.A2*y

	return y
}

// Section is one biquad: coefficients plus the memory they act on.
type Section struct {
	Coefficients

	st State
}

// NewSection returns a cleared section using c.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(x float64) float64 {
	return s.Step(&s.st, x)
}

// ProcessBlock filters buf in place.
func (s *Section) ProcessBlock(buf []float64) {
	c := s.Coefficients
	st := s.st

	for i, x := range buf {
		buf[i] = c.Step(&st, x)
	}

	s.st = st
}

// Reset clears the section memory. Coefficients are kept.
func (s *Section) Reset() { s.st.Reset() }

// State returns a copy of the section memory.
func (s *Section) State() State { return s.st }

// SetState overwrites the section memory.
func (s *Section) SetState(st State) { s.st = st }
