package biquad

// Chain runs sections in series. Every section has its own memory even when
// several share one coefficient set.
type Chain struct {
	sections []Section
}

// NewChain returns a cleared cascade with one section per coefficient set.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{}
	c.setSections(coeffs)

	return c
}

func (c *Chain) setSections(coeffs []Coefficients) {
	c.sections = make([]Section, len(coeffs))
	for i, k := range coeffs {
		c.sections[i].Coefficients = k
	}
}

// ProcessSample filters one sample through every section.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters buf in place, one section at a time.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears the memory of every section.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the cascade length.
func (c *Chain) NumSections() int { return len(c.sections) }

// UpdateCoefficients retunes the cascade. With an unchanged section count
// the memory carries over so a sweep stays continuous; otherwise the
// sections are rebuilt cleared.
func (c *Chain) UpdateCoefficients(coeffs []Coefficients) {
	if len(coeffs) != len(c.sections) {
		c.setSections(coeffs)
		return
	}

	for i, k := range coeffs {
		c.sections[i].Coefficients = k
	}
}

// Section returns the i-th section.
func (c *Chain) Section(i int) *Section { return &c.sections[i] }

// State returns a copy of every section's memory.
func (c *Chain) State() []State {
	out := make([]State, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].st
	}

	return out
}

// SetState restores memory saved with State. Extra entries are ignored.
func (c *Chain) SetState(states []State) {
	for i := range min(len(states), len(c.sections)) {
		c.sections[i].st = states[i]
	}
}
