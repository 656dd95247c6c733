package biquad

import (
	"math"
	"math/cmplx"
)

// zInv returns e^{-jw} for freqHz at sampleRate.
func zInv(freqHz, sampleRate float64) complex128 {
	return cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate)
}

func (c *Coefficients) eval(z1 complex128) complex128 {
	num := complex(c.B0, 0) + z1*(complex(c.B1, 0)+z1*complex(c.B2, 0))
	den := 1 + z1*(complex(c.A1, 0)+z1*complex(c.A2, 0))

	return num / den
}

// Response evaluates H(e^jw) at freqHz.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	return c.eval(zInv(freqHz, sampleRate))
}

// MagnitudeDB returns |H| at freqHz in dB.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return toDB(c.Response(freqHz, sampleRate))
}

// Response evaluates the cascade, the product of its sections.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	z1 := zInv(freqHz, sampleRate)
	h := complex(1, 0)

	for i := range c.sections {
		h *= c.sections[i].eval(z1)
	}

	return h
}

// MagnitudeDB returns the cascade magnitude at freqHz in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return toDB(c.Response(freqHz, sampleRate))
}

func toDB(h complex128) float64 {
	return 20 * math.Log10(cmplx.Abs(h))
}

// ImpulseResponse returns the first n samples of the cascade's impulse
// response. The chain memory is left as it was.
func (c *Chain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := c.State()
	defer c.SetState(saved)

	c.Reset()

	out := make([]float64, n)
	out[0] = 1
	c.ProcessBlock(out)

	return out
}
