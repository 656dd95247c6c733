package crossover

import "fmt"

// Stereo is a pair of LR4 crossovers, one per channel, sharing a split
// frequency.
type Stereo struct {
	left  *Crossover
	right *Crossover
}

// NewStereo creates a stereo LR4 crossover at freq.
func NewStereo(freq, sampleRate float64) (*Stereo, error) {
	left, err := New(freq, sampleRate)
	if err != nil {
		return nil, err
	}

	right, err := New(freq, sampleRate)
	if err != nil {
		return nil, err
	}

	return &Stereo{left: left, right: right}, nil
}

// ProcessSample splits one stereo frame into its low and high bands.
func (s *Stereo) ProcessSample(l, r float64) (loL, hiL, loR, hiR float64) {
	loL, hiL = s.left.ProcessSample(l)
	loR, hiR = s.right.ProcessSample(r)

	return loL, hiL, loR, hiR
}

// SetFrequency moves the split frequency of both channels.
func (s *Stereo) SetFrequency(freq float64) error {
	if err := s.left.SetFrequency(freq); err != nil {
		return err
	}

	return s.right.SetFrequency(freq)
}

// Retune moves the split frequency of both channels, clamping it with
// ClampFrequency. It returns the applied frequency.
func (s *Stereo) Retune(freq float64) float64 {
	s.left.Retune(freq)
	return s.right.Retune(freq)
}

// SetSampleRate recomputes both channels for a new sample rate and clears
// their memory.
func (s *Stereo) SetSampleRate(sampleRate float64) error {
	if err := s.left.SetSampleRate(sampleRate); err != nil {
		return fmt.Errorf("crossover: left channel: %w", err)
	}

	if err := s.right.SetSampleRate(sampleRate); err != nil {
		return fmt.Errorf("crossover: right channel: %w", err)
	}

	return nil
}

// Reset clears both channels.
func (s *Stereo) Reset() {
	s.left.Reset()
	s.right.Reset()
}

// Freq returns the split frequency in Hz.
func (s *Stereo) Freq() float64 { return s.left.Freq() }

// Left returns the left-channel crossover.
func (s *Stereo) Left() *Crossover { return s.left }

// Right returns the right-channel crossover.
func (s *Stereo) Right() *Crossover { return s.right }
