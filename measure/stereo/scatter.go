package stereo

import "sync"

const (
	// DefaultScatterCapacity is the number of (L, R) pairs a scatter ring
	// holds.
	DefaultScatterCapacity = 512

	// DefaultScatterDecimation captures every 4th offered frame.
	DefaultScatterDecimation = 4
)

// Sample is one captured stereo frame.
type Sample struct {
	L, R float64
}

// Scatter is a fixed-capacity ring of decimated stereo frames for a
// goniometer display.
//
// Offer is called by the audio goroutine; Snapshot may be called from any
// other goroutine. The lock is held for a single slot write or one copy of
// the ring.
type Scatter struct {
	mu     sync.Mutex
	buf    []Sample
	next   int
	filled int
	decim  int
	phase  int
}

// NewScatter returns a ring holding capacity frames and keeping every
// decimation-th offered frame. Non-positive arguments fall back to the
// defaults.
func NewScatter(capacity, decimation int) *Scatter {
	if capacity <= 0 {
		capacity = DefaultScatterCapacity
	}
	if decimation <= 0 {
		decimation = DefaultScatterDecimation
	}

	return &Scatter{
		buf:   make([]Sample, capacity),
		decim: decimation,
	}
}

// Offer counts one frame and stores it if it falls on the decimation grid.
// The first offered frame after construction or Reset is always stored.
func (s *Scatter) Offer(l, r float64) {
	keep := s.phase == 0
	s.phase++
	if s.phase == s.decim {
		s.phase = 0
	}

	if keep {
		s.Push(l, r)
	}
}

// Push stores a frame unconditionally, overwriting the oldest one when the
// ring is full.
func (s *Scatter) Push(l, r float64) {
	s.mu.Lock()
	s.buf[s.next] = Sample{L: l, R: r}
	s.next++
	if s.next == len(s.buf) {
		s.next = 0
	}
	if s.filled < len(s.buf) {
		s.filled++
	}
	s.mu.Unlock()
}

// Snapshot copies the stored frames into dst, oldest first, and returns
// the filled prefix of dst. dst is grown if its capacity is too small.
func (s *Scatter) Snapshot(dst []Sample) []Sample {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cap(dst) < s.filled {
		dst = make([]Sample, s.filled)
	}
	dst = dst[:s.filled]

	start := 0
	if s.filled == len(s.buf) {
		start = s.next
	}
	n := copy(dst, s.buf[start:s.filled])
	copy(dst[n:], s.buf[:start])

	return dst
}

// Len returns the number of stored frames.
func (s *Scatter) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filled
}

// Cap returns the ring capacity.
func (s *Scatter) Cap() int { return len(s.buf) }

// Decimation returns the capture interval in frames.
func (s *Scatter) Decimation() int { return s.decim }

// Reset empties the ring and restarts the decimation grid.
func (s *Scatter) Reset() {
	s.mu.Lock()
	clear(s.buf)
	s.next = 0
	s.filled = 0
	s.mu.Unlock()
	s.phase = 0
}
