package stereo

import (
	"math"
	"sync/atomic"
)

// Value is a float64 that can be stored and loaded from different
// goroutines without locking. The zero value holds 0.
type Value struct {
	bits atomic.Uint64
}

// Store publishes v.
func (v *Value) Store(f float64) {
	v.bits.Store(math.Float64bits(f))
}

// Load returns the most recently published value.
func (v *Value) Load() float64 {
	return math.Float64frombits(v.bits.Load())
}
