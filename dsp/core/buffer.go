package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Deinterleave copies the first two channels of the interleaved frames in
// src into left and right. numChannels is the frame stride of src and must
// be at least 2. It returns the number of frames copied, bounded by the
// shorter of the destination slices and the complete frames in src.
func Deinterleave(left, right, src []float64, numChannels int) int {
	if numChannels < 2 {
		return 0
	}

	n := min(len(left), len(right), len(src)/numChannels)
	for i := range n {
		left[i] = src[i*numChannels]
		right[i] = src[i*numChannels+1]
	}
	return n
}

// Interleave writes left and right back into the first two channels of the
// interleaved frames in dst, leaving any further channels untouched. It is
// the inverse of Deinterleave and returns the number of frames written.
func Interleave(dst, left, right []float64, numChannels int) int {
	if numChannels < 2 {
		return 0
	}

	n := min(len(left), len(right), len(dst)/numChannels)
	for i := range n {
		dst[i*numChannels] = left[i]
		dst[i*numChannels+1] = right[i]
	}
	return n
}
