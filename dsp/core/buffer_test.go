package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestDeinterleaveStride(t *testing.T) {
	// Three channels: L, R, and an auxiliary channel that must be skipped.
	src := []float64{1, -1, 9, 2, -2, 9, 3, -3, 9}
	left := make([]float64, 4)
	right := make([]float64, 4)

	n := Deinterleave(left, right, src, 3)
	if n != 3 {
		t.Fatalf("frames = %d, want 3", n)
	}

	for i := range n {
		if left[i] != float64(i+1) || right[i] != -float64(i+1) {
			t.Fatalf("frame %d = (%v, %v)", i, left[i], right[i])
		}
	}
}

func TestInterleaveRoundTrip(t *testing.T) {
	src := []float64{1, -1, 7, 2, -2, 7}
	left := make([]float64, 2)
	right := make([]float64, 2)
	Deinterleave(left, right, src, 3)

	left[0], right[1] = 10, 20

	n := Interleave(src, left, right, 3)
	if n != 2 {
		t.Fatalf("frames = %d, want 2", n)
	}

	want := []float64{10, -1, 7, 2, 20, 7}
	for i := range want {
		if src[i] != want[i] {
			t.Fatalf("src[%d] = %v, want %v", i, src[i], want[i])
		}
	}
}

func TestInterleaveRejectsMono(t *testing.T) {
	if n := Deinterleave(make([]float64, 2), make([]float64, 2), []float64{1, 2}, 1); n != 0 {
		t.Fatalf("mono deinterleave frames = %d, want 0", n)
	}
	if n := Interleave([]float64{1, 2}, []float64{0}, []float64{0}, 1); n != 0 {
		t.Fatalf("mono interleave frames = %d, want 0", n)
	}
}
