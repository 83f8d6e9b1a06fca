package lgp

import (
	"gonum.org/v1/gonum/floats"
)

// tieEpsilon bounds the float slop that protected-divide and repeated
// arithmetic can introduce into otherwise-equal register values.
const tieEpsilon = 1e-6

// Registers is a fixed-length bank of ordered register values. Its length
// never changes after construction; Reset restores every entry to zero.
type Registers []float32

// NewRegisters returns a zero-filled register bank of the given length.
func NewRegisters(n int) Registers {
	return make(Registers, n)
}

// Reset zeroes every register in place.
func (r Registers) Reset() {
	for i := range r {
		r[i] = 0
	}
}

// Len returns the number of registers in the bank.
func (r Registers) Len() int {
	return len(r)
}

// Get returns the value at index i.
func (r Registers) Get(i int) float32 {
	return r[i]
}

// Update writes v to index i.
func (r Registers) Update(i int, v float32) {
	r[i] = v
}

// Slice returns a defensive copy of length registers starting at start, so
// that callers can never alias back into the bank.
func (r Registers) Slice(start, length int) Registers {
	out := make(Registers, length)
	copy(out, r[start:start+length])
	return out
}

// Clone returns an independent copy of the entire bank.
func (r Registers) Clone() Registers {
	return r.Slice(0, len(r))
}

// ArgMax returns every index in [lo, hi) whose value is within tieEpsilon
// of the maximum value over that range. Ties are returned in ascending index order; callers
// decide how to break them.
func (r Registers) ArgMax(lo, hi int) []int {
	window := make([]float64, hi-lo)
	for i := lo; i < hi; i++ {
		window[i-lo] = float64(r[i])
	}
	max := floats.Max(window)

	var ties []int
	for i := lo; i < hi; i++ {
		if floats.EqualWithinAbs(float64(r[i]), max, tieEpsilon) {
			ties = append(ties, i)
		}
	}
	return ties
}

// Equal reports whether two register banks have the same length and values.
func (r Registers) Equal(other Registers) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// Less reports whether r sorts before other under elementwise lexicographic
// order. Shorter banks that are a prefix of a longer one sort first.
func (r Registers) Less(other Registers) bool {
	n := len(r)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if r[i] != other[i] {
			return r[i] < other[i]
		}
	}
	return len(r) < len(other)
}
