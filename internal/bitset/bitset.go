// Package bitset implements a fixed-capacity, packed-word bit-vector.
//
// This is a trimmed, fixed-width variant of the word-array bitset pattern
// found in github.com/gaissmai/bart's internal/bitset package: a BitSet is
// just a []uint64, and NextSet/Count lean on math/bits for word-at-a-time
// scans instead of testing bit by bit. Unlike that package, a BitSet here
// never grows past the width it was created with; callers that need more
// capacity allocate a new, wider one.
package bitset

import "math/bits"

const wordSize = 64
const log2WordSize = 6

// A BitSet is a fixed-width vector of bits packed into 64-bit words.
// The zero value is not usable; construct one with New or Universe.
type BitSet []uint64

// wordsNeeded returns the number of 64-bit words required to hold n bits.
func wordsNeeded(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + wordSize - 1) >> log2WordSize
}

// New returns the empty bit-vector over a universe of n elements.
func New(n int) BitSet {
	return make(BitSet, wordsNeeded(n))
}

// Universe returns the bit-vector with all n elements set.
func Universe(n int) BitSet {
	b := make(BitSet, wordsNeeded(n))
	for i := range b {
		b[i] = ^uint64(0)
	}
	b.maskTail(n)
	return b
}

// maskTail clears any bits at or beyond position n in the last word, so
// that a Universe(n) or Not(n) never carries stray high bits that would
// otherwise corrupt Count, Equal or IntersectsAny.
func (b BitSet) maskTail(n int) {
	if len(b) == 0 {
		return
	}
	if rem := n % wordSize; rem != 0 {
		b[len(b)-1] &= (uint64(1) << uint(rem)) - 1
	}
}

// Test reports whether bit i is set.
func (b BitSet) Test(i int) bool {
	return b[i>>log2WordSize]&(uint64(1)<<uint(i&(wordSize-1))) != 0
}

// Set sets bit i to 1.
func (b BitSet) Set(i int) {
	b[i>>log2WordSize] |= uint64(1) << uint(i&(wordSize-1))
}

// Clear sets bit i to 0.
func (b BitSet) Clear(i int) {
	b[i>>log2WordSize] &^= uint64(1) << uint(i&(wordSize-1))
}

// Clone returns an independent copy of b.
func (b BitSet) Clone() BitSet {
	c := make(BitSet, len(b))
	copy(c, b)
	return c
}

// IsEmpty reports whether no bit is set.
func (b BitSet) IsEmpty() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of set bits (the population count).
func (b BitSet) Count() int {
	var c int
	for _, w := range b {
		c += bits.OnesCount64(w)
	}
	return c
}

// Equal reports whether b and c have the same set bits.
func (b BitSet) Equal(c BitSet) bool {
	n := len(b)
	if len(c) < n {
		n = len(c)
	}
	for i := 0; i < n; i++ {
		if b[i] != c[i] {
			return false
		}
	}
	for _, w := range b[n:] {
		if w != 0 {
			return false
		}
	}
	for _, w := range c[n:] {
		if w != 0 {
			return false
		}
	}
	return true
}

// IntersectsAny reports whether b and c share any set bit, without
// materializing the intersection. This is the word-at-a-time primitive
// behind the border computations in package btcore.
func (b BitSet) IntersectsAny(c BitSet) bool {
	n := len(b)
	if len(c) < n {
		n = len(c)
	}
	for i := 0; i < n; i++ {
		if b[i]&c[i] != 0 {
			return true
		}
	}
	return false
}

// And returns the intersection of b and c as a new BitSet.
func (b BitSet) And(c BitSet) BitSet {
	n := len(b)
	if len(c) < n {
		n = len(c)
	}
	out := make(BitSet, n)
	for i := 0; i < n; i++ {
		out[i] = b[i] & c[i]
	}
	return out
}

// Or returns the union of b and c as a new BitSet.
func (b BitSet) Or(c BitSet) BitSet {
	n, m := len(b), len(c)
	if m > n {
		n = m
	}
	out := make(BitSet, n)
	copy(out, b)
	for i := 0; i < len(c); i++ {
		out[i] |= c[i]
	}
	return out
}

// AndNot returns b with every bit also set in c cleared (b &^ c).
func (b BitSet) AndNot(c BitSet) BitSet {
	out := make(BitSet, len(b))
	copy(out, b)
	n := len(c)
	if n > len(out) {
		n = len(out)
	}
	for i := 0; i < n; i++ {
		out[i] &^= c[i]
	}
	return out
}

// Not returns the complement of b within a universe of n elements.
func (b BitSet) Not(n int) BitSet {
	out := make(BitSet, wordsNeeded(n))
	for i := range out {
		if i < len(b) {
			out[i] = ^b[i]
		} else {
			out[i] = ^uint64(0)
		}
	}
	out.maskTail(n)
	return out
}

// InPlaceOr ORs c into b in place.
func (b BitSet) InPlaceOr(c BitSet) {
	n := len(c)
	if n > len(b) {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		b[i] |= c[i]
	}
}

// InPlaceAndNot clears, in place, every bit of b that is also set in c.
func (b BitSet) InPlaceAndNot(c BitSet) {
	n := len(c)
	if n > len(b) {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		b[i] &^= c[i]
	}
}

// NextSet returns the position of the first set bit at or after i, and
// true, or (0, false) if no such bit exists.
func (b BitSet) NextSet(i int) (int, bool) {
	x := i >> log2WordSize
	if x < 0 || x >= len(b) {
		return 0, false
	}
	word := b[x] >> uint(i&(wordSize-1))
	if word != 0 {
		return i + bits.TrailingZeros64(word), true
	}
	for x++; x < len(b); x++ {
		if b[x] != 0 {
			return x<<log2WordSize | bits.TrailingZeros64(b[x]), true
		}
	}
	return 0, false
}

// ForEach calls f once for every set bit, in increasing order, stopping
// early if f returns false.
func (b BitSet) ForEach(f func(i int) bool) {
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		if !f(i) {
			return
		}
	}
}

// Slice returns the set bits as a sorted slice of positions.
func (b BitSet) Slice() []int {
	out := make([]int, 0, b.Count())
	b.ForEach(func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}

// FromSlice returns the bit-vector, over a universe of n elements, with
// exactly the given positions set.
func FromSlice(n int, positions []int) BitSet {
	b := New(n)
	for _, p := range positions {
		b.Set(p)
	}
	return b
}
