package btcore

import "github.com/go-treewidth/btcore/internal/bitset"

// Subset is a bit-vector of vertex indices, opaque to callers beyond the
// operations exposed on it. Its width is carried by whichever Engine or
// Index produced it, not by the Subset itself.
//
// Subsets are produced and consumed by callers; the engine never retains
// one internally. Saturate is the only operation that mutates its Subset
// argument in place; every other query returns a fresh one.
type Subset = bitset.BitSet

// newSubset returns the empty Subset over a universe of n vertices.
func newSubset(n int) Subset {
	return bitset.New(n)
}

// FullSubset returns the Subset containing all n vertices.
func FullSubset(n int) Subset {
	return bitset.Universe(n)
}

// SubsetOf returns the Subset, over a universe of n vertices, containing
// exactly the given indices.
func SubsetOf(n int, indices []int) Subset {
	return bitset.FromSlice(n, indices)
}
