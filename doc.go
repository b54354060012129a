// Package btcore implements the bitset-indexed subgraph engine used by
// exact treewidth solvers built on the Bouchitté–Todinca paradigm.
//
// The engine has four cooperating parts. VertexIndex maps caller-supplied
// vertex labels to a dense integer range [0, n). BitAdjacency stores the
// graph as n bit-vector rows. The SubgraphOps methods on Engine compute
// interior/exterior borders, saturate a vertex set, find an absorbable
// vertex, and separate a set's complement into connected components. The
// PmcOracle method, IsPotentialMaximalClique, decides whether a vertex set
// is a potential maximal clique using only those set primitives and
// adjacency-row tests.
//
// Construction
//
// Engine is monomorphic: it knows vertices only as indices in [0, n) and
// carries no type parameter, so its query methods stay free of generics
// overhead on the hot path. Index[T] is the generic adapter most callers
// actually construct: it owns the VertexIndex[T] and wraps an *Engine,
// translating between caller labels and the dense integer range. Build one
// with NewIndex, from a *LabelGraph[T].
//
// Purity and concurrency
//
// An Engine is immutable after construction and safe for concurrent use by
// any number of goroutines: every query method (InteriorBorder,
// ExteriorBorder, Absorbable, Separate, IsPotentialMaximalClique) is a pure
// function of the engine and its Subset argument. Saturate is the one
// exception: it mutates the Subset passed to it in place, so it is safe
// with respect to the engine but not with respect to concurrent readers of
// that same Subset.
package btcore
