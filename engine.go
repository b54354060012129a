package btcore

// Engine is the monomorphic bitset-indexed subgraph engine. It knows
// vertices only as dense indices in [0, N()); it is immutable after
// construction and every query method is a pure function of the engine
// and its Subset argument, so it is safe to call concurrently from any
// number of goroutines without synchronization.
//
// Most callers build an Engine indirectly, through NewIndex;
// callers that already work in dense integers (PMC enumerators, minimal
// separator dynamic programming) can use an *Engine directly and skip the
// label-translation layer entirely.
type Engine struct {
	adj *BitAdjacency
}

// N returns the vertex count, n.
func (e *Engine) N() int {
	return e.adj.n
}

// Row returns vertex v's adjacency row.
func (e *Engine) Row(v int) Subset {
	return e.adj.Row(v)
}

// Index is the generic label-translation adapter around an Engine. It
// owns the VertexIndex[T] and is the type most callers construct directly.
type Index[T comparable] struct {
	vx     *VertexIndex[T]
	engine *Engine
}

// NewIndex constructs an Index (and the Engine it wraps) from a
// LabelGraph. Vertices are enumerated in g's iteration order to assign
// indices 0..n-1; for each vertex the neighborhood bits are set. After
// NewIndex returns, g is no longer referenced: the engine is pure over
// its construction input.
func NewIndex[T comparable](g *LabelGraph[T]) *Index[T] {
	order := g.Vertices()
	vx := newVertexIndex(order)

	neighbors := make([][]int, vx.N())
	for _, label := range order {
		v := vx.IndexOf(label)
		for _, nb := range g.Neighbors(label) {
			if w := vx.IndexOf(nb); w >= 0 {
				neighbors[v] = append(neighbors[v], w)
			}
		}
	}

	return &Index[T]{
		vx:     vx,
		engine: &Engine{adj: buildAdjacency(vx.N(), neighbors)},
	}
}

// Engine returns the underlying monomorphic engine, for callers that want
// to work in dense integers directly.
func (x *Index[T]) Engine() *Engine {
	return x.engine
}

// N returns the vertex count, n.
func (x *Index[T]) N() int {
	return x.vx.N()
}

// IndexOf returns the dense index of label, or -1 if label is foreign.
func (x *Index[T]) IndexOf(label T) int {
	return x.vx.IndexOf(label)
}

// LabelOf returns the label assigned to index i.
func (x *Index[T]) LabelOf(i int) T {
	return x.vx.LabelOf(i)
}

// BitsetOf translates a set of labels into a Subset, ignoring any label
// foreign to this index.
func (x *Index[T]) BitsetOf(labels []T) Subset {
	return x.vx.BitsetOf(labels)
}

// LabelsOf translates a Subset back into the labels of its members.
func (x *Index[T]) LabelsOf(s Subset) []T {
	return x.vx.LabelsOf(s)
}
