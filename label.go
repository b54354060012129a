package btcore

// VertexIndex is a bijection between caller-supplied vertex labels and the
// dense integer range [0, n). It is built once, from the iteration order
// of a LabelGraph, and never mutated afterward.
type VertexIndex[T comparable] struct {
	labelOf []T
	indexOf map[T]int
}

// newVertexIndex assigns consecutive indices to order, in the order given.
func newVertexIndex[T comparable](order []T) *VertexIndex[T] {
	vx := &VertexIndex[T]{
		labelOf: make([]T, len(order)),
		indexOf: make(map[T]int, len(order)),
	}
	for i, label := range order {
		vx.labelOf[i] = label
		vx.indexOf[label] = i
	}
	return vx
}

// N returns the number of vertices, n.
func (vx *VertexIndex[T]) N() int {
	return len(vx.labelOf)
}

// IndexOf returns the dense index of label, or -1 if label is foreign to
// this index.
func (vx *VertexIndex[T]) IndexOf(label T) int {
	if i, ok := vx.indexOf[label]; ok {
		return i
	}
	return -1
}

// LabelOf returns the label originally assigned to index i. It panics if i
// is outside [0, n), the same "caller bug, not corruption" contract the
// rest of the engine uses for out-of-range positions.
func (vx *VertexIndex[T]) LabelOf(i int) T {
	return vx.labelOf[i]
}

// BitsetOf returns the Subset containing the index of every label in
// labels that is known to this index. Foreign labels are silently ignored.
func (vx *VertexIndex[T]) BitsetOf(labels []T) Subset {
	s := newSubset(vx.N())
	for _, label := range labels {
		if i, ok := vx.indexOf[label]; ok {
			s.Set(i)
		}
	}
	return s
}

// LabelsOf returns the labels of every index set in s.
func (vx *VertexIndex[T]) LabelsOf(s Subset) []T {
	out := make([]T, 0, s.Count())
	s.ForEach(func(i int) bool {
		out = append(out, vx.labelOf[i])
		return true
	})
	return out
}
