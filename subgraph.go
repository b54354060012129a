package btcore

// InteriorBorder returns ∂ᵢS = { v ∈ S : N(v) ∩ (V∖S) ≠ ∅ }: the members
// of S that have a neighbor outside S.
func (e *Engine) InteriorBorder(s Subset) Subset {
	outside := s.Not(e.N())
	out := newSubset(e.N())
	s.ForEach(func(v int) bool {
		if e.Row(v).IntersectsAny(outside) {
			out.Set(v)
		}
		return true
	})
	return out
}

// ExteriorBorder returns N(S) = { v ∈ V∖S : N(v) ∩ S ≠ ∅ }: the vertices
// outside S that have a neighbor in S.
func (e *Engine) ExteriorBorder(s Subset) Subset {
	outside := s.Not(e.N())
	border := newSubset(e.N())
	s.ForEach(func(v int) bool {
		row := e.Row(v)
		if row.IntersectsAny(outside) {
			border.InPlaceOr(row)
		}
		return true
	})
	border.InPlaceAndNot(s)
	return border
}

// Saturate adds to s every vertex v ∈ N(S) whose neighborhood is a subset
// of S ∪ N(S), where N(S) is computed once, before any vertex is added.
// Adding such a vertex never enlarges S ∪ N(S), so one pass already
// leaves s closed under this rule: a repeat call on the result adds
// nothing.
func (e *Engine) Saturate(s Subset) {
	border := e.ExteriorBorder(s)
	closed := s.Clone()
	closed.InPlaceOr(border)
	outsideClosed := closed.Not(e.N())

	border.ForEach(func(v int) bool {
		if !e.Row(v).IntersectsAny(outsideClosed) {
			s.Set(v)
		}
		return true
	})
}

// Absorbable returns any v ∈ N(S) whose neighborhood lies in S ∪ N(S), or
// -1 if no such vertex exists. Any qualifying vertex is a valid answer;
// this implementation returns the lowest-indexed one.
func (e *Engine) Absorbable(s Subset) int {
	border := e.ExteriorBorder(s)
	closed := s.Clone()
	closed.InPlaceOr(border)
	outsideClosed := closed.Not(e.N())

	found := -1
	border.ForEach(func(v int) bool {
		if !e.Row(v).IntersectsAny(outsideClosed) {
			found = v
			return false
		}
		return true
	})
	return found
}

// Separate returns the connected components of G[V∖S], as a list of
// Subsets none of which contain any member of S. The order of the
// returned components is unspecified; the partition itself is a
// deterministic function of (G, S).
//
// Component enumeration uses an explicit LIFO stack rather than recursion,
// so that exploring a component cannot overflow the call stack on a large
// graph.
func (e *Engine) Separate(s Subset) []Subset {
	n := e.N()
	visited := s.Clone()
	var components []Subset
	stack := make([]int, 0, n)

	for start := 0; start < n; start++ {
		if visited.Test(start) {
			continue
		}
		component := newSubset(n)
		stack = append(stack[:0], start)
		visited.Set(start)
		component.Set(start)

		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			e.Row(v).ForEach(func(w int) bool {
				if !visited.Test(w) {
					visited.Set(w)
					component.Set(w)
					stack = append(stack, w)
				}
				return true
			})
		}
		components = append(components, component)
	}
	return components
}
