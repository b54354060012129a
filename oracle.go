package btcore

// IsPotentialMaximalClique decides whether s is a potential maximal
// clique of G: a maximal clique in some minimal triangulation of G. It
// uses only Separate, ExteriorBorder and adjacency-row tests, and never
// modifies s.
//
// The decision is the Bouchitté–Todinca local characterization: letting
// C1..Ck = Separate(s),
//
//	(P1) every component Ci has N(Ci) ⊊ s, i.e. |ExteriorBorder(Ci)| < |s|
//	     (N(Ci) ⊆ s always holds by construction, so equal cardinality
//	     means equal as sets);
//	(P2) every non-edge {u, v} with u, v ∈ s is covered by some component
//	     Ci adjacent to both u and v.
//
// s is a PMC iff both hold.
func (e *Engine) IsPotentialMaximalClique(s Subset) bool {
	if s.IsEmpty() {
		// Every component of G itself has an empty (hence non-proper)
		// exterior border against the empty set, so the literal
		// cardinality form of (P1) would fail here for any non-empty
		// graph. S = ∅ is vacuously a potential maximal clique; handled
		// explicitly rather than left to fall out of (and contradict) the
		// cardinality test below.
		return true
	}

	components := e.Separate(s)
	size := s.Count()

	for _, c := range components {
		if e.ExteriorBorder(c).Count() >= size {
			return false
		}
	}

	members := s.Slice()
	for i, u := range members {
		rowU := e.Row(u)
		for _, v := range members[i+1:] {
			if rowU.Test(v) {
				continue // an edge, not a non-edge: nothing to cover
			}
			covered := false
			rowV := e.Row(v)
			for _, c := range components {
				if c.IntersectsAny(rowU) && c.IntersectsAny(rowV) {
					covered = true
					break
				}
			}
			if !covered {
				return false
			}
		}
	}
	return true
}
