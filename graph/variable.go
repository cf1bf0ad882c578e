package graph

// A Variable records, for one variable identifier, the clauses it occurs
// in split by polarity, and its current assignment (if any).
//
// Invariant I1 (bipartite consistency): for every Variable v and Clause c,
// c.ID is in v.Positive iff +v is a literal of c, and symmetrically for
// v.Negative and -v.
type Variable struct {
	ID       VariableID
	Positive map[ClauseID]struct{}
	Negative map[ClauseID]struct{}
	Assigned bool
	Value    bool
}

func newVariable(id VariableID) *Variable {
	return &Variable{
		ID:       id,
		Positive: make(map[ClauseID]struct{}),
		Negative: make(map[ClauseID]struct{}),
	}
}

// occurrences returns the polarity-specific clause set for lit's sign.
func (v *Variable) occurrences(positive bool) map[ClauseID]struct{} {
	if positive {
		return v.Positive
	}
	return v.Negative
}

// Score is the static decision-order score from spec §4.3.2:
// max(|positive clauses|, |negative clauses|).
func (v *Variable) Score() int {
	p, n := len(v.Positive), len(v.Negative)
	if p > n {
		return p
	}
	return n
}

// IsPure reports whether v occurs with only one polarity among its
// surviving clauses, and if so, which value would satisfy every occurrence.
// ok is false if v occurs with both polarities, or with neither (dangling).
func (v *Variable) IsPure() (value bool, ok bool) {
	switch {
	case len(v.Negative) == 0 && len(v.Positive) > 0:
		return true, true
	case len(v.Positive) == 0 && len(v.Negative) > 0:
		return false, true
	default:
		return false, false
	}
}
