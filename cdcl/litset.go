package cdcl

import "github.com/jwilms-sat/cdclsat/graph"

// litSet is the working clause L that conflict analysis resolves down to
// an asserting clause, represented as a set since resolution only ever
// adds or removes whole literals.
type litSet map[graph.Literal]struct{}

func newLitSet(lits []graph.Literal) litSet {
	s := make(litSet, len(lits))
	for _, l := range lits {
		s[l] = struct{}{}
	}
	return s
}

func (s litSet) has(lit graph.Literal) bool {
	_, ok := s[lit]
	return ok
}

// litFor returns whichever literal of v is present in s, if any.
func (s litSet) litFor(v graph.VariableID) (graph.Literal, bool) {
	if s.has(graph.PosLiteral(v)) {
		return graph.PosLiteral(v), true
	}
	if s.has(graph.NegLiteral(v)) {
		return graph.NegLiteral(v), true
	}
	return graph.NoLiteral, false
}

// ints renders s as the signed-integer literal list graph.AddClause wants.
func (s litSet) ints() []int {
	out := make([]int, 0, len(s))
	for lit := range s {
		out = append(out, int(lit))
	}
	return out
}

// resolve combines L and Cr on pivot, the variable whose complementary
// literals (+pivot in one set, -pivot in the other) cancel out.
func resolve(l, cr litSet, pivot graph.VariableID) litSet {
	out := make(litSet, len(l)+len(cr))
	for lit := range l {
		if lit.Var() != pivot {
			out[lit] = struct{}{}
		}
	}
	for lit := range cr {
		if lit.Var() != pivot {
			out[lit] = struct{}{}
		}
	}
	return out
}
