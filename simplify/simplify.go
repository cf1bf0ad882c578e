package simplify

import (
	"github.com/sirupsen/logrus"

	"github.com/jwilms-sat/cdclsat/graph"
)

// Verdict is the outcome of a simplification pass, or the Indet result
// meaning "hand the Graph to CDCL".
type Verdict int

const (
	// VerdictIndet means the Graph was not fully resolved by Rule U/Rule P
	// and must go on to CDCL search.
	VerdictIndet Verdict = iota
	// VerdictSat means every clause was removed (satisfied).
	VerdictSat
	// VerdictUnsat means an empty clause was produced, or two cascading
	// assignments conflicted.
	VerdictUnsat
)

func (v Verdict) String() string {
	switch v {
	case VerdictSat:
		return "SAT"
	case VerdictUnsat:
		return "UNSAT"
	default:
		return "INDET"
	}
}

// Run drives g to a fixpoint under Rule U (unit propagation) then Rule P
// (pure literal elimination), per spec §4.2. See the package doc for the
// rules themselves.
func Run(g *graph.Graph) (Verdict, error) {
	s := &simplifier{g: g}

	for _, id := range g.UnitClauseSeeds() {
		if done, verdict := s.visitClause(id); done {
			logrus.WithField("verdict", verdict).Debug("simplify: resolved during unit propagation")
			return verdict, nil
		}
	}

	for _, id := range g.UnassignedVariables() {
		if done, verdict := s.visitVariable(id); done {
			logrus.WithField("verdict", verdict).Debug("simplify: resolved during pure literal elimination")
			return verdict, nil
		}
	}

	if g.NumClauses() == 0 {
		return VerdictSat, nil
	}
	logrus.WithFields(logrus.Fields{
		"clauses":   g.NumClauses(),
		"variables": len(g.UnassignedVariables()),
	}).Debug("simplify: handing graph to cdcl")
	return VerdictIndet, nil
}

// simplifier carries no state beyond the Graph; it exists so that
// visitClause/assignVariable/removeClause/visitVariable can call each other
// the way the original GraphSolver's recursive methods do, without
// threading the Graph through every call explicitly.
type simplifier struct {
	g *graph.Graph
}

// visitClause implements the clause half of Rule U. It tolerates id
// already being gone from the graph (spec §4.2's worklist requirement).
func (s *simplifier) visitClause(id graph.ClauseID) (done bool, verdict Verdict) {
	c, ok := s.g.Clause(id)
	if !ok {
		return false, VerdictIndet
	}
	switch c.Len() {
	case 0:
		return true, VerdictUnsat
	case 1:
		lit := c.Literals[0]
		return s.assignVariable(lit.Var(), lit.IsPositive())
	default:
		return false, VerdictIndet
	}
}

// assignVariable binds id to value and propagates the consequences: every
// clause newly satisfied is removed, every clause newly missing a literal
// (the opposite polarity) is revisited, possibly recursing into further
// unit propagation or pure-literal elimination.
//
// Per spec §9, the variable's positive/negative clause sets are snapshotted
// before this walk, since RemoveClause/RemoveLiteral mutate those same sets.
func (s *simplifier) assignVariable(id graph.VariableID, value bool) (done bool, verdict Verdict) {
	v, _ := s.g.Variable(id)
	if v.Assigned {
		if v.Value != value {
			return true, VerdictUnsat
		}
		return false, VerdictIndet
	}

	positives := s.g.PositiveClauses(id)
	negatives := s.g.NegativeClauses(id)
	if err := s.g.Assign(id, value, false); err != nil {
		return true, VerdictUnsat
	}
	logrus.WithFields(logrus.Fields{"variable": id, "value": value}).Trace("simplify: assign")

	for _, cid := range positives {
		s.g.RemoveLiteral(cid, graph.PosLiteral(id))
		if value {
			if done, verdict = s.removeClause(cid); done {
				return done, verdict
			}
		} else if done, verdict = s.visitClause(cid); done {
			return done, verdict
		}
	}
	for _, cid := range negatives {
		s.g.RemoveLiteral(cid, graph.NegLiteral(id))
		if !value {
			if done, verdict = s.removeClause(cid); done {
				return done, verdict
			}
		} else if done, verdict = s.visitClause(cid); done {
			return done, verdict
		}
	}
	return false, VerdictIndet
}

// removeClause deletes a now-satisfied clause and revisits every variable
// that occurred in it, since losing an occurrence can make a variable pure.
func (s *simplifier) removeClause(id graph.ClauseID) (done bool, verdict Verdict) {
	c, ok := s.g.Clause(id)
	if !ok {
		return false, VerdictIndet
	}
	lits := append([]graph.Literal(nil), c.Literals...)
	s.g.RemoveClause(id)
	logrus.WithField("clause", id).Trace("simplify: remove satisfied clause")
	if s.g.NumClauses() == 0 {
		return true, VerdictSat
	}
	for _, lit := range lits {
		if done, verdict = s.visitVariable(lit.Var()); done {
			return done, verdict
		}
	}
	return false, VerdictIndet
}

// visitVariable implements Rule P for a single variable.
func (s *simplifier) visitVariable(id graph.VariableID) (done bool, verdict Verdict) {
	v, ok := s.g.Variable(id)
	if !ok || v.Assigned {
		return false, VerdictIndet
	}
	value, pure := v.IsPure()
	if !pure {
		return false, VerdictIndet
	}
	logrus.WithFields(logrus.Fields{"variable": id, "value": value}).Trace("simplify: pure literal")
	return s.assignVariable(id, value)
}
