package cdcl

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jwilms-sat/cdclsat/graph"
)

// analyze turns a conflicting clause into a learned clause by iterated
// resolution against the trail's reasons, per spec §4.3.4.
//
// Phase 1 walks the trail from the top, resolving the working clause L
// against each propagation step's reason whenever the two share a
// complementary pair on that step's variable, skipping steps that don't.
// It stops, without popping, the moment the top of the trail is a
// decision.
//
// Phase 2 then keeps popping (decisions now included) until the
// top-of-trail variable's literal appears in L: that variable is the
// asserting one, and L is the clause to learn.
//
// unsat is true iff L collapsed to the empty set, meaning the formula has
// no model under any assignment reachable from here.
func (s *Solver) analyze(conflict graph.ClauseID) (learned graph.ClauseID, assertingVar graph.VariableID, assertingValue bool, unsat bool, err error) {
	c, ok := s.g.Clause(conflict)
	if !ok {
		return graph.NoClause, graph.NoVariable, false, false, errors.Errorf("cdcl: conflict clause %d vanished before analysis", conflict)
	}
	l := newLitSet(c.Literals)

	for s.trail.Len() > 0 && !s.trail.Top().IsDecision() {
		step := s.trail.Pop()
		if err := s.g.Unassign(step.Var); err != nil {
			return graph.NoClause, graph.NoVariable, false, false, errors.Wrap(err, "cdcl: unassign during resolution")
		}
		s.order.restore(step.Var)

		rc, ok := s.g.Clause(step.Reason)
		if !ok {
			continue
		}
		cr := newLitSet(rc.Literals)
		switch {
		case l.has(graph.PosLiteral(step.Var)) && cr.has(graph.NegLiteral(step.Var)):
			l = resolve(l, cr, step.Var)
		case l.has(graph.NegLiteral(step.Var)) && cr.has(graph.PosLiteral(step.Var)):
			l = resolve(l, cr, step.Var)
		}
		if len(l) == 0 {
			logrus.Debug("cdcl: conflict analysis derived the empty clause")
			return graph.NoClause, graph.NoVariable, false, true, nil
		}
	}

	for {
		if s.trail.Len() == 0 {
			return graph.NoClause, graph.NoVariable, false, false, errors.New("cdcl: exhausted the trail without finding an asserting literal")
		}
		top := s.trail.Top()
		lit, found := l.litFor(top.Var)
		step := s.trail.Pop()
		if err := s.g.Unassign(step.Var); err != nil {
			return graph.NoClause, graph.NoVariable, false, false, errors.Wrap(err, "cdcl: unassign during backtrack")
		}
		if found {
			assertingVar = step.Var
			assertingValue = lit.IsPositive()
			break
		}
		s.order.restore(step.Var)
	}

	learned, ok = s.g.AddClause(l.ints())
	if !ok {
		return graph.NoClause, graph.NoVariable, false, false, errors.New("cdcl: learned clause was rejected as a tautology")
	}
	logrus.WithFields(logrus.Fields{
		"clause":   learned,
		"literals": len(l),
		"variable": assertingVar,
	}).Trace("cdcl: learned clause")
	return learned, assertingVar, assertingValue, false, nil
}
