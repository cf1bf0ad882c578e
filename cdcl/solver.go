package cdcl

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jwilms-sat/cdclsat/graph"
)

// Stats accumulates counters over one Solve call, recovering the
// duration/conflict reporting the original implementation printed from
// duration() and restartTime() (spec §5).
type Stats struct {
	Decisions      int
	Conflicts      int
	ClausesLearned int
	UnitsLearned   int
	Duration       time.Duration
}

// Verdict is the terminal outcome of a Solve call.
type Verdict int

const (
	VerdictSat Verdict = iota
	VerdictUnsat
)

func (v Verdict) String() string {
	if v == VerdictSat {
		return "SAT"
	}
	return "UNSAT"
}

// Solver runs CDCL search over a shared graph.Graph that has already been
// through simplify.Run. It owns the trail and the decision heuristic; it
// never deletes a clause (spec §3's lifecycle rule binds CDCL, unlike
// simplify).
type Solver struct {
	g     *graph.Graph
	trail Trail
	order *heuristic
	Stats Stats
}

// NewSolver builds a Solver over g, taking a decision-score snapshot of
// every currently unassigned variable.
func NewSolver(g *graph.Graph) *Solver {
	return &Solver{
		g:     g,
		order: newHeuristic(g, g.UnassignedVariables()),
	}
}

// Solve runs the searching/propagating/analyzing state machine to
// termination, or until ctx is done. The context is checked at the top of
// each decision iteration only, per spec §5: propagation and conflict
// analysis within one iteration always run to completion.
func (s *Solver) Solve(ctx context.Context) (Verdict, error) {
	start := time.Now()
	defer func() { s.Stats.Duration = time.Since(start) }()

	for {
		if err := ctx.Err(); err != nil {
			return VerdictUnsat, err
		}

		id, ok := s.order.next(s.g)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"decisions": s.Stats.Decisions,
				"conflicts": s.Stats.Conflicts,
			}).Debug("cdcl: all variables assigned")
			return VerdictSat, nil
		}

		s.Stats.Decisions++
		logrus.WithField("variable", id).Trace("cdcl: decide")
		conflict, has := s.assignAndPropagate(id, true, graph.NoClause)
		for has {
			s.Stats.Conflicts++
			learnedID, assertingVar, assertingValue, unsat, err := s.analyze(conflict)
			if err != nil {
				return VerdictUnsat, errors.Wrap(err, "cdcl: conflict analysis")
			}
			if unsat {
				logrus.WithField("conflicts", s.Stats.Conflicts).Debug("cdcl: derived the empty clause")
				return VerdictUnsat, nil
			}
			s.Stats.ClausesLearned++
			if c, ok := s.g.Clause(learnedID); ok && c.Len() == 1 {
				s.Stats.UnitsLearned++
			}
			conflict, has = s.assignAndPropagate(assertingVar, assertingValue, learnedID)
		}
	}
}

// assignAndPropagate binds v to value, records the trail step, updates the
// satisfied-side cache, and propagates the consequences depth-first. reason
// is graph.NoClause for a decision, or the unit clause that forced v
// otherwise.
func (s *Solver) assignAndPropagate(v graph.VariableID, value bool, reason graph.ClauseID) (conflict graph.ClauseID, has bool) {
	if err := s.g.Assign(v, value, false); err != nil {
		return reason, true
	}
	s.trail.Push(TrailStep{Var: v, Reason: reason})
	s.markSatisfiedSide(v, value)
	return s.propagate(v, value)
}

// markSatisfiedSide caches StatusSatisfied on every still-unresolved clause
// on v's matching-polarity side, maintaining invariant I2 even though
// propagation itself only needs to visit the opposite (falsified) side.
func (s *Solver) markSatisfiedSide(v graph.VariableID, value bool) {
	var matching []graph.ClauseID
	if value {
		matching = s.g.PositiveClauses(v)
	} else {
		matching = s.g.NegativeClauses(v)
	}
	for _, cid := range matching {
		if c, ok := s.g.Clause(cid); ok && c.Status == graph.StatusUnassigned {
			s.g.SetClauseStatus(cid, graph.StatusSatisfied, v)
		}
	}
}

// propagate visits every clause that v's new assignment just falsified a
// literal of, forcing further assignments depth-first until either every
// such clause is resolved or one of them is found unsatisfiable.
func (s *Solver) propagate(v graph.VariableID, value bool) (conflict graph.ClauseID, has bool) {
	var falsified []graph.ClauseID
	if value {
		falsified = s.g.NegativeClauses(v)
	} else {
		falsified = s.g.PositiveClauses(v)
	}
	for _, cid := range falsified {
		if conflict, has = s.visitClause(cid, v); has {
			return conflict, has
		}
	}
	return graph.NoClause, false
}

// visitClause re-scans a clause whose cached status is still Unassigned
// after by's assignment removed one of its literals' possible values. It
// caches Satisfied/Unsatisfied as appropriate, forces the remaining
// literal of a newly-unit clause, or leaves the clause alone.
func (s *Solver) visitClause(cid graph.ClauseID, by graph.VariableID) (conflict graph.ClauseID, has bool) {
	c, ok := s.g.Clause(cid)
	if !ok || c.Status != graph.StatusUnassigned {
		return graph.NoClause, false
	}

	nbUnassigned := 0
	var lastUnassigned graph.Literal
	for _, lit := range c.Literals {
		v, _ := s.g.Variable(lit.Var())
		if !v.Assigned {
			nbUnassigned++
			lastUnassigned = lit
			continue
		}
		if v.Value == lit.IsPositive() {
			s.g.SetClauseStatus(cid, graph.StatusSatisfied, v.ID)
			return graph.NoClause, false
		}
	}

	switch nbUnassigned {
	case 0:
		s.g.SetClauseStatus(cid, graph.StatusUnsatisfied, by)
		return cid, true
	case 1:
		return s.assignAndPropagate(lastUnassigned.Var(), lastUnassigned.IsPositive(), cid)
	default:
		return graph.NoClause, false
	}
}
