package graph

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrConflict is returned by Assign when the variable is already assigned
// to a different value and override was false. Callers treat this as a
// global UNSAT signal.
var ErrConflict = errors.New("graph: conflicting assignment")

// A Graph is the bipartite clause/variable index described in spec §3/4.1.
// It is purely a data structure: it holds no search policy. Exactly one
// Graph instance is shared by the simplify and cdcl packages; only the
// currently executing phase mutates it (spec §5).
type Graph struct {
	clauses      map[ClauseID]*Clause
	variables    map[VariableID]*Variable
	nextClauseID ClauseID

	unassignedVariables map[VariableID]struct{}
	unitClauseSeeds     []ClauseID
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		clauses:             make(map[ClauseID]*Clause),
		variables:           make(map[VariableID]*Variable),
		unassignedVariables: make(map[VariableID]struct{}),
	}
}

// HasClause reports whether id currently names a live clause.
func (g *Graph) HasClause(id ClauseID) bool {
	_, ok := g.clauses[id]
	return ok
}

// HasVariable reports whether id names a variable known to the Graph.
func (g *Graph) HasVariable(id VariableID) bool {
	_, ok := g.variables[id]
	return ok
}

// Clause returns the clause named by id, if it still exists.
func (g *Graph) Clause(id ClauseID) (*Clause, bool) {
	c, ok := g.clauses[id]
	return c, ok
}

// Variable returns the variable record named by id, if known.
func (g *Graph) Variable(id VariableID) (*Variable, bool) {
	v, ok := g.variables[id]
	return v, ok
}

// NumClauses returns the number of live clauses.
func (g *Graph) NumClauses() int {
	return len(g.clauses)
}

// NumVariables returns the number of known variables.
func (g *Graph) NumVariables() int {
	return len(g.variables)
}

// UnitClauseSeeds returns a snapshot of the initial unit clauses seen by
// AddClause, for the Simplifier to process first.
func (g *Graph) UnitClauseSeeds() []ClauseID {
	out := make([]ClauseID, len(g.unitClauseSeeds))
	copy(out, g.unitClauseSeeds)
	return out
}

// UnassignedVariables returns a snapshot of every variable ID currently
// unassigned (invariant I4).
func (g *Graph) UnassignedVariables() []VariableID {
	out := make([]VariableID, 0, len(g.unassignedVariables))
	for id := range g.unassignedVariables {
		out = append(out, id)
	}
	return out
}

// VariableIDs returns a snapshot of every variable ID the Graph knows
// about, assigned or not. Callers building a final model (spec §6's
// output line) need every variable, not just the currently-unassigned
// ones UnassignedVariables tracks.
func (g *Graph) VariableIDs() []VariableID {
	out := make([]VariableID, 0, len(g.variables))
	for id := range g.variables {
		out = append(out, id)
	}
	return out
}

// PositiveClauses returns a snapshot of the clause IDs in which v occurs
// positively. Per spec §5/§9, callers must snapshot before iterating and
// mutating, since propagation/removal mutate these sets in place.
func (g *Graph) PositiveClauses(v VariableID) []ClauseID {
	return snapshotSet(g.variables[v].Positive)
}

// NegativeClauses returns a snapshot of the clause IDs in which v occurs
// negated.
func (g *Graph) NegativeClauses(v VariableID) []ClauseID {
	return snapshotSet(g.variables[v].Negative)
}

func snapshotSet(m map[ClauseID]struct{}) []ClauseID {
	out := make([]ClauseID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	return out
}

func (g *Graph) variableOrCreate(id VariableID) *Variable {
	v, ok := g.variables[id]
	if !ok {
		v = newVariable(id)
		g.variables[id] = v
		g.unassignedVariables[id] = struct{}{}
	}
	return v
}

// AddClause registers a new clause built from the given signed-integer
// literals. Duplicate literals within the input are deduped since a clause
// is a set; if the resulting clause is a tautology (it would contain both
// v and -v), it is rejected: ok is false and id is NoClause (spec invariant
// I3). Variable records are created lazily for any literal not seen before.
//
// If the clause ends up with exactly one literal, its ID is recorded as a
// unit-clause seed for the Simplifier.
func (g *Graph) AddClause(literals []int) (id ClauseID, ok bool) {
	seen := make(map[VariableID]bool, len(literals))
	lits := make([]Literal, 0, len(literals))
	for _, raw := range literals {
		if raw == 0 {
			continue
		}
		lit := Literal(raw)
		v := lit.Var()
		if wasPositive, present := seen[v]; present {
			if wasPositive != lit.IsPositive() {
				return NoClause, false // tautology
			}
			continue // duplicate literal, already recorded
		}
		seen[v] = lit.IsPositive()
		lits = append(lits, lit)
	}

	g.nextClauseID++
	id = g.nextClauseID
	c := &Clause{ID: id, Literals: lits}
	g.clauses[id] = c

	for _, lit := range lits {
		v := g.variableOrCreate(lit.Var())
		v.occurrences(lit.IsPositive())[id] = struct{}{}
	}

	if len(lits) == 1 {
		g.unitClauseSeeds = append(g.unitClauseSeeds, id)
	}

	logrus.WithFields(logrus.Fields{"clause": id, "literals": lits}).Trace("graph: clause added")
	return id, true
}

// Assign sets v's assignment to value.
//
// If v is unassigned, it is assigned and removed from the unassigned set.
// If v is already assigned to value, this is a no-op. If v is assigned to
// the opposite value: when override is false, ErrConflict is returned (the
// caller should treat this as global UNSAT); when override is true, v is
// first unassigned and then assigned to value.
func (g *Graph) Assign(id VariableID, value bool, override bool) error {
	v, ok := g.variables[id]
	if !ok {
		return errors.Errorf("graph: assign: unknown variable %d", id)
	}
	if v.Assigned {
		if v.Value == value {
			return nil
		}
		if !override {
			return ErrConflict
		}
		if err := g.Unassign(id); err != nil {
			return err
		}
	}
	v.Assigned = true
	v.Value = value
	delete(g.unassignedVariables, id)
	logrus.WithFields(logrus.Fields{"variable": id, "value": value}).Trace("graph: variable assigned")
	return nil
}

// Unassign clears v's assignment and reinserts it into the unassigned set.
// Every clause whose cached status was pinned by v (ByVariable == v) has
// its cache invalidated back to Unassigned, per spec §9's caching note.
// It is an error to unassign a variable that isn't currently assigned.
func (g *Graph) Unassign(id VariableID) error {
	v, ok := g.variables[id]
	if !ok {
		return errors.Errorf("graph: unassign: unknown variable %d", id)
	}
	if !v.Assigned {
		return errors.Errorf("graph: unassign: variable %d is not assigned", id)
	}
	v.Assigned = false
	g.unassignedVariables[id] = struct{}{}

	for cid := range v.Positive {
		if c := g.clauses[cid]; c != nil && c.ByVariable == id {
			c.invalidate()
		}
	}
	for cid := range v.Negative {
		if c := g.clauses[cid]; c != nil && c.ByVariable == id {
			c.invalidate()
		}
	}
	logrus.WithField("variable", id).Trace("graph: variable unassigned")
	return nil
}

// RemoveClause deletes id from the Graph: it is removed from both sides of
// the bipartite index and the clauses map. Per spec §3's lifecycle rule,
// only the Simplifier is expected to call this; CDCL never deletes clauses.
func (g *Graph) RemoveClause(id ClauseID) {
	c, ok := g.clauses[id]
	if !ok {
		return
	}
	for _, lit := range c.Literals {
		if v, ok := g.variables[lit.Var()]; ok {
			delete(v.occurrences(lit.IsPositive()), id)
		}
	}
	delete(g.clauses, id)
	logrus.WithField("clause", id).Trace("graph: clause removed")
}

// RemoveLiteral removes lit from clause id's literal list and from the
// corresponding side of lit's variable's bipartite index. It is a no-op if
// the clause or the literal no longer exists.
func (g *Graph) RemoveLiteral(id ClauseID, lit Literal) {
	c, ok := g.clauses[id]
	if !ok {
		return
	}
	if !c.removeLiteral(lit) {
		return
	}
	if v, ok := g.variables[lit.Var()]; ok {
		delete(v.occurrences(lit.IsPositive()), id)
	}
}

// SetClauseStatus caches id's status, naming by as the variable responsible.
// No-op if the clause no longer exists.
func (g *Graph) SetClauseStatus(id ClauseID, status ClauseStatus, by VariableID) {
	c, ok := g.clauses[id]
	if !ok {
		return
	}
	c.Status = status
	c.ByVariable = by
}

// ConsistencyCheck verifies invariants I1-I4 across the whole Graph. It is
// intended for debug builds and tests, not the search hot path.
func (g *Graph) ConsistencyCheck() error {
	for cid, c := range g.clauses {
		if cid != c.ID {
			return errors.Errorf("graph: clause map key %d does not match clause.ID %d", cid, c.ID)
		}
		seen := make(map[VariableID]bool)
		for _, lit := range c.Literals {
			vid := lit.Var()
			if pos, dup := seen[vid]; dup {
				if pos != lit.IsPositive() {
					return errors.Errorf("graph: clause %d is a tautology (I3 violated)", cid)
				}
				return errors.Errorf("graph: clause %d has duplicate literal %d", cid, lit)
			}
			seen[vid] = lit.IsPositive()
			v, ok := g.variables[vid]
			if !ok {
				return errors.Errorf("graph: clause %d references unknown variable %d", cid, vid)
			}
			side := v.occurrences(lit.IsPositive())
			if _, ok := side[cid]; !ok {
				return errors.Errorf("graph: I1 violated: clause %d has literal %d but variable %d's side set doesn't list it", cid, lit, vid)
			}
		}
		if c.Status == StatusSatisfied {
			bv, ok := g.variables[c.ByVariable]
			if !ok || !bv.Assigned {
				return errors.Errorf("graph: I2 violated: clause %d cached Satisfied but ByVariable %d is not assigned", cid, c.ByVariable)
			}
			satisfying := NegLiteral(bv.ID)
			if bv.Value {
				satisfying = PosLiteral(bv.ID)
			}
			if !containsLiteral(c.Literals, satisfying) {
				return errors.Errorf("graph: I2 violated: clause %d cached Satisfied by variable %d, whose value satisfies none of its literals", cid, bv.ID)
			}
		}
	}
	for vid, v := range g.variables {
		if vid != v.ID {
			return errors.Errorf("graph: variable map key %d does not match variable.ID %d", vid, v.ID)
		}
		for cid := range v.Positive {
			c, ok := g.clauses[cid]
			if !ok {
				return errors.Errorf("graph: I1 violated: variable %d lists clause %d on its positive side but it doesn't exist", vid, cid)
			}
			if !containsLiteral(c.Literals, PosLiteral(vid)) {
				return errors.Errorf("graph: I1 violated: variable %d positive side lists clause %d which has no +%d literal", vid, cid, vid)
			}
		}
		for cid := range v.Negative {
			c, ok := g.clauses[cid]
			if !ok {
				return errors.Errorf("graph: I1 violated: variable %d lists clause %d on its negative side but it doesn't exist", vid, cid)
			}
			if !containsLiteral(c.Literals, NegLiteral(vid)) {
				return errors.Errorf("graph: I1 violated: variable %d negative side lists clause %d which has no -%d literal", vid, cid, vid)
			}
		}
		_, unassignedTracked := g.unassignedVariables[vid]
		if unassignedTracked == v.Assigned {
			return errors.Errorf("graph: I4 violated: variable %d assigned=%v but unassignedVariables tracking=%v", vid, v.Assigned, unassignedTracked)
		}
	}
	for vid := range g.unassignedVariables {
		if _, ok := g.variables[vid]; !ok {
			return errors.Errorf("graph: I4 violated: unassignedVariables contains unknown variable %d", vid)
		}
	}
	return nil
}

func containsLiteral(lits []Literal, lit Literal) bool {
	for _, l := range lits {
		if l == lit {
			return true
		}
	}
	return false
}
