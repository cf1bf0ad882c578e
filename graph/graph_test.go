package graph

import "testing"

func TestAddClauseRejectsTautology(t *testing.T) {
	g := New()
	if _, ok := g.AddClause([]int{1, -1, 2}); ok {
		t.Errorf("expected tautological clause to be rejected")
	}
	if g.NumClauses() != 0 {
		t.Errorf("expected no clause to be registered, got %d", g.NumClauses())
	}
}

func TestAddClauseDedupesLiterals(t *testing.T) {
	g := New()
	id, ok := g.AddClause([]int{1, 2, 1, 2})
	if !ok {
		t.Fatalf("expected clause to be accepted")
	}
	c, _ := g.Clause(id)
	if c.Len() != 2 {
		t.Errorf("expected 2 literals after dedup, got %d: %v", c.Len(), c.Literals)
	}
}

func TestAddClauseRecordsUnitSeed(t *testing.T) {
	g := New()
	id, ok := g.AddClause([]int{5})
	if !ok {
		t.Fatalf("expected unit clause to be accepted")
	}
	seeds := g.UnitClauseSeeds()
	if len(seeds) != 1 || seeds[0] != id {
		t.Errorf("expected unit seed list [%d], got %v", id, seeds)
	}
}

func TestBipartiteConsistency(t *testing.T) {
	g := New()
	id, _ := g.AddClause([]int{1, -2, 3})
	v1, _ := g.Variable(1)
	v2, _ := g.Variable(2)
	v3, _ := g.Variable(3)
	if _, ok := v1.Positive[id]; !ok {
		t.Errorf("expected variable 1 to list clause %d on its positive side", id)
	}
	if _, ok := v2.Negative[id]; !ok {
		t.Errorf("expected variable 2 to list clause %d on its negative side", id)
	}
	if _, ok := v3.Positive[id]; !ok {
		t.Errorf("expected variable 3 to list clause %d on its positive side", id)
	}
	if err := g.ConsistencyCheck(); err != nil {
		t.Errorf("unexpected consistency violation: %v", err)
	}
}

func TestAssignNoopOnSameValue(t *testing.T) {
	g := New()
	g.AddClause([]int{1, 2})
	if err := g.Assign(1, true, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.Assign(1, true, false); err != nil {
		t.Errorf("expected no-op re-assignment to the same value, got error: %v", err)
	}
}

func TestAssignConflictWithoutOverride(t *testing.T) {
	g := New()
	g.AddClause([]int{1, 2})
	g.Assign(1, true, false)
	if err := g.Assign(1, false, false); err != ErrConflict {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestAssignConflictWithOverride(t *testing.T) {
	g := New()
	g.AddClause([]int{1, 2})
	g.Assign(1, true, false)
	if err := g.Assign(1, false, true); err != nil {
		t.Errorf("expected override assignment to succeed, got %v", err)
	}
	v1, _ := g.Variable(1)
	if v1.Value != false {
		t.Errorf("expected variable to now be false")
	}
}

func TestUnassignReinsertsAndInvalidatesCache(t *testing.T) {
	g := New()
	id, _ := g.AddClause([]int{1, 2})
	g.Assign(1, true, false)
	g.SetClauseStatus(id, StatusSatisfied, 1)

	if err := g.Unassign(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unassigned := g.UnassignedVariables()
	found := false
	for _, v := range unassigned {
		if v == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected variable 1 back in the unassigned set")
	}
	c, _ := g.Clause(id)
	if c.Status != StatusUnassigned {
		t.Errorf("expected clause status invalidated back to Unassigned, got %v", c.Status)
	}
}

func TestRemoveClauseClearsBothSides(t *testing.T) {
	g := New()
	id, _ := g.AddClause([]int{1, -2})
	g.RemoveClause(id)
	if g.HasClause(id) {
		t.Errorf("expected clause to be gone")
	}
	v1, _ := g.Variable(1)
	v2, _ := g.Variable(2)
	if _, ok := v1.Positive[id]; ok {
		t.Errorf("expected variable 1's positive side to no longer list %d", id)
	}
	if _, ok := v2.Negative[id]; ok {
		t.Errorf("expected variable 2's negative side to no longer list %d", id)
	}
}

func TestRemoveLiteral(t *testing.T) {
	g := New()
	id, _ := g.AddClause([]int{1, 2, 3})
	g.RemoveLiteral(id, 2)
	c, _ := g.Clause(id)
	if c.Len() != 2 {
		t.Errorf("expected 2 literals remaining, got %d", c.Len())
	}
	v2, _ := g.Variable(2)
	if _, ok := v2.Positive[id]; ok {
		t.Errorf("expected variable 2 to no longer reference clause %d", id)
	}
}

func TestVariableScore(t *testing.T) {
	g := New()
	g.AddClause([]int{1, 2})
	g.AddClause([]int{1, 3})
	g.AddClause([]int{-1, 4})
	v1, _ := g.Variable(1)
	if got := v1.Score(); got != 2 {
		t.Errorf("expected score 2 (max(2 positive, 1 negative)), got %d", got)
	}
}

func TestVariableIsPure(t *testing.T) {
	g := New()
	g.AddClause([]int{1, 2})
	g.AddClause([]int{1, 3})
	g.AddClause([]int{-2, 4})
	v1, _ := g.Variable(1)
	value, ok := v1.IsPure()
	if !ok || value != true {
		t.Errorf("expected variable 1 to be pure positive, got value=%v ok=%v", value, ok)
	}
	v2, _ := g.Variable(2)
	if _, ok := v2.IsPure(); ok {
		t.Errorf("expected variable 2 (appears both positively and negatively) to not register pure")
	}
}
