package cdcl

import (
	"context"
	"testing"

	"github.com/jwilms-sat/cdclsat/graph"
)

func buildGraph(t *testing.T, clauses [][]int) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, c := range clauses {
		if _, ok := g.AddClause(c); !ok {
			t.Fatalf("unexpected tautology in test clause %v", c)
		}
	}
	return g
}

func TestSolveTwoVariableUnsatCycle(t *testing.T) {
	// Every combination of 1,2 is excluded: UNSAT, with no unit clause and
	// no pure literal, so only CDCL search (not simplify) can resolve it.
	g := buildGraph(t, [][]int{
		{1, 2},
		{-1, -2},
		{1, -2},
		{-1, 2},
	})
	s := NewSolver(g)
	verdict, err := s.Solve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict != VerdictUnsat {
		t.Fatalf("expected UNSAT, got %v", verdict)
	}
	if s.Stats.Conflicts == 0 {
		t.Errorf("expected at least one conflict to have been recorded")
	}
}

func TestSolveThreeVariableSat(t *testing.T) {
	g := buildGraph(t, [][]int{
		{1, 2},
		{-1, 3},
		{-2, -3},
	})
	s := NewSolver(g)
	verdict, err := s.Solve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict != VerdictSat {
		t.Fatalf("expected SAT, got %v", verdict)
	}
	model := map[graph.VariableID]bool{}
	for _, id := range []graph.VariableID{1, 2, 3} {
		v, _ := g.Variable(id)
		if !v.Assigned {
			t.Fatalf("expected variable %d to be assigned in a SAT result", id)
		}
		model[id] = v.Value
	}
	checks := [][3]int{{1, 2, 0}, {-1, 3, 0}, {-2, -3, 0}}
	for _, clause := range checks {
		sat := false
		for _, lit := range clause[:2] {
			if lit == 0 {
				continue
			}
			v := graph.VariableID(lit)
			want := true
			if lit < 0 {
				v, want = graph.VariableID(-lit), false
			}
			if model[v] == want {
				sat = true
			}
		}
		if !sat {
			t.Errorf("model %v does not satisfy clause %v", model, clause)
		}
	}
}

func TestSolvePigeonhole3Into2IsUnsat(t *testing.T) {
	// 3 pigeons (1,2,3), 2 holes (A,B); x_ih = pigeon i in hole h.
	// x1A=1 x1B=2 x2A=3 x2B=4 x3A=5 x3B=6
	g := buildGraph(t, [][]int{
		{1, 2}, {3, 4}, {5, 6}, // every pigeon in some hole
		{-1, -3}, {-1, -5}, {-3, -5}, // at most one pigeon in hole A
		{-2, -4}, {-2, -6}, {-4, -6}, // at most one pigeon in hole B
	})
	s := NewSolver(g)
	verdict, err := s.Solve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict != VerdictUnsat {
		t.Fatalf("expected UNSAT (pigeonhole), got %v", verdict)
	}
}

func TestSolveRespectsCancelledContext(t *testing.T) {
	g := buildGraph(t, [][]int{{1, 2}, {-1, -2}})
	s := NewSolver(g)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Solve(ctx); err == nil {
		t.Errorf("expected an error from an already-cancelled context")
	}
}
