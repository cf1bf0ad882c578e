package cdcl

import "github.com/jwilms-sat/cdclsat/graph"

// A TrailStep records one assignment made during search, in the order it
// happened (spec §4.3.1, invariant T1).
type TrailStep struct {
	Var graph.VariableID
	// Reason is the clause whose unit propagation forced this assignment,
	// or graph.NoClause if this step was a decision (a guess).
	Reason graph.ClauseID
}

// IsDecision reports whether this step began a new decision level
// (invariant T2).
func (s TrailStep) IsDecision() bool {
	return s.Reason == graph.NoClause
}

// Trail is the stack of assignments made so far, topmost last.
type Trail struct {
	steps []TrailStep
}

// Push records a new assignment at the top of the trail.
func (t *Trail) Push(step TrailStep) {
	t.steps = append(t.steps, step)
}

// Pop removes and returns the topmost assignment. It panics if the trail is
// empty, since the caller is expected to have checked Len first; this
// mirrors invariant T1 (unassign pops from the top only, never an empty one).
func (t *Trail) Pop() TrailStep {
	n := len(t.steps)
	step := t.steps[n-1]
	t.steps = t.steps[:n-1]
	return step
}

// Top returns, without removing it, the topmost assignment.
func (t *Trail) Top() TrailStep {
	return t.steps[len(t.steps)-1]
}

// Len returns the number of assignments currently on the trail.
func (t *Trail) Len() int {
	return len(t.steps)
}
