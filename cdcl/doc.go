/*
Package cdcl implements conflict-driven clause learning search over a
graph.Graph that the simplify package has already reduced to a fixpoint.

Solver.Solve runs the state machine from spec §4.3.5: searching (pick an
unassigned variable and decide it true), propagating (the consequences of
an assignment, depth-first), analyzing (turn a conflict into a learned
clause and an asserting literal by iterated resolution against the
trail), until every variable is assigned (SAT) or the analysis empties
its working clause (UNSAT).

Decisions are ordered by a static score computed once when the Solver is
built, realized with a github.com/rhartert/yagh min-heap storing negated
scores so that Pop always returns the highest-scoring still-unassigned
variable; see heuristic.go.

Go has no nonlocal exit, so propagation threads an explicit
(graph.ClauseID, bool) conflict result through every return, and conflict
analysis returns an explicit unsat flag, instead of the short-circuiting
control flow the original description uses.
*/
package cdcl
