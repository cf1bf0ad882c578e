/*
Package graph implements the bipartite clause/variable index shared by the
simplify and cdcl packages.

A Graph holds clauses and variables keyed by stable integer identifiers
rather than addresses: both the simplify and cdcl packages mutate a
variable's clause lists while another part of the algorithm is iterating
over them, so any address-based handle could dangle. Looking clauses and
variables up by ID costs an extra map indirection but never leaves a
walked slice pointing at freed memory.

Building a graph:

	g := graph.New()
	id, ok := g.AddClause([]int{1, 2, -3})

AddClause rejects tautological clauses (a clause containing both v and -v)
and silently dedupes repeated literals within the same clause, per the "no
tautology, no duplicate literal" invariant. Variables are created lazily
the first time they're referenced by a clause.

Assigning and unassigning variables keeps the unassigned-variable set
consistent; Unassign also resets every clause status cached on behalf of
that variable. Assign does not touch clause caches: callers record
satisfied or unsatisfied clauses with SetClauseStatus.

	g.Assign(v, true, false)
	g.Unassign(v)

ConsistencyCheck walks the whole graph and verifies the I1-I4 invariants
documented on Graph; it's intended for debug builds and tests, not the hot
path.
*/
package graph
