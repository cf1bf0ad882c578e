/*
Package simplify implements the one-shot preprocessing pass that runs
before the CDCL search begins.

Run drives the shared Graph to a fixpoint under two rewrite rules:

Rule U (unit propagation): a clause with exactly one literal forces its
variable to the value that satisfies it; every clause newly satisfied by
that assignment is removed, and the opposite-polarity literal is struck out
of every surviving clause it appears in, possibly creating new unit
clauses or the empty clause.

Rule P (pure literal elimination): a variable occurring with only one
polarity among surviving clauses is assigned the value that satisfies all
of its occurrences.

Run processes the initial unit-clause seed list first (the clauses
AddClause recorded as units while the Graph was being built), then walks
every variable once for purity. Cascading removals during U can create
further units and further pure variables; both rules are implemented by
mutual recursion (visitClause, assignVariable, removeClause,
visitVariable) so that newly created units and newly pure variables are
picked up without a second full pass, the way the original GraphSolver's
recursive visitClause/visitVariable does.

Pure-literal elimination is sound only here: once CDCL starts learning
clauses with new polarities, a previously-pure variable can stop being
pure, so Run must never be invoked again once search has begun.
*/
package simplify
