/*
Package verify independently checks a candidate model against the
original clause set, deliberately without going anywhere near graph.Graph
or the solver's own bookkeeping.

Its only job is to answer "does this assignment really satisfy every
clause", the way a grader would: by brute evaluation. This exists so that
a bug in the bipartite cache or in conflict-analysis resolution can be
caught by an oracle that shares none of their code.
*/
package verify
