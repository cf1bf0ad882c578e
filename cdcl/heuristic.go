package cdcl

import (
	"github.com/rhartert/yagh"

	"github.com/jwilms-sat/cdclsat/graph"
)

// heuristic orders decisions by the static score from spec §4.3.2:
// max(|positive clauses|, |negative clauses|), computed once before search
// starts and never recomputed, even as learned clauses change occurrence
// counts.
//
// The heap stores negated scores so that Pop yields the highest-scoring
// variable first (yagh.IntMap is a min-heap). A variable is never removed
// from the heap when it gets assigned: next simply discards stale pops
// for already-assigned variables and lets the caller re-Put the variable
// once it is unassigned again during backjumping.
type heuristic struct {
	heap   *yagh.IntMap[float64]
	scores map[graph.VariableID]float64
}

func newHeuristic(g *graph.Graph, vars []graph.VariableID) *heuristic {
	h := &heuristic{
		heap:   yagh.New[float64](len(vars)),
		scores: make(map[graph.VariableID]float64, len(vars)),
	}
	for _, id := range vars {
		v, _ := g.Variable(id)
		score := -float64(v.Score())
		h.scores[id] = score
		h.heap.Put(int(id), score)
	}
	return h
}

// next pops the highest-scoring variable that is still unassigned,
// discarding any stale entries for variables assigned since they were
// pushed. ok is false once no unassigned variable remains.
func (h *heuristic) next(g *graph.Graph) (graph.VariableID, bool) {
	for {
		elem, ok := h.heap.Pop()
		if !ok {
			return graph.NoVariable, false
		}
		id := graph.VariableID(elem.Elem)
		v, known := g.Variable(id)
		if !known || v.Assigned {
			continue
		}
		return id, true
	}
}

// restore re-enters id into the candidate pool after it has been
// unassigned by backjumping, at its original static score.
func (h *heuristic) restore(id graph.VariableID) {
	h.heap.Put(int(id), h.scores[id])
}
