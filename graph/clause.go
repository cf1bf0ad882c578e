package graph

// A Clause is a set of literals together with a cached truth status.
//
// Status is Unassigned until some variable's assignment forces it to
// Satisfied or Unsatisfied; ByVariable then names the variable responsible,
// so that unassigning that variable can invalidate the cache again (see
// Graph.Unassign).
type Clause struct {
	ID         ClauseID
	Literals   []Literal
	Status     ClauseStatus
	ByVariable VariableID
}

// Len returns the number of literals currently in the clause.
func (c *Clause) Len() int {
	return len(c.Literals)
}

// markSatisfied caches that the clause is satisfied because of by.
func (c *Clause) markSatisfied(by VariableID) {
	c.Status = StatusSatisfied
	c.ByVariable = by
}

// markUnsatisfied caches that the clause is unsatisfied because of by.
func (c *Clause) markUnsatisfied(by VariableID) {
	c.Status = StatusUnsatisfied
	c.ByVariable = by
}

// invalidate resets the clause's cached status to Unassigned.
func (c *Clause) invalidate() {
	c.Status = StatusUnassigned
	c.ByVariable = NoVariable
}

// removeLiteral removes lit from the clause's literal list, if present.
// Reports whether the literal was found.
func (c *Clause) removeLiteral(lit Literal) bool {
	for i, l := range c.Literals {
		if l == lit {
			c.Literals[i] = c.Literals[len(c.Literals)-1]
			c.Literals = c.Literals[:len(c.Literals)-1]
			return true
		}
	}
	return false
}
