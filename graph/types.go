package graph

// Describes basic types and constants used by the Graph.

// ClauseID identifies a clause. IDs are monotonic and never reused, even
// after a clause is removed (crucial because clauses are only appended).
// The zero value means "no clause".
type ClauseID uint32

// VariableID identifies a variable by a positive integer. The zero value
// means "no variable".
type VariableID uint32

// Literal is a signed nonzero integer whose absolute value is a VariableID;
// a negative sign denotes negation. The zero value means "no literal" and
// is also the DIMACS clause terminator.
type Literal int32

// NoClause is the sentinel ClauseID meaning "no clause" (e.g a trail step
// caused by a decision rather than a propagation).
const NoClause ClauseID = 0

// NoVariable is the sentinel VariableID meaning "no variable".
const NoVariable VariableID = 0

// NoLiteral is the sentinel Literal meaning "no literal".
const NoLiteral Literal = 0

// Var returns the variable this literal refers to.
func (l Literal) Var() VariableID {
	if l < 0 {
		return VariableID(-l)
	}
	return VariableID(l)
}

// IsPositive is true iff l is the positive occurrence of its variable.
func (l Literal) IsPositive() bool {
	return l > 0
}

// Negation returns -l.
func (l Literal) Negation() Literal {
	return -l
}

// PosLiteral returns the positive literal for v.
func PosLiteral(v VariableID) Literal {
	return Literal(v)
}

// NegLiteral returns the negative literal for v.
func NegLiteral(v VariableID) Literal {
	return -Literal(v)
}

// ClauseStatus is the cached truth status of a clause.
type ClauseStatus byte

const (
	// StatusUnassigned means the clause's status hasn't been decided yet:
	// it may still contain unassigned literals and no literal is known to
	// satisfy it.
	StatusUnassigned ClauseStatus = iota
	// StatusSatisfied means at least one literal is currently assigned true.
	StatusSatisfied
	// StatusUnsatisfied means every literal is currently assigned false.
	StatusUnsatisfied
)

func (s ClauseStatus) String() string {
	switch s {
	case StatusUnassigned:
		return "UNASSIGNED"
	case StatusSatisfied:
		return "SATISFIED"
	case StatusUnsatisfied:
		return "UNSATISFIED"
	default:
		return "INVALID"
	}
}
