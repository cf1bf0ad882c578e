package verify

import "testing"

func TestSatisfiesAcceptsGoodModel(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, 3}, {-2, -3}}
	model := map[int]bool{1: true, 2: false, 3: true}
	if !Satisfies(clauses, model) {
		t.Errorf("expected model %v to satisfy %v", model, clauses)
	}
}

func TestSatisfiesRejectsBadModel(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, -2}}
	model := map[int]bool{1: true, 2: true}
	if Satisfies(clauses, model) {
		t.Errorf("expected model %v to violate %v", model, clauses)
	}
}

func TestSatisfiesTreatsMissingVariableAsFalse(t *testing.T) {
	clauses := [][]int{{-5}}
	if !Satisfies(clauses, map[int]bool{}) {
		t.Errorf("expected an absent variable to default to false")
	}
}

func TestSatisfiesEmptyClauseSetIsVacuouslyTrue(t *testing.T) {
	if !Satisfies(nil, map[int]bool{}) {
		t.Errorf("expected no clauses to be vacuously satisfied")
	}
}
