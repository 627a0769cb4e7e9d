package csp

import "testing"

func TestConstraintIsViolatedInactiveWhenUnassigned(t *testing.T) {
	c := NewConstraint(0, []int{0, 1}, lessThanPair, "x<y")
	sol := NewSolution(2)
	sol.Assign(0, 1)
	if c.IsViolated(sol) {
		t.Fatalf("a constraint with an unassigned tuple member must be inactive, not violated")
	}
}

func TestConstraintIsViolatedEvaluatesPredicate(t *testing.T) {
	c := NewConstraint(0, []int{0, 1}, lessThanPair, "x<y")
	sol := NewSolution(2)
	sol.Assign(0, 1)
	sol.Assign(1, 2)
	if c.IsViolated(sol) {
		t.Fatalf("1<2 should satisfy x<y")
	}
	sol.Assign(1, 0)
	if !c.IsViolated(sol) {
		t.Fatalf("1<0 should violate x<y")
	}
}

func TestConstraintDegreeHelpers(t *testing.T) {
	unary := NewConstraint(0, []int{0}, func(v *View) bool { return true }, "u")
	binary := NewConstraint(1, []int{0, 1}, func(v *View) bool { return true }, "b")
	if !unary.IsUnary() || unary.IsBinary() {
		t.Fatalf("expected unary constraint to report IsUnary, not IsBinary")
	}
	if !binary.IsBinary() || binary.IsUnary() {
		t.Fatalf("expected binary constraint to report IsBinary, not IsUnary")
	}
}

func TestConstraintStringUsesNameThenFallback(t *testing.T) {
	named := NewConstraint(0, []int{0, 1}, lessThanPair, "x<y")
	if got := named.String(); got != "x<y(v0, v1)" {
		t.Fatalf("got %s, want x<y(v0, v1)", got)
	}
	anonymous := NewConstraint(7, []int{2}, func(v *View) bool { return true }, "")
	if got := anonymous.String(); got != "c7(v2)" {
		t.Fatalf("got %s, want c7(v2)", got)
	}
}

func TestViewIntProjectsByTuplePosition(t *testing.T) {
	sol := NewSolution(3)
	sol.Assign(0, 10)
	sol.Assign(2, 20)
	v := &View{sol: sol, tuple: []int{2, 0}}
	if v.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.Len())
	}
	if v.Int(0) != 20 {
		t.Fatalf("Int(0) = %d, want 20 (tuple[0]=2)", v.Int(0))
	}
	if v.Int(1) != 10 {
		t.Fatalf("Int(1) = %d, want 10 (tuple[1]=0)", v.Int(1))
	}
}

func TestConstraintNewCopiesTuple(t *testing.T) {
	tuple := []int{0, 1}
	c := NewConstraint(0, tuple, lessThanPair, "x<y")
	tuple[0] = 99
	if c.Tuple[0] != 0 {
		t.Fatalf("NewConstraint must copy its tuple, not alias the caller's slice")
	}
}
