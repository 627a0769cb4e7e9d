package csp

import (
	"fmt"
	"testing"
)

func fourQueensProblem() *Problem {
	n := 4
	vars := make([]*Variable, n)
	for i := 0; i < n; i++ {
		vars[i] = NewVariable(i, fmt.Sprintf("q%d", i), WrapIntervalDomain(NewIntervalDomainRange(1, n)))
	}

	var constraints []*Constraint
	id := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			gap := j - i
			constraints = append(constraints, NewConstraint(id, []int{i, j}, func(view *View) bool {
				a, b := view.Int(0), view.Int(1)
				if a == b {
					return false
				}
				diff := a - b
				if diff < 0 {
					diff = -diff
				}
				return diff != gap
			}, fmt.Sprintf("attack(%d,%d)", i, j)))
			id++
		}
	}
	return NewProblem("4-queens", vars, constraints, n)
}

func TestForwardCheckingFourQueens(t *testing.T) {
	p := fourQueensProblem()
	fc := NewForwardChecking(p)

	var got []string
	for fc.Running() {
		fc.Run()
		if !fc.Successful() {
			break
		}
		sol, err := fc.GetSolution()
		if err != nil {
			t.Fatalf("GetSolution: %v", err)
		}
		got = append(got, sol.String())
	}

	if !fc.InFinalState() {
		t.Fatalf("expected InFinalState after exhaustion")
	}

	want := map[string]bool{
		"{ 2 4 1 3 }": true,
		"{ 3 1 4 2 }": true,
	}
	if len(got) != 2 {
		t.Fatalf("got %d solutions, want 2: %v", len(got), got)
	}
	for _, s := range got {
		if !want[s] {
			t.Fatalf("unexpected solution %s", s)
		}
	}
}

func TestForwardCheckingOverconstrained(t *testing.T) {
	vars := []*Variable{
		NewVariable(0, "x", WrapIntervalDomain(NewIntervalDomainSingleton(1))),
		NewVariable(1, "y", WrapIntervalDomain(NewIntervalDomainSingleton(1))),
	}
	c := NewConstraint(0, []int{0, 1}, allDifferentPair, "x!=y")
	p := NewProblem("unsat", vars, []*Constraint{c}, 2)

	fc := NewForwardChecking(p)
	fc.Run()
	if fc.Successful() {
		t.Fatalf("expected no solution")
	}
	if !fc.InFinalState() {
		t.Fatalf("expected InFinalState")
	}
}
