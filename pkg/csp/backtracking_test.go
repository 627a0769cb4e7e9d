package csp

import "testing"

func allDifferentPair(view *View) bool {
	return view.Int(0) != view.Int(1)
}

func twoVarProblem(t *testing.T) *Problem {
	t.Helper()
	dx := NewIntervalDomainRange(1, 3)
	dy := NewIntervalDomainRange(1, 3)
	vars := []*Variable{
		NewVariable(0, "x", WrapIntervalDomain(dx)),
		NewVariable(1, "y", WrapIntervalDomain(dy)),
	}
	c := NewConstraint(0, []int{0, 1}, allDifferentPair, "x!=y")
	return NewProblem("two-var", vars, []*Constraint{c}, 2)
}

func TestBacktrackingFindsAllSolutions(t *testing.T) {
	p := twoVarProblem(t)
	b := NewBacktracking(p)

	var got []string
	for b.Running() {
		b.Run()
		if !b.Successful() {
			break
		}
		sol, err := b.GetSolution()
		if err != nil {
			t.Fatalf("GetSolution: %v", err)
		}
		got = append(got, sol.String())
	}

	if !b.InFinalState() {
		t.Fatalf("expected InFinalState after exhaustion")
	}
	if len(got) != 6 {
		t.Fatalf("got %d solutions, want 6: %v", len(got), got)
	}

	seen := make(map[string]bool)
	for _, s := range got {
		if seen[s] {
			t.Fatalf("duplicate solution %s", s)
		}
		seen[s] = true
	}
}

func TestBacktrackingOverconstrainedYieldsNoSolutions(t *testing.T) {
	dx := NewIntervalDomainSingleton(1)
	dy := NewIntervalDomainSingleton(1)
	vars := []*Variable{
		NewVariable(0, "x", WrapIntervalDomain(dx)),
		NewVariable(1, "y", WrapIntervalDomain(dy)),
	}
	c := NewConstraint(0, []int{0, 1}, allDifferentPair, "x!=y")
	p := NewProblem("unsat", vars, []*Constraint{c}, 2)

	b := NewBacktracking(p)
	b.Run()
	if b.Successful() {
		t.Fatalf("expected no solution")
	}
	if b.Running() {
		t.Fatalf("expected search to be exhausted immediately")
	}
	if !b.InFinalState() {
		t.Fatalf("expected InFinalState")
	}
}
