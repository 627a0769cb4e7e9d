package csp

import (
	"errors"
	"testing"
)

func TestAchieveNodeConsistencyPrunesUnaryViolations(t *testing.T) {
	d := NewIntervalDomainRange(1, 5)
	v := NewVariable(0, "x", WrapIntervalDomain(d))
	c := NewConstraint(0, []int{0}, func(view *View) bool { return view.Int(0) > 2 }, "x>2")
	p := NewProblem("node", []*Variable{v}, []*Constraint{c}, 1)

	if err := AchieveNodeConsistency(p); err != nil {
		t.Fatalf("AchieveNodeConsistency: %v", err)
	}
	if got := d.String(); got != "[3..5]" {
		t.Fatalf("got %s, want [3..5]", got)
	}
}

func TestAchieveNodeConsistencyDetectsOverconstrained(t *testing.T) {
	d := NewIntervalDomainSingleton(1)
	v := NewVariable(0, "x", WrapIntervalDomain(d))
	c := NewConstraint(0, []int{0}, func(view *View) bool { return view.Int(0) != 1 }, "x!=1")
	p := NewProblem("overconstrained", []*Variable{v}, []*Constraint{c}, 1)

	err := AchieveNodeConsistency(p)
	var oc *Overconstrained
	if !errors.As(err, &oc) {
		t.Fatalf("expected *Overconstrained, got %v", err)
	}
	if d.Size() != 1 {
		t.Fatalf("domain must be left unchanged on failure, got %s", d)
	}
}

func TestAchieveArcConsistencyPrunesUnsupportedValues(t *testing.T) {
	dx := NewIntervalDomainRange(1, 3)
	dy := NewIntervalDomainRange(1, 3)
	vx := NewVariable(0, "x", WrapIntervalDomain(dx))
	vy := NewVariable(1, "y", WrapIntervalDomain(dy))
	c := NewConstraint(0, []int{0, 1}, lessThanPair, "x<y")
	p := NewProblem("arc", []*Variable{vx, vy}, []*Constraint{c}, 2)

	if err := AchieveArcConsistency(p); err != nil {
		t.Fatalf("AchieveArcConsistency: %v", err)
	}
	if got := dx.String(); got != "[1..2]" {
		t.Fatalf("x domain = %s, want [1..2]", got)
	}
	if got := dy.String(); got != "[2..3]" {
		t.Fatalf("y domain = %s, want [2..3]", got)
	}
}

func TestAchieveNodeConsistencyDetectsSharedDomain(t *testing.T) {
	d := NewIntervalDomainRange(1, 3)
	shared := WrapIntervalDomain(d)
	vx := NewVariable(0, "x", shared)
	vy := NewVariable(1, "y", shared)
	p := NewProblem("shared", []*Variable{vx, vy}, nil, 2)

	err := AchieveNodeConsistency(p)
	var sd *SharedDomain
	if !errors.As(err, &sd) {
		t.Fatalf("expected *SharedDomain, got %v", err)
	}
}
