package csp

import "fmt"

// Problem is the fixed collection (name, variables, constraints) together
// with a per-variable adjacency list of incident constraints (the "arcs").
// Arc lists are derived at construction and updated in place when minimal
// -width reordering (ReorderByMinimalWidth) swaps two variables.
//
// OriginalVariableCount is the number of non-auxiliary variables; it equals
// len(Variables) for a problem built without the integer-expression builder.
// Original variables always precede auxiliaries in Variables.
type Problem struct {
	Name                  string
	Variables             []*Variable
	Constraints           []*Constraint
	OriginalVariableCount int

	arcs [][]*Constraint // arcs[v] = constraints incident to variable v
}

// NewProblem builds the arc lists for (variables, constraints) and returns
// the resulting Problem. originalCount is the number of leading
// non-auxiliary variables; pass len(variables) when there are none.
func NewProblem(name string, variables []*Variable, constraints []*Constraint, originalCount int) *Problem {
	p := &Problem{
		Name:                  name,
		Variables:             variables,
		Constraints:           constraints,
		OriginalVariableCount: originalCount,
	}
	p.rebuildArcs()
	return p
}

func (p *Problem) rebuildArcs() {
	p.arcs = make([][]*Constraint, len(p.Variables))
	for _, c := range p.Constraints {
		for _, idx := range c.Tuple {
			p.arcs[idx] = append(p.arcs[idx], c)
		}
	}
}

// Arcs returns the constraints incident to variable v.
func (p *Problem) Arcs(v int) []*Constraint { return p.arcs[v] }

// Degree returns the number of constraints incident to variable v.
func (p *Problem) Degree(v int) int { return len(p.arcs[v]) }

// NewSolution returns an all-unassigned solution sized for this problem.
func (p *Problem) NewSolution() *Solution { return NewSolution(len(p.Variables)) }

// IsSatisfied reports whether every constraint in the problem is satisfied
// by sol — i.e. none are violated. Inactive (partially-unassigned)
// constraints never count as violated, so this is only meaningful when sol
// is complete.
func (p *Problem) IsSatisfied(sol *Solution) bool {
	for _, c := range p.Constraints {
		if c.IsViolated(sol) {
			return false
		}
	}
	return true
}

// ConflictsOf returns the number of constraints incident to v that are
// violated by sol, used by min-conflicts local search.
func (p *Problem) ConflictsOf(v int, sol *Solution) int {
	n := 0
	for _, c := range p.arcs[v] {
		if c.IsViolated(sol) {
			n++
		}
	}
	return n
}

// auxiliariesOf returns the auxiliary variables whose relation references
// variable v directly.
func (p *Problem) auxiliariesOf(v int) []*Variable {
	var out []*Variable
	for _, av := range p.Variables[p.OriginalVariableCount:] {
		if av.relation.references(v) {
			out = append(out, av)
		}
	}
	return out
}

// cascadeAssign assigns variable v to val in sol and checks v's own
// incident constraints, rejecting the assignment before any auxiliary is
// computed if one of them is violated. It then recursively
// visits every auxiliary variable whose relation involves v: once all of an
// auxiliary's inputs are assigned (which may itself be the result of an
// earlier step of this same cascade, for an auxiliary chained off another
// auxiliary), its value is computed and assigned, and its incident
// constraints are checked. If any such constraint is violated the cascade
// rejects the assignment (caller must then Unassign/undo).
//
// It returns false if v's own assignment or a cascaded auxiliary
// assignment produced a conflict.
func (p *Problem) cascadeAssign(sol *Solution, v int, val any) bool {
	sol.Assign(v, val)
	for _, c := range p.Arcs(v) {
		if c.IsViolated(sol) {
			return false
		}
	}
	return p.cascadeAuxiliariesOf(sol, v)
}

// cascadeAuxiliariesOf assigns every auxiliary directly or transitively
// dependent on the newly-assigned variable v whose inputs are now all ready,
// recursing through any auxiliary it assigns in turn.
func (p *Problem) cascadeAuxiliariesOf(sol *Solution, v int) bool {
	for _, aux := range p.auxiliariesOf(v) {
		if sol.IsAssigned(aux.Index) {
			continue
		}
		if !aux.relation.inputsAssigned(sol) {
			continue
		}
		sol.Assign(aux.Index, aux.relation.eval(sol))
		for _, c := range p.Arcs(aux.Index) {
			if c.IsViolated(sol) {
				return false
			}
		}
		if !p.cascadeAuxiliariesOf(sol, aux.Index) {
			return false
		}
	}
	return true
}

// cascadeUnassign unassigns variable v and every auxiliary that directly or
// transitively depends on it.
func (p *Problem) cascadeUnassign(sol *Solution, v int) {
	sol.Unassign(v)
	for _, aux := range p.auxiliariesOf(v) {
		if sol.IsAssigned(aux.Index) {
			p.cascadeUnassign(sol, aux.Index)
		}
	}
}

func (p *Problem) String() string {
	return fmt.Sprintf("Problem(%s: %d variables, %d constraints)", p.Name, len(p.Variables), len(p.Constraints))
}
