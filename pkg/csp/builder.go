package csp

import "fmt"

// Builder assembles a Problem incrementally: variables are declared with Of,
// constraints are attached with Constrain and its batch variants (or via an
// IntExpr chain rooted at ConstrainVar), and Build freezes the result.
//
// Every Of call must happen before the first ConstrainVar call on this
// Builder: auxiliary variables created by the integer-expression builder
// are appended after all declared (original) variables, and Variables must
// keep that layout (see Problem.OriginalVariableCount).
type Builder struct {
	name string

	variables        []*Variable
	constraints      []*Constraint
	nextConstraintID int

	auxBounds map[int][2]int
}

// NewBuilder returns an empty Builder for a problem named name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Of declares count new variables named "name#0".."name#(count-1)", each
// with its own clone of prototype (so no two variables ever share a domain
// instance; see SharedDomain). It returns their assigned indices.
func (b *Builder) Of(name string, count int, prototype *IntervalDomain) []int {
	indices := make([]int, count)
	for i := 0; i < count; i++ {
		idx := len(b.variables)
		dom := WrapIntervalDomain(prototype.Clone())
		b.variables = append(b.variables, NewVariable(idx, fmt.Sprintf("%s#%d", name, i), dom))
		indices[i] = idx
	}
	return indices
}

// OfDomains declares one new variable per entry of domains, named
// "name#0".."name#(n-1)", each owning the given domain instance directly
// (no cloning — the caller hands off ownership). It returns their assigned
// indices.
func (b *Builder) OfDomains(name string, domains ...Domain) []int {
	indices := make([]int, len(domains))
	for i, dom := range domains {
		idx := len(b.variables)
		b.variables = append(b.variables, NewVariable(idx, fmt.Sprintf("%s#%d", name, i), dom))
		indices[i] = idx
	}
	return indices
}

// OfVariables adopts already-constructed variables into the Builder,
// reassigning their Index to match their new position. It returns their
// assigned indices.
func (b *Builder) OfVariables(variables ...*Variable) []int {
	indices := make([]int, len(variables))
	for i, v := range variables {
		idx := len(b.variables)
		v.Index = idx
		b.variables = append(b.variables, v)
		indices[i] = idx
	}
	return indices
}

func (b *Builder) registerConstraint(tuple []int, pred Predicate, name string) *Constraint {
	c := NewConstraint(b.nextConstraintID, tuple, pred, name)
	b.nextConstraintID++
	b.constraints = append(b.constraints, c)
	return c
}

// Constrain attaches an arbitrary constraint over tuple.
func (b *Builder) Constrain(tuple []int, pred Predicate, name string) *Constraint {
	return b.registerConstraint(tuple, pred, name)
}

// ConstrainEach attaches a unary constraint to every variable in indices.
func (b *Builder) ConstrainEach(indices []int, pred Predicate, name string) []*Constraint {
	out := make([]*Constraint, len(indices))
	for i, v := range indices {
		out[i] = b.registerConstraint([]int{v}, pred, fmt.Sprintf("%s[%d]", name, i))
	}
	return out
}

// ConstrainEachInRange attaches a unary constraint to indices[lo:hi].
func (b *Builder) ConstrainEachInRange(indices []int, lo, hi int, pred Predicate, name string) []*Constraint {
	return b.ConstrainEach(indices[lo:hi], pred, name)
}

// ConstrainSequentially attaches a binary constraint to every adjacent pair
// (indices[i], indices[i+1]).
func (b *Builder) ConstrainSequentially(indices []int, pred Predicate, name string) []*Constraint {
	if len(indices) < 2 {
		return nil
	}
	out := make([]*Constraint, 0, len(indices)-1)
	for i := 0; i+1 < len(indices); i++ {
		out = append(out, b.registerConstraint([]int{indices[i], indices[i+1]}, pred, fmt.Sprintf("%s[%d,%d]", name, i, i+1)))
	}
	return out
}

// ConstrainSequentiallyInRange attaches a binary constraint to every
// adjacent pair within indices[lo:hi].
func (b *Builder) ConstrainSequentiallyInRange(indices []int, lo, hi int, pred Predicate, name string) []*Constraint {
	return b.ConstrainSequentially(indices[lo:hi], pred, name)
}

// ConstrainEachTwo attaches a binary constraint to every distinct pair
// (indices[i], indices[j]), i < j — the "all pairs" shape used by
// all-different-style global constraints.
func (b *Builder) ConstrainEachTwo(indices []int, pred Predicate, name string) []*Constraint {
	var out []*Constraint
	for i := 0; i < len(indices); i++ {
		for j := i + 1; j < len(indices); j++ {
			out = append(out, b.registerConstraint([]int{indices[i], indices[j]}, pred, fmt.Sprintf("%s[%d,%d]", name, i, j)))
		}
	}
	return out
}

// ConstrainEachTwoInRange attaches a binary constraint to every distinct
// pair within indices[lo:hi].
func (b *Builder) ConstrainEachTwoInRange(indices []int, lo, hi int, pred Predicate, name string) []*Constraint {
	return b.ConstrainEachTwo(indices[lo:hi], pred, name)
}

// Build freezes the declared variables and constraints into a Problem.
// originalCount is the number of leading non-auxiliary variables — pass the
// total returned by the Of calls made before any ConstrainVar chain; if no
// integer-expression auxiliaries were created, len(b.variables) is correct.
func (b *Builder) Build(originalCount int) *Problem {
	return NewProblem(b.name, b.variables, b.constraints, originalCount)
}

// OriginalCount returns the number of variables declared so far — correct
// to pass to Build as originalCount provided it is read before the first
// ConstrainVar call creates any auxiliary.
func (b *Builder) OriginalCount() int { return len(b.variables) }
