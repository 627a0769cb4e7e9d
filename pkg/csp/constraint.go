package csp

import (
	"fmt"
	"strings"
)

// Predicate evaluates a constraint's tuple of currently-assigned values. It
// receives a View projecting the tuple by formal (position-within-tuple)
// index, independent of the variables' absolute indices in the Problem —
// which is what makes the same predicate reusable across many tuples (see
// ConstrainEach and friends on Builder).
type Predicate func(view *View) bool

// View is a thin, short-lived projection over the current assignment and a
// single constraint's variable-index tuple. Its lifetime is exactly that of
// one predicate call.
type View struct {
	sol   *Solution
	tuple []int
}

// Len returns the constraint's degree (tuple length).
func (v *View) Len() int { return len(v.tuple) }

// Value returns the value currently assigned to the tuple's i-th variable.
// It is the caller's responsibility to only call this when the constraint
// is active (Constraint.IsViolated already checked every tuple member is
// assigned before invoking the predicate).
func (v *View) Value(i int) any { return v.sol.values[v.tuple[i]] }

// Int is a convenience for the common case of an int-valued variable.
func (v *View) Int(i int) int { return v.sol.values[v.tuple[i]].(int) }

// Constraint is an identity, an ordered tuple of variable indices, and a
// predicate over currently-assigned values. Degree is the tuple's length;
// degrees 1 and 2 (unary, binary) receive special treatment by consistency
// pre-processing (see AchieveNodeConsistency, AchieveArcConsistency).
// Identity uses ID only.
type Constraint struct {
	ID    int
	Tuple []int
	Pred  Predicate
	Name  string
}

// NewConstraint returns a constraint with the given identity, tuple, and
// predicate.
func NewConstraint(id int, tuple []int, pred Predicate, name string) *Constraint {
	t := make([]int, len(tuple))
	copy(t, tuple)
	return &Constraint{ID: id, Tuple: t, Pred: pred, Name: name}
}

// Degree returns the number of variables in the constraint's tuple.
func (c *Constraint) Degree() int { return len(c.Tuple) }

// IsUnary reports whether the constraint has degree 1.
func (c *Constraint) IsUnary() bool { return c.Degree() == 1 }

// IsBinary reports whether the constraint has degree 2.
func (c *Constraint) IsBinary() bool { return c.Degree() == 2 }

// IsViolated reports whether c is violated by sol. A constraint any of
// whose tuple variables are unassigned is inactive and reports not
// violated.
func (c *Constraint) IsViolated(sol *Solution) bool {
	for _, idx := range c.Tuple {
		if !sol.assigned[idx] {
			return false
		}
	}
	return !c.Pred(&View{sol: sol, tuple: c.Tuple})
}

func (c *Constraint) String() string {
	names := make([]string, len(c.Tuple))
	for i, idx := range c.Tuple {
		names[i] = fmt.Sprintf("v%d", idx)
	}
	label := c.Name
	if label == "" {
		label = fmt.Sprintf("c%d", c.ID)
	}
	return fmt.Sprintf("%s(%s)", label, strings.Join(names, ", "))
}
