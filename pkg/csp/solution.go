package csp

import (
	"fmt"
	"strings"
)

// Solution is a vector of length |Z| whose entries are either a value of
// the variable's value type or unassigned, plus a counter of assigned
// entries. It is owned by the current algorithm and cleared at Reset; a
// Clone may be handed out to callers who need a snapshot that survives the
// next Solve call.
type Solution struct {
	values   []any
	assigned []bool
	count    int
}

// NewSolution returns an all-unassigned solution of the given size.
func NewSolution(size int) *Solution {
	return &Solution{values: make([]any, size), assigned: make([]bool, size)}
}

// Size returns the number of variables the solution covers.
func (s *Solution) Size() int { return len(s.values) }

// IsComplete reports whether every entry is assigned.
func (s *Solution) IsComplete() bool { return s.count == len(s.values) }

// IsAssigned reports whether variable i currently has a value.
func (s *Solution) IsAssigned(i int) bool { return s.assigned[i] }

// Value returns the value assigned to variable i.
func (s *Solution) Value(i int) (any, error) {
	if !s.assigned[i] {
		return nil, &Unassigned{VariableIndex: i}
	}
	return s.values[i], nil
}

// Assign sets variable i's value.
func (s *Solution) Assign(i int, v any) {
	if !s.assigned[i] {
		s.count++
	}
	s.assigned[i] = true
	s.values[i] = v
}

// Unassign clears variable i's value.
func (s *Solution) Unassign(i int) {
	if s.assigned[i] {
		s.count--
	}
	s.assigned[i] = false
	s.values[i] = nil
}

// Reset clears every entry.
func (s *Solution) Reset() {
	for i := range s.values {
		s.values[i] = nil
		s.assigned[i] = false
	}
	s.count = 0
}

// Clone returns an independent copy, safe to retain past the next Solve
// call on whatever algorithm produced s.
func (s *Solution) Clone() *Solution {
	c := &Solution{
		values:   make([]any, len(s.values)),
		assigned: make([]bool, len(s.assigned)),
		count:    s.count,
	}
	copy(c.values, s.values)
	copy(c.assigned, s.assigned)
	return c
}

// String renders the solution as "{ v0 v1 ... }" with unassigned entries
// shown as "_".
func (s *Solution) String() string {
	parts := make([]string, len(s.values))
	for i := range s.values {
		if s.assigned[i] {
			parts[i] = fmt.Sprintf("%v", s.values[i])
		} else {
			parts[i] = "_"
		}
	}
	return "{ " + strings.Join(parts, " ") + " }"
}
