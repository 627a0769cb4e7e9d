package csp

import "math/rand"

// ConflictMinimizingMode selects how ConflictMinimizing behaves once it
// reaches a move that cannot strictly reduce the chosen variable's conflict
// count (a plateau).
type ConflictMinimizingMode int

const (
	// GlobalMinConflicts kicks: on a plateau it reassigns the variable to a
	// uniformly random value (ignoring conflict count) to escape local
	// optima, continuing the search until a zero-conflict assignment is
	// found or the step budget is exhausted.
	GlobalMinConflicts ConflictMinimizingMode = iota

	// LocalMinConflicts accepts: on a plateau it commits the best value
	// found (which may still leave conflicts) and reports success
	// immediately, treating the local optimum itself as the answer.
	LocalMinConflicts
)

// ConflictMinimizing is randomized local search (min-conflicts): it starts
// from a uniformly random complete assignment and repeatedly repairs the
// variable with the most conflicts by reassigning it to the value that
// minimizes its own conflict count, until every constraint is satisfied, a
// plateau is accepted (LocalMinConflicts), or the step budget —
// 2*|Z|*sum(|Di|) + 2*|C|, a generous multiple of the problem's size — is
// exhausted without finding a solution.
//
// Run does not move on to a different solution after a success: a further
// Run call starts from the assignment it last reported and, when that
// assignment still satisfies every constraint (or is again accepted as a
// plateau), reports it again.
type ConflictMinimizing struct {
	baseSearch

	n         int
	mode      ConflictMinimizingMode
	rng       *rand.Rand
	budget    int
	steps     int
	exhausted bool
}

// NewConflictMinimizing returns a ConflictMinimizing search over p, seeded
// deterministically from seed so runs are reproducible. If any original
// variable's domain is empty, no complete assignment can ever exist, so the
// returned search is already exhausted: the first Run call returns without
// success.
func NewConflictMinimizing(p *Problem, mode ConflictMinimizingMode, seed int64) *ConflictMinimizing {
	n := p.OriginalVariableCount
	sumDomains := 0
	emptyDomain := false
	for i := 0; i < n; i++ {
		size := p.Variables[i].Domain().Size()
		if size == 0 {
			emptyDomain = true
		}
		sumDomains += size
	}
	cm := &ConflictMinimizing{
		baseSearch: newBaseSearch(p),
		n:          n,
		mode:       mode,
		rng:        rand.New(rand.NewSource(seed)),
		budget:     2*n*sumDomains + 2*len(p.Constraints),
	}
	if emptyDomain {
		cm.running = false
		cm.exhausted = true
		return cm
	}
	cm.randomizeInitialAssignment()
	return cm
}

func (cm *ConflictMinimizing) randomizeInitialAssignment() {
	for v := 0; v < cm.n; v++ {
		dom := cm.problem.Variables[v].Domain()
		val, _ := dom.Get(cm.rng.Intn(dom.Size()))
		cm.problem.cascadeAssign(cm.sol, v, val)
	}
}

// InFinalState reports whether the step budget was exhausted without
// finding a solution (or, for LocalMinConflicts, without accepting a
// plateau), or whether the search was exhausted from the start because an
// original variable's domain is empty.
func (cm *ConflictMinimizing) InFinalState() bool { return cm.exhausted }

// Steps returns the number of repair moves performed so far.
func (cm *ConflictMinimizing) Steps() int { return cm.steps }

func (cm *ConflictMinimizing) Run() {
	cm.successful = false
	if !cm.running {
		return
	}
	if cm.n == 0 {
		cm.succeed()
		return
	}

	for ; cm.steps < cm.budget; cm.steps++ {
		if cm.problem.IsSatisfied(cm.sol) {
			cm.succeed()
			return
		}

		v := cm.mostConflictedVariable()
		before := cm.problem.ConflictsOf(v, cm.sol)
		bestVal, bestCount, haveBest := cm.bestValueFor(v)
		plateau := !haveBest || bestCount >= before

		if plateau {
			if cm.mode == LocalMinConflicts {
				if haveBest {
					cm.problem.cascadeAssign(cm.sol, v, bestVal)
				}
				cm.succeed()
				return
			}
			dom := cm.problem.Variables[v].Domain()
			bestVal, _ = dom.Get(cm.rng.Intn(dom.Size()))
		}
		cm.problem.cascadeAssign(cm.sol, v, bestVal)
	}

	cm.exhausted = true
	cm.running = false
}

// mostConflictedVariable returns the original variable incident to the most
// violated constraints, ties broken uniformly at random among the tied
// variables.
func (cm *ConflictMinimizing) mostConflictedVariable() int {
	best, bestCount := []int{0}, -1
	for v := 0; v < cm.n; v++ {
		c := cm.problem.ConflictsOf(v, cm.sol)
		switch {
		case c > bestCount:
			best, bestCount = []int{v}, c
		case c == bestCount:
			best = append(best, v)
		}
	}
	return best[cm.rng.Intn(len(best))]
}

// bestValueFor returns the value in v's domain that minimizes v's conflict
// count (ties broken by domain order), leaving sol unchanged.
func (cm *ConflictMinimizing) bestValueFor(v int) (any, int, bool) {
	dom := cm.problem.Variables[v].Domain()
	cur, _ := cm.sol.Value(v)

	var best any
	bestCount := 0
	haveBest := false

	for i := 0; i < dom.Size(); i++ {
		val, _ := dom.Get(i)
		cm.problem.cascadeAssign(cm.sol, v, val)
		count := cm.problem.ConflictsOf(v, cm.sol)
		cm.problem.cascadeUnassign(cm.sol, v)
		cm.problem.cascadeAssign(cm.sol, v, cur)

		if !haveBest || count < bestCount {
			best, bestCount, haveBest = val, count, true
		}
	}
	return best, bestCount, haveBest
}
