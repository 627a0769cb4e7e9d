package csp

// Heuristic scores a candidate value for a variable given the assignment
// made so far (the variables before it in declaration order); Greedy picks
// the highest-scoring conflict-free candidate at each position. A nil
// Heuristic makes every conflict-free candidate equally preferred, so
// Greedy picks the first one its domain iterator yields.
type Heuristic func(sol *Solution, v int, val any) float64

// Greedy performs a single left-to-right sweep over the original variables:
// at each position it picks the conflict-free domain value with the highest
// Heuristic score (ties broken by domain order), assigns it, and moves on.
// It never backtracks, so it is not guaranteed to find a solution even when
// one exists; it reports success only if every variable received a
// conflict-free value in one pass.
//
// Greedy produces at most one solution: after Run returns, the search is
// always exhausted — a second Run call is a no-op.
type Greedy struct {
	baseSearch

	n         int
	heuristic Heuristic
	exhausted bool
}

// NewGreedy returns a Greedy search over p. heuristic may be nil.
func NewGreedy(p *Problem, heuristic Heuristic) *Greedy {
	return &Greedy{
		baseSearch: newBaseSearch(p),
		n:          p.OriginalVariableCount,
		heuristic:  heuristic,
	}
}

// InFinalState reports whether the single sweep has already run.
func (g *Greedy) InFinalState() bool { return g.exhausted }

// Run performs the sweep. A second call after the first is a no-op (Greedy
// is exhausted after one pass regardless of outcome).
func (g *Greedy) Run() {
	g.successful = false
	if !g.running || g.exhausted {
		return
	}
	g.exhausted = true
	g.running = false

	for v := 0; v < g.n; v++ {
		dom := g.problem.Variables[v].Domain()
		best, bestScore, haveBest := any(nil), 0.0, false
		for i := 0; i < dom.Size(); i++ {
			val, _ := dom.Get(i)
			if !conflictFree(g.problem, g.sol, v, val) {
				continue
			}
			score := 0.0
			if g.heuristic != nil {
				score = g.heuristic(g.sol, v, val)
			}
			g.problem.cascadeUnassign(g.sol, v)
			if !haveBest || score > bestScore {
				best, bestScore, haveBest = val, score, true
			}
		}
		if !haveBest {
			return
		}
		if !conflictFree(g.problem, g.sol, v, best) {
			return
		}
	}
	g.succeed()
}
