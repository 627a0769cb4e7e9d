package csp

// Objective scores a complete solution; BranchAndBound seeks the assignment
// minimizing (or maximizing) its value.
type Objective func(sol *Solution) float64

// Estimate bounds the best objective value reachable from a partial
// solution in which the original variables at positions [0, level) are
// assigned — an optimistic (for minimize: a lower bound; for maximize: an
// upper bound) estimate used to prune branches that cannot possibly improve
// on the best solution found so far. A nil Estimate disables this pruning;
// BranchAndBound then degrades to exhaustive search with leaf-only
// filtering, emitting only the successive strictly-improving solutions.
type Estimate func(sol *Solution, level int) float64

// BranchAndBound is Backtracking's exhaustive depth-first enumeration
// combined with sign-normalized bounding: each successive Run call returns
// the next strictly improving complete solution (by Objective, in the
// direction fixed by minimize/maximize) it finds, pruning any branch whose
// Estimate proves it cannot beat the best solution recorded so far. The
// final call before exhaustion leaves the best-yet solution as the last one
// Successful reported — the optimum.
type BranchAndBound struct {
	baseSearch

	n         int
	iterators []DomainIterator
	index     int
	exhausted bool

	objective Objective
	estimate  Estimate
	minimize  bool

	haveBest   bool
	bestScore  float64
	evaluation float64

	// scores[i] records the Estimate computed when level i was entered,
	// kept for inspection/debugging of the bounding search.
	scores []float64
}

func newBranchAndBound(p *Problem, objective Objective, estimate Estimate, minimize bool) *BranchAndBound {
	n := p.OriginalVariableCount
	b := &BranchAndBound{
		baseSearch: newBaseSearch(p),
		n:          n,
		iterators:  make([]DomainIterator, n),
		index:      -1,
		objective:  objective,
		estimate:   estimate,
		minimize:   minimize,
		scores:     make([]float64, n),
	}
	for i := 0; i < n; i++ {
		b.iterators[i] = p.Variables[i].Domain().NewIterator()
	}
	return b
}

// NewBranchAndBoundMinimize returns a BranchAndBound that seeks the
// assignment minimizing objective. estimate may be nil.
func NewBranchAndBoundMinimize(p *Problem, objective Objective, estimate Estimate) *BranchAndBound {
	return newBranchAndBound(p, objective, estimate, true)
}

// NewBranchAndBoundMaximize returns a BranchAndBound that seeks the
// assignment maximizing objective. estimate may be nil.
func NewBranchAndBoundMaximize(p *Problem, objective Objective, estimate Estimate) *BranchAndBound {
	return newBranchAndBound(p, objective, estimate, false)
}

// IsMinimize reports whether this search minimizes its objective.
func (b *BranchAndBound) IsMinimize() bool { return b.minimize }

// IsMaximize reports whether this search maximizes its objective.
func (b *BranchAndBound) IsMaximize() bool { return !b.minimize }

// Evaluation returns the objective value of the current (best-yet)
// solution. It is only meaningful once Successful has been true at least
// once.
func (b *BranchAndBound) Evaluation() float64 { return b.evaluation }

// InFinalState reports whether the entire search space has been explored
// (the last Successful solution is then the optimum).
func (b *BranchAndBound) InFinalState() bool { return b.exhausted }

// improves reports whether score is strictly better than the best recorded
// so far, in the direction fixed by minimize/maximize.
func (b *BranchAndBound) improves(score float64) bool {
	if !b.haveBest {
		return true
	}
	if b.minimize {
		return score < b.bestScore
	}
	return score > b.bestScore
}

func (b *BranchAndBound) Run() {
	b.successful = false
	if !b.running {
		return
	}
	if b.n == 0 {
		b.succeed()
		b.evaluation = b.objective(b.sol)
		b.running = false
		b.exhausted = true
		return
	}
	if b.index == -1 {
		b.index = 0
		b.iterators[0].Reset()
	}

	for b.running {
		idx := b.index
		it := b.iterators[idx]
		if it.HasNext() {
			v, err := it.Next()
			if err != nil {
				continue
			}
			if !conflictFree(b.problem, b.sol, idx, v) {
				continue
			}

			if idx == b.n-1 {
				score := b.objective(b.sol)
				if b.improves(score) {
					b.haveBest = true
					b.bestScore = score
					b.evaluation = score
					b.succeed()
					b.problem.cascadeUnassign(b.sol, idx)
					return
				}
				b.problem.cascadeUnassign(b.sol, idx)
				continue
			}

			if b.estimate != nil {
				est := b.estimate(b.sol, idx+1)
				b.scores[idx+1] = est
				if !b.improves(est) {
					b.problem.cascadeUnassign(b.sol, idx)
					continue
				}
			}

			b.index++
			b.iterators[b.index].Reset()
			continue
		}

		it.Reset()
		if idx == 0 {
			b.index = -1
			b.running = false
			b.exhausted = true
			return
		}
		b.index--
		b.problem.cascadeUnassign(b.sol, b.index)
	}
}
