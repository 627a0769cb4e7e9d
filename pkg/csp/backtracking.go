package csp

// Backtracking is the exhaustive depth-first search: it tries domain values
// for the original variables in declaration order, cascading each tentative
// assignment through any integer-expression auxiliaries and backing up to
// the previous variable whenever no value at the current position is
// conflict-free.
//
// State is a cursor index ranging over [-1, n) where n is the number of
// original (non-auxiliary) variables, plus one domain iterator per original
// variable. index == -1 before the first Run and once the whole search
// space has been explored; InFinalState reports the latter.
//
// A successful leaf assignment is recorded (via succeed, a Clone of sol)
// and then immediately unassigned again, so the next Run call resumes by
// trying the next value at the same leaf position rather than re-emitting
// the same solution.
type Backtracking struct {
	baseSearch

	n         int
	iterators []DomainIterator
	index     int
	exhausted bool
}

// NewBacktracking returns a Backtracking ready to search p.
func NewBacktracking(p *Problem) *Backtracking {
	n := p.OriginalVariableCount
	b := &Backtracking{
		baseSearch: newBaseSearch(p),
		n:          n,
		iterators:  make([]DomainIterator, n),
		index:      -1,
	}
	for i := 0; i < n; i++ {
		b.iterators[i] = p.Variables[i].Domain().NewIterator()
	}
	return b
}

// InFinalState reports whether the entire search space has been explored.
func (b *Backtracking) InFinalState() bool { return b.exhausted }

// Run searches for the next solution. It returns once a solution is found
// (Successful becomes true) or the search space is exhausted (Running
// becomes false).
func (b *Backtracking) Run() {
	b.successful = false
	if !b.running {
		return
	}
	if b.n == 0 {
		b.succeed()
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
			if conflictFree(b.problem, b.sol, idx, v) {
				if idx == b.n-1 {
					b.succeed()
					b.problem.cascadeUnassign(b.sol, idx)
					return
				}
				b.index++
				b.iterators[b.index].Reset()
			}
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
