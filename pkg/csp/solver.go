package csp

import (
	"time"

	"github.com/gitrdm/fdcsp/internal/worker"
)

// Stats accumulates bookkeeping across a Solver's lifetime: how many search
// steps (Algorithm.Run calls) have been taken, how many solutions have been
// emitted, and how much wall-clock time has been spent inside Run.
type Stats struct {
	Steps     int
	Solutions int
	Elapsed   time.Duration
}

// Solver wraps an Algorithm with the bookkeeping most callers want: a
// single blocking Solve call, a time-boxed variant, running statistics, and
// the ability to start over from scratch.
//
// Solver is built from a factory rather than an Algorithm directly so Reset
// can hand back a brand-new instance — none of the search algorithms
// support being rewound in place, since doing so would mean undoing an
// unbounded trail of cascaded assignments.
type Solver struct {
	factory func() Algorithm
	algo    Algorithm
	stats   Stats
}

// NewSolver returns a Solver driving the Algorithm factory produces. factory
// is called once now and again on every Reset.
func NewSolver(factory func() Algorithm) *Solver {
	return &Solver{factory: factory, algo: factory()}
}

// Algorithm returns the Solver's current underlying Algorithm, for callers
// that need the richer ExhaustiveAlgorithm/OptimizingAlgorithm interfaces
// (InFinalState, Evaluation, ...) the factory's concrete type provides.
func (s *Solver) Algorithm() Algorithm { return s.algo }

// Stats returns a snapshot of the Solver's running statistics.
func (s *Solver) Stats() Stats { return s.stats }

// Reset discards the current search state and starts over from a freshly
// constructed Algorithm, clearing Stats.
func (s *Solver) Reset() {
	s.algo = s.factory()
	s.stats = Stats{}
}

// Solve drives the Algorithm to completion, returning the next solution or
// an error if the search space is exhausted without producing one. It runs
// for as long as it takes; use SolveIn to bound the time spent.
func (s *Solver) Solve() (*Solution, error) {
	start := time.Now()
	defer func() { s.stats.Elapsed += time.Since(start) }()

	for s.algo.Running() {
		s.algo.Run()
		s.stats.Steps++
		if s.algo.Successful() {
			s.stats.Solutions++
			return s.algo.GetSolution()
		}
	}
	return nil, &IllegalState{Op: "Solver.Solve", Reason: "search space exhausted without a solution"}
}

// SolveIn drives the Algorithm for at most limit before giving up, using a
// dedicated goroutine and a single bounded-time worker slot (see
// internal/worker) rather than busy-polling a deadline — Run on most of
// these algorithms does not return control until it finds a solution or
// exhausts the search space, so the deadline has to be enforced by
// Interrupting the goroutine actually doing the work, not by checking a
// clock between calls.
//
// If the limit is hit, the Algorithm is left interrupted (Running() false)
// and SolveIn returns an error; the Solver must be Reset before solving
// again.
func (s *Solver) SolveIn(limit time.Duration) (*Solution, error) {
	start := time.Now()
	defer func() { s.stats.Elapsed += time.Since(start) }()

	timedOut := worker.Run(singleStepTask{s}, limit, worker.DefaultGrace)
	if timedOut {
		return nil, &IllegalState{Op: "Solver.SolveIn", Reason: "time limit exceeded"}
	}
	if s.algo.Successful() {
		return s.algo.GetSolution()
	}
	return nil, &IllegalState{Op: "Solver.SolveIn", Reason: "search space exhausted without a solution"}
}

// singleStepTask adapts Solver's Running/Run/Successful loop to
// worker.Task, so SolveIn's deadline can Interrupt the Algorithm mid-search
// rather than only between Run calls.
type singleStepTask struct{ s *Solver }

func (t singleStepTask) Run() {
	for t.s.algo.Running() {
		t.s.algo.Run()
		t.s.stats.Steps++
		if t.s.algo.Successful() {
			t.s.stats.Solutions++
			return
		}
	}
}

func (t singleStepTask) Interrupt() { t.s.algo.Interrupt() }
