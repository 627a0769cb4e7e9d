// Package csp provides a constraint-satisfaction and constraint-optimization
// engine over finite discrete domains.
//
// A problem is declared as a triple (Z, D, C): a set of variables Z, a domain
// D per variable, and a set of constraints C, each a predicate over the
// currently assigned values of a chosen tuple of variables. A Builder
// assembles variables and constraints into a Problem; a search algorithm
// (Backtracking, ForwardChecking, BranchAndBound, Greedy, ConflictMinimizing)
// enumerates assignments satisfying every constraint; a Solver wraps an
// algorithm and drives it one solution at a time.
//
// The package is single-threaded by design: a Problem, a Solution, and an
// algorithm instance are all mutably shared between the algorithm and
// whoever inspects its current state, and no two algorithm instances may run
// concurrently over the same Problem unless it is frozen (no consistency
// pre-processing pending).
package csp
