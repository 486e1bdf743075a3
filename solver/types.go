// Package solver defines options, result types, and sentinel errors for
// the A* sliding-tile solver of github.com/katalvlaran/npuzzle.
package solver

import (
	"errors"

	"github.com/katalvlaran/npuzzle/board"
)

// ErrNilBoard is returned when Solve is called without an initial board.
var ErrNilBoard = errors.New("solver: initial board must not be nil")

// State describes the solver's terminal condition.
// A run begins in Running and always ends in exactly one of
// Solved or Infeasible; the two are mutually exclusive.
type State int

const (
	// Running is the non-terminal state while the search is in flight.
	Running State = iota
	// Solved means the real search reached the goal arrangement.
	Solved
	// Infeasible means the goal is unreachable from the initial board.
	Infeasible
)

// String returns the state name for logs and test failures.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Solved:
		return "Solved"
	case Infeasible:
		return "Infeasible"
	default:
		return "Unknown"
	}
}

// Option configures a Solve call via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of one Solve call.
type Options struct {
	// LinearConflict tightens the Manhattan heuristic with the
	// linear-conflict correction (+2 per reciprocally inverted pair
	// sharing a goal row or column). Remains admissible and consistent.
	LinearConflict bool

	// TwinRace decides solvability by racing the initial board's twin
	// search against the real one instead of the closed-form parity
	// rule. Exactly one strategy governs a run.
	TwinRace bool

	// ParentSkipOnly disables the full visited set and deduplicates
	// only against each node's immediate parent. Uses less memory;
	// re-expands states reachable by longer cycles.
	ParentSkipOnly bool
}

// DefaultOptions returns the Options used when no Option is supplied:
// plain Manhattan heuristic, closed-form parity check, full visited set.
func DefaultOptions() Options {
	return Options{
		LinearConflict: false,
		TwinRace:       false,
		ParentSkipOnly: false,
	}
}

// WithLinearConflict enables the linear-conflict heuristic correction.
func WithLinearConflict() Option {
	return func(o *Options) { o.LinearConflict = true }
}

// WithTwinRace selects the twin-race solvability strategy: seed the
// frontier with both the initial board and its twin, and declare the
// run infeasible if the twin search reaches the goal first.
func WithTwinRace() Option {
	return func(o *Options) { o.TwinRace = true }
}

// WithParentSkipOnly reduces deduplication to the single-step parent
// check, trading repeated expansions for a smaller memory footprint.
func WithParentSkipOnly() Option {
	return func(o *Options) { o.ParentSkipOnly = true }
}

// Result holds the outcome of one Solve call.
type Result struct {
	state    State
	moves    int
	solution []*board.Board
	expanded int
}

// State returns the terminal state of the run: Solved or Infeasible.
func (r *Result) State() State { return r.state }

// Solvable reports whether the run ended in Solved.
func (r *Result) Solvable() bool { return r.state == Solved }

// Moves returns the minimum number of moves in the solution
// (len(Solution())−1), or −1 if the run ended Infeasible.
func (r *Result) Moves() int {
	if r.state != Solved {
		return -1
	}
	return r.moves
}

// Solution returns the boards of a minimum-move solution in order,
// initial through goal inclusive, or nil if the run ended Infeasible.
// The returned slice is a copy; callers may reorder it freely.
func (r *Result) Solution() []*board.Board {
	if r.state != Solved {
		return nil
	}
	out := make([]*board.Board, len(r.solution))
	copy(out, r.solution)
	return out
}

// Expanded returns the number of nodes dequeued and expanded during the
// search. Zero when parity short-circuits the run.
func (r *Result) Expanded() int { return r.expanded }
