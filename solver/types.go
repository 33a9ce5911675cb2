// Package solver defines options, metrics and sentinel errors for the
// solver subpackage of github.com/katalvlaran/nonogrid.
package solver

import (
	"errors"

	"github.com/katalvlaran/nonogrid/puzzle"
)

// Sentinel errors for solver execution.
var (
	// ErrNoArrangement is the first-class contradiction signal: a line has
	// no arrangement consistent with its clues and known cells, proving
	// the puzzle unsolvable under the current partial grid.
	ErrNoArrangement = errors.New("solver: no arrangement satisfies line")
	// ErrPuzzleNil is returned when a nil puzzle pointer is passed.
	ErrPuzzleNil = errors.New("solver: puzzle is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Technique levels reported by Metrics.TechniqueLevel.
const (
	// TechniquePropagation — single-line deduction alone solved the puzzle.
	TechniquePropagation = 1
	// TechniqueCrossReference — propagation stalled at least once but the
	// puzzle resolved without guessing.
	TechniqueCrossReference = 2
	// TechniqueBacktracking — at least one guess was required.
	TechniqueBacktracking = 3
)

// Metrics records the effort spent by one solve attempt. A fresh value is
// created per attempt and accumulated monotonically; difficulty scoring
// consumes it verbatim, so all counters must be reproducible.
type Metrics struct {
	// TotalSteps counts every cell committed by propagation.
	TotalSteps int
	// StuckCount counts stall events: full passes that committed nothing
	// while Unknown cells remained (cross-line information was needed).
	StuckCount int
	// BacktrackCount counts branch points explored across the whole
	// search tree.
	BacktrackCount int
	// BacktrackDepth is the maximum guess-recursion depth reached.
	BacktrackDepth int
}

// TechniqueLevel reports the strongest technique the attempt required:
// 3 if any guessing happened, 2 if propagation ever stalled, 1 otherwise.
func (m Metrics) TechniqueLevel() int {
	switch {
	case m.BacktrackCount > 0:
		return TechniqueBacktracking
	case m.StuckCount > 0:
		return TechniqueCrossReference
	default:
		return TechniquePropagation
	}
}

// State is the outcome of one propagation run to fixpoint.
type State int

const (
	// StateSolved — no Unknown cells remain.
	StateSolved State = iota
	// StateStalled — a full pass committed nothing, Unknown cells remain.
	StateStalled
	// StateContradiction — some line admits no arrangement.
	StateContradiction
)

// String implements fmt.Stringer for State.
func (s State) String() string {
	switch s {
	case StateSolved:
		return "solved"
	case StateStalled:
		return "stalled"
	case StateContradiction:
		return "contradiction"
	default:
		return "unknown"
	}
}

// Result is the outcome of a full Solve run.
type Result struct {
	// Solutions is the number of complete solutions found, capped at
	// Options.MaxSolutions.
	Solutions int
	// Grid is the first solution found, or the final partial grid when
	// none was (useful for diagnostics).
	Grid *puzzle.Grid
	// Metrics is the accumulated solving effort, returned even on aborts.
	Metrics Metrics
	// ExceededBudget is true when MaxBacktracks branch points were spent
	// before the search space was exhausted.
	ExceededBudget bool
	// Cancelled is true when the caller's context aborted the search.
	// Distinct from ExceededBudget so budgets can be tuned independently
	// of host speed.
	Cancelled bool
}
