// Package validate defines outcome types and sentinel errors for the
// validate subpackage of github.com/katalvlaran/nonogrid.
package validate

import (
	"errors"

	"github.com/katalvlaran/nonogrid/puzzle"
	"github.com/katalvlaran/nonogrid/solver"
)

// Sentinel errors for validation.
var (
	// ErrPuzzleNil is returned when a nil puzzle pointer is passed.
	ErrPuzzleNil = errors.New("validate: puzzle is nil")
	// ErrReferenceMismatch indicates a uniquely-solvable puzzle whose
	// solution differs from Puzzle.Reference — an upstream data-integrity
	// defect (incorrectly derived clues), distinct from every outcome.
	ErrReferenceMismatch = errors.New("validate: unique solution does not match reference grid")
)

// Result is one of the five first-class validation outcomes.
type Result int

const (
	// ValidUnique — exactly one solution exists.
	ValidUnique Result = iota
	// ValidMultiple — at least two solutions exist (search stops at two).
	ValidMultiple
	// Unsolvable — no solution exists.
	Unsolvable
	// InvalidEmpty — zero dimensions or all clue sequences empty.
	InvalidEmpty
	// TooComplex — the backtrack budget or caller cancellation aborted
	// the search before uniqueness could be decided.
	TooComplex
)

// String implements fmt.Stringer for Result.
func (r Result) String() string {
	switch r {
	case ValidUnique:
		return "valid_unique"
	case ValidMultiple:
		return "valid_multiple"
	case Unsolvable:
		return "unsolvable"
	case InvalidEmpty:
		return "invalid_empty"
	case TooComplex:
		return "too_complex"
	default:
		return "unknown"
	}
}

// Report carries the outcome together with everything diagnostics need:
// the solution (when one was found), the solve metrics accumulated up to
// the decision point, and a human-readable message.
type Report struct {
	Result   Result
	Solution *puzzle.Grid // non-nil only for ValidUnique and ValidMultiple
	Metrics  solver.Metrics
	Message  string
}

// IsValid reports whether the puzzle is usable: exactly one solution.
func (r Report) IsValid() bool { return r.Result == ValidUnique }
