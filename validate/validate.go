package validate

import (
	"fmt"

	"github.com/katalvlaran/nonogrid/puzzle"
	"github.com/katalvlaran/nonogrid/solver"
)

// Validate decides which of the five outcomes p falls into.
//
// Order of decisions:
//
//  1. Structural validation (puzzle.Validate) — a malformed puzzle is an
//     error, never an outcome.
//  2. Degenerate pre-checks — zero dimensions or all-empty clue
//     sequences yield InvalidEmpty without invoking the solver.
//  3. solver.Solve with MaxSolutions forced to 2 (uniqueness proof);
//     caller options such as WithContext and WithMaxBacktracks are
//     honored.
//  4. Outcome mapping: budget/cancel abort → TooComplex, 0 solutions →
//     Unsolvable, 2 → ValidMultiple, 1 → ValidUnique.
//  5. For ValidUnique with Puzzle.Reference set, the solution must match
//     it cell-by-cell; a mismatch returns the report together with
//     ErrReferenceMismatch so the upstream generator defect is surfaced
//     instead of silently discarded.
//
// Metrics are populated for every solver-reached outcome, including
// TooComplex, so aborted searches remain diagnosable.
func Validate(p *puzzle.Puzzle, opts ...solver.Option) (Report, error) {
	if p == nil {
		return Report{}, ErrPuzzleNil
	}
	if err := p.Validate(); err != nil {
		return Report{}, err
	}

	if p.Width == 0 || p.Height == 0 {
		return Report{
			Result:  InvalidEmpty,
			Message: "empty puzzle (zero dimensions)",
		}, nil
	}
	if p.AllCluesEmpty() {
		return Report{
			Result:  InvalidEmpty,
			Message: "all clue sequences empty",
		}, nil
	}

	// Uniqueness needs a second solution to disprove it; never let caller
	// options lower the cap below 2.
	res, err := solver.Solve(p, append(opts, solver.WithMaxSolutions(2))...)
	if err != nil {
		return Report{}, err
	}

	report := Report{Metrics: res.Metrics}
	switch {
	case res.Cancelled:
		report.Result = TooComplex
		report.Message = "search cancelled by caller"
	case res.ExceededBudget:
		report.Result = TooComplex
		report.Message = "backtrack budget exhausted"
	case res.Solutions == 0:
		report.Result = Unsolvable
		report.Message = "no valid solution exists"
	case res.Solutions == 1:
		report.Result = ValidUnique
		report.Solution = res.Grid
		report.Message = "puzzle has exactly one solution"
		if p.Reference != nil && !res.Grid.Equal(p.Reference) {
			return report, fmt.Errorf("%w: %dx%d puzzle", ErrReferenceMismatch, p.Width, p.Height)
		}
	default:
		report.Result = ValidMultiple
		report.Solution = res.Grid
		report.Message = fmt.Sprintf("puzzle has multiple solutions (found %d, stopped)", res.Solutions)
	}

	return report, nil
}

// IsUniquelySolvable is a convenience wrapper: true iff Validate yields
// ValidUnique with no data-integrity error.
func IsUniquelySolvable(p *puzzle.Puzzle, opts ...solver.Option) bool {
	report, err := Validate(p, opts...)

	return err == nil && report.IsValid()
}
