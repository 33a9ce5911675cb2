package solver

import "github.com/katalvlaran/nonogrid/puzzle"

// Solve runs the full two-phase pipeline on p: fixpoint propagation from
// an all-Unknown grid, then — only if propagation stalls — bounded
// backtracking that counts solutions up to Options.MaxSolutions.
//
// Contracts:
//   - p must be non-nil and structurally valid (p.Validate is enforced;
//     malformed puzzles error out, they are never "unsolvable").
//   - The Result's Metrics are returned for every outcome, including
//     budget and cancellation aborts, for diagnostics and tuning.
//   - Deterministic: identical puzzles and options yield an identical
//     Result, byte for byte.
//
// Errors: ErrPuzzleNil, ErrOptionViolation, and the puzzle package's
// structural sentinels. Contradictions are NOT errors; they surface as
// Result.Solutions == 0.
func Solve(p *puzzle.Puzzle, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, ErrPuzzleNil
	}
	o := NewOptions(opts...)
	if o.err != nil {
		return Result{}, o.err
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	var m Metrics
	g := puzzle.NewGrid(p.Width, p.Height)

	switch Propagate(p, g, &m) {
	case StateSolved:
		return Result{Solutions: 1, Grid: g, Metrics: m}, nil
	case StateContradiction:
		return Result{Solutions: 0, Grid: g, Metrics: m}, nil
	case StateStalled:
	}

	s := newSearcher(p, o, &m)
	s.branch(g, 0)

	res := Result{
		Solutions:      len(s.solutions),
		Grid:           g,
		Metrics:        m,
		ExceededBudget: s.exceeded,
		Cancelled:      s.cancelled,
	}
	if len(s.solutions) > 0 {
		res.Grid = s.solutions[0]
	}

	return res, nil
}
