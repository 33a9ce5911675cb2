package validate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogrid/puzzle"
	"github.com/katalvlaran/nonogrid/solver"
	"github.com/katalvlaran/nonogrid/validate"
)

const colorA = puzzle.Cell(1)

// uniform builds an n×n puzzle whose every row and column carries the
// same clue sequence.
func uniform(n int, seq puzzle.ClueSequence) *puzzle.Puzzle {
	p := &puzzle.Puzzle{
		Width: n, Height: n,
		RowClues: make([]puzzle.ClueSequence, n),
		ColClues: make([]puzzle.ClueSequence, n),
	}
	for i := 0; i < n; i++ {
		p.RowClues[i] = seq
		p.ColClues[i] = seq
	}

	return p
}

// TestValidate_ValidUnique: the solid block has exactly one solution.
func TestValidate_ValidUnique(t *testing.T) {
	report, err := validate.Validate(uniform(3, puzzle.ClueSequence{{Count: 3, Color: colorA}}))
	require.NoError(t, err)

	assert.Equal(t, validate.ValidUnique, report.Result)
	assert.True(t, report.IsValid())
	require.NotNil(t, report.Solution)
	assert.True(t, report.Solution.Complete())
	assert.Equal(t, solver.TechniquePropagation, report.Metrics.TechniqueLevel())
}

// TestValidate_ValidMultiple: the diagonal-ambiguous 2×2 stops at the
// second solution and is rejected as ambiguous.
func TestValidate_ValidMultiple(t *testing.T) {
	report, err := validate.Validate(uniform(2, puzzle.ClueSequence{{Count: 1, Color: colorA}}))
	require.NoError(t, err)

	assert.Equal(t, validate.ValidMultiple, report.Result)
	assert.False(t, report.IsValid())
	assert.Equal(t, 1, report.Metrics.BacktrackCount)
}

// TestValidate_Unsolvable: contradictory row/column clues.
func TestValidate_Unsolvable(t *testing.T) {
	p := uniform(2, puzzle.ClueSequence{{Count: 1, Color: colorA}})
	p.RowClues[0] = puzzle.ClueSequence{{Count: 2, Color: colorA}}
	p.RowClues[1] = puzzle.ClueSequence{{Count: 2, Color: colorA}}

	report, err := validate.Validate(p)
	require.NoError(t, err)
	assert.Equal(t, validate.Unsolvable, report.Result)
}

// TestValidate_InvalidEmpty: a 4×4 with all clue sequences empty must be
// rejected before the solver runs — zero metrics prove it never did.
func TestValidate_InvalidEmpty(t *testing.T) {
	report, err := validate.Validate(uniform(4, nil))
	require.NoError(t, err)

	assert.Equal(t, validate.InvalidEmpty, report.Result)
	assert.Equal(t, solver.Metrics{}, report.Metrics, "solver was never invoked")
	assert.Nil(t, report.Solution)
}

// TestValidate_InvalidEmpty_ZeroSize: zero dimensions short-circuit the
// same way.
func TestValidate_InvalidEmpty_ZeroSize(t *testing.T) {
	report, err := validate.Validate(&puzzle.Puzzle{})
	require.NoError(t, err)
	assert.Equal(t, validate.InvalidEmpty, report.Result)
}

// TestValidate_TooComplex_Budget: budget exhaustion is a soft rejection
// with diagnostics, distinct from Unsolvable.
func TestValidate_TooComplex_Budget(t *testing.T) {
	p := uniform(2, puzzle.ClueSequence{{Count: 1, Color: colorA}})

	report, err := validate.Validate(p, solver.WithMaxBacktracks(0))
	require.NoError(t, err)

	assert.Equal(t, validate.TooComplex, report.Result)
	assert.Equal(t, "backtrack budget exhausted", report.Message)
	assert.Equal(t, 1, report.Metrics.StuckCount, "metrics returned even on abort")
}

// TestValidate_TooComplex_Cancelled: caller cancellation maps to the
// same outcome but a distinct message, so budgets can be tuned
// independently of host speed.
func TestValidate_TooComplex_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := uniform(2, puzzle.ClueSequence{{Count: 1, Color: colorA}})

	report, err := validate.Validate(p,
		solver.WithContext(ctx), solver.WithCancelEvery(1))
	require.NoError(t, err)

	assert.Equal(t, validate.TooComplex, report.Result)
	assert.Equal(t, "search cancelled by caller", report.Message)
}

// TestValidate_Malformed: structural defects are errors, never
// conflated with Unsolvable.
func TestValidate_Malformed(t *testing.T) {
	p := uniform(2, puzzle.ClueSequence{{Count: 3, Color: colorA}})

	_, err := validate.Validate(p)
	assert.ErrorIs(t, err, puzzle.ErrLineOverflow)

	_, err = validate.Validate(nil)
	assert.ErrorIs(t, err, validate.ErrPuzzleNil)
}

// TestValidate_ReferenceMismatch: a uniquely solvable puzzle whose
// solution disagrees with its Reference is a data-integrity defect and
// must surface as a dedicated error, not a rejection outcome.
func TestValidate_ReferenceMismatch(t *testing.T) {
	p := uniform(2, puzzle.ClueSequence{{Count: 2, Color: colorA}})
	wrong, err := puzzle.FromCells([][]puzzle.Cell{
		{colorA, colorA},
		{colorA, puzzle.Empty}, // the true solution fills this cell
	})
	require.NoError(t, err)
	p.Reference = wrong

	report, err := validate.Validate(p)
	assert.ErrorIs(t, err, validate.ErrReferenceMismatch)
	assert.Equal(t, validate.ValidUnique, report.Result, "the solve itself succeeded")
}

// TestValidate_ReferenceMatch: a correct Reference passes silently.
func TestValidate_ReferenceMatch(t *testing.T) {
	p := uniform(2, puzzle.ClueSequence{{Count: 2, Color: colorA}})
	right, err := puzzle.FromCells([][]puzzle.Cell{
		{colorA, colorA},
		{colorA, colorA},
	})
	require.NoError(t, err)
	p.Reference = right

	report, err := validate.Validate(p)
	require.NoError(t, err)
	assert.Equal(t, validate.ValidUnique, report.Result)
	assert.True(t, report.Solution.Equal(right))
}

// TestValidate_CallerCannotBreakUniqueness: even if a caller passes
// MaxSolutions = 1, Validate still proves uniqueness with a cap of 2.
func TestValidate_CallerCannotBreakUniqueness(t *testing.T) {
	p := uniform(2, puzzle.ClueSequence{{Count: 1, Color: colorA}})

	report, err := validate.Validate(p, solver.WithMaxSolutions(1))
	require.NoError(t, err)
	assert.Equal(t, validate.ValidMultiple, report.Result)
}

// TestValidate_IsUniquelySolvable covers the convenience wrapper.
func TestValidate_IsUniquelySolvable(t *testing.T) {
	assert.True(t, validate.IsUniquelySolvable(
		uniform(3, puzzle.ClueSequence{{Count: 3, Color: colorA}})))
	assert.False(t, validate.IsUniquelySolvable(
		uniform(2, puzzle.ClueSequence{{Count: 1, Color: colorA}})))
}
