package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogrid/analysis"
	"github.com/katalvlaran/nonogrid/puzzle"
	"github.com/katalvlaran/nonogrid/validate"
)

// heart is a 7×7 two-color test image: uniquely solvable, good fill.
func heart() [][]puzzle.Cell {
	return [][]puzzle.Cell{
		{0, 1, 1, 0, 1, 1, 0},
		{1, 2, 2, 1, 2, 2, 1},
		{1, 2, 2, 2, 2, 2, 1},
		{0, 1, 2, 2, 2, 1, 0},
		{0, 0, 1, 2, 1, 0, 0},
		{0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
	}
}

// TestAnalyzeGrid_RoundTrip: deriving clues from a solution grid and
// validating them must reproduce the exact same grid with ValidUnique —
// the end-to-end self-check for generated puzzles.
func TestAnalyzeGrid_RoundTrip(t *testing.T) {
	a, err := analysis.AnalyzeGrid(heart())
	require.NoError(t, err)

	assert.True(t, a.IsValid())
	assert.Equal(t, validate.ValidUnique, a.Report.Result)

	want, err := puzzle.FromCells(heart())
	require.NoError(t, err)
	assert.True(t, a.Report.Solution.Equal(want), "found solution must equal the source grid")

	require.NotNil(t, a.Difficulty, "unique puzzles get a difficulty score")
	assert.Greater(t, a.Difficulty.Score, 0.0)
	require.NotNil(t, a.Quality, "unique puzzles get a quality grade")
}

// TestAnalyze_NoScoresForRejects: difficulty and quality are computed
// only for uniquely solvable puzzles.
func TestAnalyze_NoScoresForRejects(t *testing.T) {
	one := puzzle.ClueSequence{{Count: 1, Color: 1}}
	ambiguous := &puzzle.Puzzle{
		Width: 2, Height: 2,
		RowClues: []puzzle.ClueSequence{one, one},
		ColClues: []puzzle.ClueSequence{one, one},
	}

	a, err := analysis.Analyze(ambiguous)
	require.NoError(t, err)
	assert.Equal(t, validate.ValidMultiple, a.Report.Result)
	assert.Nil(t, a.Difficulty)
	assert.Nil(t, a.Quality)
}

// TestAnalyze_Determinism: the full pipeline twice on the same puzzle
// yields identical outcome, metrics, difficulty and quality.
func TestAnalyze_Determinism(t *testing.T) {
	first, err := analysis.AnalyzeGrid(heart())
	require.NoError(t, err)
	second, err := analysis.AnalyzeGrid(heart())
	require.NoError(t, err)

	assert.Equal(t, first.Report.Result, second.Report.Result)
	assert.Equal(t, first.Report.Metrics, second.Report.Metrics)
	assert.Equal(t, *first.Difficulty, *second.Difficulty)
	assert.Equal(t, *first.Quality, *second.Quality)
}

// TestAnalyze_MalformedPropagates: structural errors pass through.
func TestAnalyze_MalformedPropagates(t *testing.T) {
	bad := &puzzle.Puzzle{
		Width: 1, Height: 1,
		RowClues: []puzzle.ClueSequence{{{Count: 2, Color: 1}}},
		ColClues: []puzzle.ClueSequence{{}},
	}
	_, err := analysis.Analyze(bad)
	assert.ErrorIs(t, err, puzzle.ErrLineOverflow)
}

// TestAnalysis_Summary renders the digest lines.
func TestAnalysis_Summary(t *testing.T) {
	a, err := analysis.AnalyzeGrid(heart())
	require.NoError(t, err)

	s := a.Summary()
	assert.Contains(t, s, "status: valid_unique")
	assert.Contains(t, s, "difficulty:")
	assert.Contains(t, s, "quality:")
}
