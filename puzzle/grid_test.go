package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogrid/puzzle"
)

// TestNewGrid starts all-Unknown and incomplete.
func TestNewGrid(t *testing.T) {
	g := puzzle.NewGrid(3, 2)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.False(t, g.Complete())
	assert.Equal(t, 6, g.UnknownCount())
	assert.Equal(t, puzzle.Unknown, g.Get(1, 2))
}

// TestGrid_SetRowColCommitsOnlyUnknown ensures commits never overwrite
// already-known cells and report exact change counts.
func TestGrid_SetRowColCommitsOnlyUnknown(t *testing.T) {
	g := puzzle.NewGrid(3, 2)
	g.Set(0, 0, 1)

	n := g.SetRow(0, []puzzle.Cell{2, puzzle.Empty, puzzle.Unknown})
	assert.Equal(t, 1, n, "only the Empty at col 1 is newly committed")
	assert.Equal(t, puzzle.Cell(1), g.Get(0, 0), "known cell untouched")
	assert.Equal(t, puzzle.Empty, g.Get(0, 1))
	assert.Equal(t, puzzle.Unknown, g.Get(0, 2))

	n = g.SetCol(2, []puzzle.Cell{1, 1})
	assert.Equal(t, 2, n)
	assert.Equal(t, puzzle.Cell(1), g.Get(1, 2))
}

// TestGrid_RowColBuffers verifies extraction into reusable buffers.
func TestGrid_RowColBuffers(t *testing.T) {
	g, err := puzzle.FromCells([][]puzzle.Cell{
		{1, 0, 2},
		{0, 1, 2},
	})
	require.NoError(t, err)

	buf := make([]puzzle.Cell, 0, 3)
	assert.Equal(t, []puzzle.Cell{1, 0, 2}, g.Row(0, buf))
	assert.Equal(t, []puzzle.Cell{2, 2}, g.Col(2, buf))
}

// TestGrid_CloneIsolation ensures clones never alias the original —
// the branch-isolation guarantee backtracking relies on.
func TestGrid_CloneIsolation(t *testing.T) {
	g := puzzle.NewGrid(2, 2)
	g.Set(0, 0, 1)

	c := g.Clone()
	c.Set(0, 0, puzzle.Empty)
	c.Set(1, 1, 2)

	assert.Equal(t, puzzle.Cell(1), g.Get(0, 0), "original untouched by clone writes")
	assert.Equal(t, puzzle.Unknown, g.Get(1, 1))
	assert.True(t, g.Equal(g.Clone()))
	assert.False(t, g.Equal(c))
}

// TestGrid_FillRatio counts colors only; Unknown and Empty are unfilled.
func TestGrid_FillRatio(t *testing.T) {
	g, err := puzzle.FromCells([][]puzzle.Cell{
		{1, 0},
		{puzzle.Unknown, 2},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, g.FillRatio(), 1e-12)
}

// TestGrid_String renders the debug glyphs.
func TestGrid_String(t *testing.T) {
	g, err := puzzle.FromCells([][]puzzle.Cell{
		{puzzle.Unknown, 0},
		{1, 12},
	})
	require.NoError(t, err)
	assert.Equal(t, "?.\n12", g.String())
}
