package solver_test

import (
	"testing"

	"github.com/katalvlaran/nonogrid/puzzle"
	"github.com/katalvlaran/nonogrid/solver"
)

// trianglePuzzle builds an n×n single-color staircase: row i carries a
// run of i+1, column j a run of n-j. Uniquely solvable by propagation,
// so it benchmarks the line solver and the fixpoint loop in isolation.
func trianglePuzzle(n int) *puzzle.Puzzle {
	p := &puzzle.Puzzle{
		Width:    n,
		Height:   n,
		RowClues: make([]puzzle.ClueSequence, n),
		ColClues: make([]puzzle.ClueSequence, n),
	}
	for i := 0; i < n; i++ {
		p.RowClues[i] = puzzle.ClueSequence{{Count: i + 1, Color: 1}}
		p.ColClues[i] = puzzle.ClueSequence{{Count: n - i, Color: 1}}
	}

	return p
}

// permutationPuzzle builds an n×n grid where every row and column asks
// for a single cell. Massively ambiguous, so the run stops as soon as a
// second solution is proven — a pure search-phase benchmark.
func permutationPuzzle(n int) *puzzle.Puzzle {
	one := puzzle.ClueSequence{{Count: 1, Color: 1}}
	p := &puzzle.Puzzle{
		Width:    n,
		Height:   n,
		RowClues: make([]puzzle.ClueSequence, n),
		ColClues: make([]puzzle.ClueSequence, n),
	}
	for i := 0; i < n; i++ {
		p.RowClues[i] = one
		p.ColClues[i] = one
	}

	return p
}

// benchmarkSolve runs Solve on p for b.N iterations, resetting the
// timer after setup and failing on unexpected errors.
func benchmarkSolve(b *testing.B, p *puzzle.Puzzle, want int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := solver.Solve(p)
		if err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
		if res.Solutions != want {
			b.Fatalf("Solve: got %d solutions, want %d", res.Solutions, want)
		}
	}
}

// BenchmarkSolve_Triangle10 benchmarks pure propagation on a 10×10 staircase.
func BenchmarkSolve_Triangle10(b *testing.B) {
	benchmarkSolve(b, trianglePuzzle(10), 1)
}

// BenchmarkSolve_Triangle25 benchmarks pure propagation on a 25×25 staircase.
func BenchmarkSolve_Triangle25(b *testing.B) {
	benchmarkSolve(b, trianglePuzzle(25), 1)
}

// BenchmarkSolve_Permutation5 benchmarks the search phase on a 5×5
// permutation grid, stopping at the second solution.
func BenchmarkSolve_Permutation5(b *testing.B) {
	benchmarkSolve(b, permutationPuzzle(5), 2)
}

// BenchmarkSolveLine_Wide benchmarks a single 100-cell line with
// alternating-color clues, the hot path of every propagation pass.
func BenchmarkSolveLine_Wide(b *testing.B) {
	line := make([]puzzle.Cell, 100)
	for i := range line {
		line[i] = puzzle.Unknown
	}
	clues := make(puzzle.ClueSequence, 0, 20)
	for i := 0; i < 20; i++ {
		clues = append(clues, puzzle.Clue{Count: 3, Color: puzzle.Cell(1 + i%2)})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.SolveLine(line, clues); err != nil {
			b.Fatalf("SolveLine failed: %v", err)
		}
	}
}
