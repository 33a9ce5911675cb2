package analysis

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/nonogrid/difficulty"
	"github.com/katalvlaran/nonogrid/puzzle"
	"github.com/katalvlaran/nonogrid/quality"
	"github.com/katalvlaran/nonogrid/solver"
	"github.com/katalvlaran/nonogrid/validate"
)

// Analysis bundles the complete evaluation of one puzzle candidate.
// Difficulty and Quality are nil unless validation reached ValidUnique —
// scoring a puzzle nobody can solve (or that two grids solve) is
// meaningless.
type Analysis struct {
	Puzzle     *puzzle.Puzzle
	Report     validate.Report
	Difficulty *difficulty.ScoreReport
	Quality    *quality.Report
}

// IsValid reports whether the puzzle is accepted: uniquely solvable.
func (a Analysis) IsValid() bool { return a.Report.IsValid() }

// Summary renders a short human-readable digest for logs and CLIs.
func (a Analysis) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", a.Puzzle)
	fmt.Fprintf(&b, "status: %s — %s\n", a.Report.Result, a.Report.Message)
	if a.Difficulty != nil {
		fmt.Fprintf(&b, "difficulty: %s (score %.2f)\n", a.Difficulty.Tier, a.Difficulty.Score)
	}
	if a.Quality != nil {
		fmt.Fprintf(&b, "quality: %s (score %.1f)", a.Quality.Grade, a.Quality.Score)
	}

	return strings.TrimRight(b.String(), "\n")
}

// Analyze validates p and, when it proves uniquely solvable, attaches the
// difficulty score and the quality grade computed from the found
// solution. Solver options (context, budgets) pass straight through.
//
// Errors are exactly Validate's: malformed puzzles and
// validate.ErrReferenceMismatch. Every other result — including
// Unsolvable and TooComplex — is a first-class outcome in
// Analysis.Report, with metrics intact for diagnostics.
func Analyze(p *puzzle.Puzzle, opts ...solver.Option) (Analysis, error) {
	report, err := validate.Validate(p, opts...)
	if err != nil {
		return Analysis{Puzzle: p, Report: report}, err
	}

	a := Analysis{Puzzle: p, Report: report}
	if report.Result != validate.ValidUnique {
		return a, nil
	}

	score := difficulty.Score(p, report.Solution, report.Metrics)
	a.Difficulty = &score

	qr, err := quality.Evaluate(p, report.Solution)
	if err != nil {
		return a, err
	}
	a.Quality = &qr

	return a, nil
}

// AnalyzeGrid derives a puzzle from a fully-known solution grid and
// analyzes it: the round-trip self-check. Clue derivation sets the grid
// as Reference, so any solver defect surfaces as
// validate.ErrReferenceMismatch rather than a silent wrong acceptance.
func AnalyzeGrid(rows [][]puzzle.Cell, opts ...solver.Option) (Analysis, error) {
	p, err := puzzle.FromSolution(rows)
	if err != nil {
		return Analysis{}, err
	}

	return Analyze(p, opts...)
}
