// Package puzzle defines the data model shared by every nonogrid
// component: cells, clues, grids and the Puzzle definition itself.
//
// 🚀 Core vocabulary:
//
//	Cell  — tri-state value of one grid square: Unknown, Empty, or a
//	        positive color ID.
//	Clue  — one (Count, Color) pair describing a contiguous run of
//	        same-colored cells expected somewhere in a line.
//	ClueSequence — the ordered clues of one row (left→right) or one
//	        column (top→bottom).
//	Grid  — a Width×Height matrix of Cells, mutable while solving.
//	Puzzle — dimensions + per-line clue sequences + an optional
//	        reference solution for data-integrity checks.
//
// ✨ Key invariant (malformed-puzzle rejection):
//
//	For every line, the minimal span of its clue sequence — the sum of
//	run lengths plus one mandatory Empty separator between consecutive
//	runs of the SAME color (different colors may abut) — must fit in
//	the line. Puzzle.Validate rejects violations with ErrLineOverflow
//	before any solving is attempted; this is a structural defect, not a
//	solving outcome.
//
// The package also provides the inverse operation used by round-trip
// checks and upstream generators: DeriveClues reads the run structure of
// a fully-known line, and FromSolution builds a complete Puzzle (with
// Reference set) from a solved grid.
//
// All operations are deterministic and allocation-conscious; see the
// individual doc comments for complexity notes.
package puzzle
