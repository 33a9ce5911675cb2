// Package validate maps a solve attempt onto the five first-class
// validation outcomes a puzzle-corpus curator acts on:
//
//	ValidUnique   — exactly one solution; the puzzle is usable.
//	ValidMultiple — a second solution exists; rejected as ambiguous.
//	Unsolvable    — no solution exists.
//	InvalidEmpty  — degenerate input (zero size or all-empty clues),
//	                detected before the solver ever runs.
//	TooComplex    — the backtrack budget or the caller's context aborted
//	                the search; a soft rejection, not a proof.
//
// Outcomes are values, never errors: callers use them to accept or
// reject puzzles, not to handle crashes. Validate returns a non-nil
// error for exactly two distinct failure classes:
//
//   - a malformed puzzle (puzzle.Validate sentinels) — structurally
//     broken input, rejected before solving;
//   - ErrReferenceMismatch — the puzzle IS uniquely solvable but its
//     solution differs from Puzzle.Reference, which means the upstream
//     clue generator derived the clues incorrectly. This is a
//     data-integrity defect to investigate, not a difficulty rejection,
//     so it is kept apart from every outcome.
//
// The validator owns the state machine
// Propagating → {Solved, Contradiction, Stalled} and
// Stalled → Backtracking → {0, 1, 2 solutions, budget/cancel}; the
// solver package does the work, this package names the result.
package validate
