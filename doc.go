// Package nonogrid is a deterministic solving, validation and scoring
// engine for colored nonogram (logic-grid) puzzles.
//
// 🚀 What is nonogrid?
//
//	A pure-Go engine that takes a puzzle definition — grid dimensions plus
//	an ordered sequence of (count, color) run clues per row and column —
//	and answers the questions a puzzle-corpus curator cares about:
//		• Is the puzzle solvable at all?
//		• Is its solution unique?
//		• How hard is it, on a reproducible numeric scale?
//		• Is it well designed, independent of how hard it is?
//
// ✨ Why choose nonogrid?
//
//   - Exact – uniqueness is proved by bounded search, never sampled
//   - Reproducible – no randomness anywhere; identical input yields
//     identical metrics, scores and tiers on every run
//   - Bounded – backtracking budgets and context cancellation keep
//     pathological puzzles from running away
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under small, focused subpackages:
//
//	puzzle/     — clues, grids, puzzle model, clue derivation & validation
//	solver/     — line solving, fixpoint propagation, bounded backtracking
//	validate/   — the five-outcome validation state machine
//	difficulty/ — multi-factor difficulty score and tier buckets
//	quality/    — design-quality grading (composition, clue density, …)
//	analysis/   — one-call orchestration of validate + difficulty + quality
//
// Quick ASCII example (2×2, one color):
//
//	  clues  1  1
//	   1   ┌──┬──┐
//	       │■ │  │
//	   1   ├──┼──┤
//	       │  │■ │
//	       └──┴──┘
//
//	is ambiguous — the two diagonal placements both satisfy every clue —
//	so validation reports ValidMultiple and the puzzle is rejected.
//
// Dive into each subpackage's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/nonogrid
package nonogrid
