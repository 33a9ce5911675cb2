// Package difficulty turns solving effort into a reproducible score.
//
// The score is multiplicative: puzzle shape (size, fill ratio, colors,
// clue fragmentation) sets the base, and the solver's Metrics (technique
// level, stalls, backtracking) scale it up. Identical inputs always
// produce identical scores — there is no randomness anywhere — which is
// what makes corpus-wide difficulty curation trustworthy.
//
//	score = size · fill · colors · fragmentation
//	        · technique · stuck · backtrack · 10
//
// Tier buckets (lower bound inclusive): <10 Easy, <20 Medium, <50 Hard,
// <200 Challenging, <600 Expert, otherwise Master.
//
// Scoring is only meaningful for uniquely-solvable puzzles; callers
// normally reach it through analysis.Analyze, which scores ValidUnique
// outcomes and nothing else.
//
// A deliberate quirk, kept for corpus compatibility: the fill factor
// peaks at 50% fill and decays symmetrically toward 0% and 100%, so a
// nearly-empty and a nearly-full grid are discounted equally. It is
// clamped below at FillFloor so degenerate fills never zero the score.
package difficulty
