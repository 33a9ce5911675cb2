// Package analysis is the one-call front door of nonogrid: it validates
// a puzzle, and — only when the puzzle is uniquely solvable — scores its
// difficulty and grades its design quality, bundling everything a
// corpus-curation pipeline needs into a single Analysis value.
//
// ⚙️ Usage:
//
//	a, err := analysis.Analyze(p, solver.WithContext(ctx))
//	if err != nil { ... }        // malformed puzzle or reference mismatch
//	if !a.IsValid() { reject(a.Report.Result) }
//	accept(a.Report.Solution, a.Difficulty.Tier, a.Quality.Grade)
//
// AnalyzeGrid closes the round trip: given a fully-known solution grid it
// derives the clues, validates them, and must get the same grid back —
// the end-to-end self-check used on every generated puzzle.
package analysis
