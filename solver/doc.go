// Package solver implements the two-phase constraint solver at the heart
// of nonogrid: fixpoint line propagation, plus bounded backtracking when
// propagation alone cannot finish.
//
// 🚀 How solving works:
//
//  1. Line solving (SolveLine). For one row or column, consider every
//     placement of its clue runs that respects the separator rule (runs
//     of the same color need ≥1 Empty between them, different colors may
//     abut) and agrees with the already-known cells. A cell is forced
//     when every consistent arrangement assigns it the same value; zero
//     consistent arrangements is a contradiction.
//
//  2. Propagation (Propagate). Apply SolveLine to every row, then every
//     column, committing forced cells, and repeat until a full pass
//     commits nothing (stalled), no Unknown cells remain (solved), or a
//     line is contradictory (unsolvable).
//
//  3. Backtracking (Solve). When propagation stalls, pick the Unknown
//     cell with the fewest locally feasible values (Empty plus the colors
//     shared by its row and column clues; ties broken row-major), try
//     each value on a cloned grid, re-propagate, and recurse. The search
//     stops as soon as MaxSolutions (2 by default) solutions are found —
//     it is a uniqueness proof, not an enumeration.
//
// ✨ Guarantees:
//
//   - Deterministic: fixed line order, fixed cell-selection heuristic,
//     fixed value order — identical puzzles yield identical Metrics.
//   - Bounded: every branch point counts against MaxBacktracks; the
//     budget and the caller's context are both honored mid-search.
//   - Isolated: each guess works on a cloned grid, so abandoning a
//     branch never corrupts its siblings.
//
// Arrangements are never materialized: SolveLine works on memoized
// prefix/suffix feasibility over (position, clue) states, so a line
// costs O(length · clues · run length) no matter how many arrangements
// its slack admits.
//
// ⚙️ Usage:
//
//	res, err := solver.Solve(p,
//	    solver.WithContext(ctx),
//	    solver.WithMaxBacktracks(500),
//	)
//	if err != nil { ... }                 // malformed puzzle / bad option
//	switch {
//	case res.Cancelled, res.ExceededBudget: // too complex
//	case res.Solutions == 0:                // unsolvable
//	case res.Solutions == 1:                // unique: res.Grid is the solution
//	default:                                // ambiguous
//	}
//
// Complexity: propagation is polynomial per pass; backtracking is
// exponential in the worst case, which is exactly why it is budgeted.
package solver
