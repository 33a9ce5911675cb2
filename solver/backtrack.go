package solver

import "github.com/katalvlaran/nonogrid/puzzle"

// searcher holds the state of one bounded backtracking search. It exists
// for exactly one Solve call; nothing is shared across puzzles.
type searcher struct {
	p    *puzzle.Puzzle
	opts Options
	m    *Metrics

	colors []puzzle.Cell           // sorted distinct clue colors
	rowHas []map[puzzle.Cell]bool  // color appears in RowClues[r]
	colHas []map[puzzle.Cell]bool  // color appears in ColClues[c]

	solutions []*puzzle.Grid
	exceeded  bool // MaxBacktracks spent
	cancelled bool // caller's context fired
}

func newSearcher(p *puzzle.Puzzle, opts Options, m *Metrics) *searcher {
	s := &searcher{
		p:      p,
		opts:   opts,
		m:      m,
		colors: p.Colors(),
		rowHas: make([]map[puzzle.Cell]bool, p.Height),
		colHas: make([]map[puzzle.Cell]bool, p.Width),
	}
	for r, seq := range p.RowClues {
		s.rowHas[r] = make(map[puzzle.Cell]bool, len(seq))
		for _, c := range seq {
			s.rowHas[r][c.Color] = true
		}
	}
	for c, seq := range p.ColClues {
		s.colHas[c] = make(map[puzzle.Cell]bool, len(seq))
		for _, cl := range seq {
			s.colHas[c][cl.Color] = true
		}
	}

	return s
}

// halted reports whether the search must stop: enough solutions found,
// budget spent, or the caller cancelled.
func (s *searcher) halted() bool {
	return s.exceeded || s.cancelled || len(s.solutions) >= s.opts.MaxSolutions
}

// search propagates a freshly-guessed grid, records a solution or
// abandons a contradiction, and branches again on a stall. g is owned by
// this call: the caller cloned it and never touches it afterwards.
func (s *searcher) search(g *puzzle.Grid, depth int) {
	switch Propagate(s.p, g, s.m) {
	case StateContradiction:
		return
	case StateSolved:
		s.solutions = append(s.solutions, g)

		return
	case StateStalled:
	}
	s.branch(g, depth)
}

// branch is one branch point: it charges the budget, probes the caller's
// context, picks the guess cell, and tries each feasible value on a clone
// of g. Stops as soon as halted() — finding MaxSolutions solutions ends
// the search immediately, it never enumerates further.
func (s *searcher) branch(g *puzzle.Grid, depth int) {
	if s.halted() {
		return
	}

	s.m.BacktrackCount++
	if depth+1 > s.m.BacktrackDepth {
		s.m.BacktrackDepth = depth + 1
	}
	if s.m.BacktrackCount > s.opts.MaxBacktracks {
		s.exceeded = true

		return
	}
	if s.m.BacktrackCount%s.opts.CancelEvery == 0 {
		select {
		case <-s.opts.Ctx.Done():
			s.cancelled = true

			return
		default:
		}
	}

	row, col, candidates := s.pickCell(g)
	for _, v := range candidates {
		child := g.Clone()
		child.Set(row, col, v)
		s.search(child, depth+1)
		if s.halted() {
			return
		}
	}
}

// pickCell selects the Unknown cell with the fewest locally feasible
// values — Empty plus every color present in both its row's and its
// column's clues — breaking ties in row-major order. The heuristic is
// fixed and value order is Empty-then-ascending-color, so repeated runs
// explore the identical tree and report identical metrics.
func (s *searcher) pickCell(g *puzzle.Grid) (bestRow, bestCol int, candidates []puzzle.Cell) {
	best := -1
	for r := 0; r < s.p.Height; r++ {
		for c := 0; c < s.p.Width; c++ {
			if g.Get(r, c) != puzzle.Unknown {
				continue
			}
			n := 1 // Empty is always locally feasible
			for _, color := range s.colors {
				if s.rowHas[r][color] && s.colHas[c][color] {
					n++
				}
			}
			if best == -1 || n < best {
				best, bestRow, bestCol = n, r, c
			}
		}
	}

	candidates = make([]puzzle.Cell, 0, best)
	candidates = append(candidates, puzzle.Empty)
	for _, color := range s.colors {
		if s.rowHas[bestRow][color] && s.colHas[bestCol][color] {
			candidates = append(candidates, color)
		}
	}

	return bestRow, bestCol, candidates
}
