package solver

import "github.com/katalvlaran/nonogrid/puzzle"

// SolveLine solves one row or column in isolation: given the line's
// currently-known cells and its clue sequence, it returns a copy of the
// line with every cell that takes the same value in ALL consistent
// arrangements committed to that value. Cells that vary across
// arrangements stay Unknown.
//
// Returns ErrNoArrangement when no arrangement is consistent with the
// known cells — a first-class contradiction, proof that the puzzle is
// unsolvable under the current partial grid.
//
// An empty clue sequence forces the whole line Empty; a single run whose
// count equals the line length forces the whole line to its color (both
// fall out of the general scan).
//
// Rather than enumerating arrangements (their number is binomial in the
// line's slack), the scan works on prefix/suffix feasibility: a cell can
// take a value iff some transition using that value connects a reachable
// prefix state to a feasible suffix state. Two memoized tables of
// (position, clue-index) states bound the cost at O(L·K·runLength).
func SolveLine(line []puzzle.Cell, clues puzzle.ClueSequence) ([]puzzle.Cell, error) {
	if len(clues) == 0 {
		out := make([]puzzle.Cell, len(line))
		for i, v := range line {
			if v.Filled() {
				return nil, ErrNoArrangement
			}
			out[i] = puzzle.Empty
		}

		return out, nil
	}

	s := newLineSolver(line, clues)
	if !s.fit(0, 0) {
		return nil, ErrNoArrangement
	}
	s.markPossible()

	out := make([]puzzle.Cell, len(line))
	copy(out, line)
	for i := range out {
		if out[i] == puzzle.Unknown && s.seen[i] && !s.conflict[i] {
			out[i] = s.forced[i]
		}
	}

	return out, nil
}

// lineSolver holds the feasibility tables for one line.
//
// A state (pos, k) means: cells [0, pos) are fully assigned and runs
// [0, k) placed inside them. fitMemo[pos][k] answers "can clues[k:] be
// placed in line[pos:]"; reach[pos][k] answers "is (pos, k) consistent
// with the known prefix". A transition belongs to at least one complete
// arrangement exactly when it connects a reachable state to a fitting
// one.
type lineSolver struct {
	line  []puzzle.Cell
	clues puzzle.ClueSequence

	fitMemo []int8 // (pos, k) → -1 unvisited, 0 no, 1 yes
	reach   []bool // (pos, k) → prefix-reachable

	forced   []puzzle.Cell // agreed value per position (valid where seen && !conflict)
	seen     []bool        // position marked by at least one arrangement
	conflict []bool        // position admits more than one value
}

func newLineSolver(line []puzzle.Cell, clues puzzle.ClueSequence) *lineSolver {
	states := (len(line) + 1) * (len(clues) + 1)
	s := &lineSolver{
		line:     line,
		clues:    clues,
		fitMemo:  make([]int8, states),
		reach:    make([]bool, states),
		forced:   make([]puzzle.Cell, len(line)),
		seen:     make([]bool, len(line)),
		conflict: make([]bool, len(line)),
	}
	for i := range s.fitMemo {
		s.fitMemo[i] = -1
	}

	return s
}

func (s *lineSolver) idx(pos, k int) int { return pos*(len(s.clues)+1) + k }

// runEnd checks whether run k may start at pos: every covered cell must
// be Unknown or already the run's color, and a same-color successor run
// needs one Empty separator cell right after. It returns the state
// position after the run (separator included) or ok=false.
func (s *lineSolver) runEnd(pos, k int) (int, bool) {
	c := s.clues[k]
	if pos+c.Count > len(s.line) {
		return 0, false
	}
	for i := pos; i < pos+c.Count; i++ {
		if s.line[i].Known() && s.line[i] != c.Color {
			return 0, false
		}
	}

	next := pos + c.Count
	if k+1 < len(s.clues) && s.clues[k+1].Color == c.Color {
		if next >= len(s.line) || s.line[next].Filled() {
			return 0, false
		}
		next++
	}

	return next, true
}

// fit reports whether clues[k:] can be placed in line[pos:], memoized.
func (s *lineSolver) fit(pos, k int) bool {
	switch s.fitMemo[s.idx(pos, k)] {
	case 0:
		return false
	case 1:
		return true
	}

	ok := false
	if k == len(s.clues) {
		ok = true
		for i := pos; i < len(s.line); i++ {
			if s.line[i].Filled() {
				ok = false
				break
			}
		}
	} else {
		if pos < len(s.line) && !s.line[pos].Filled() {
			ok = s.fit(pos+1, k)
		}
		if !ok {
			if next, can := s.runEnd(pos, k); can {
				ok = s.fit(next, k+1)
			}
		}
	}

	if ok {
		s.fitMemo[s.idx(pos, k)] = 1
	} else {
		s.fitMemo[s.idx(pos, k)] = 0
	}

	return ok
}

// markPossible sweeps states left to right, propagating reachability and
// recording, for every transition that some complete arrangement uses,
// the values it writes. A cell ends up forced when all arrangements
// agree on its value.
func (s *lineSolver) markPossible() {
	s.reach[s.idx(0, 0)] = true
	for pos := 0; pos <= len(s.line); pos++ {
		for k := 0; k <= len(s.clues); k++ {
			if !s.reach[s.idx(pos, k)] {
				continue
			}

			// Gap: cell pos stays Empty, run index unchanged.
			if pos < len(s.line) && !s.line[pos].Filled() {
				s.reach[s.idx(pos+1, k)] = true
				if s.fit(pos+1, k) {
					s.mark(pos, puzzle.Empty)
				}
			}

			if k == len(s.clues) {
				continue
			}
			// Run k at pos, plus its separator cell when one is required.
			next, can := s.runEnd(pos, k)
			if !can {
				continue
			}
			s.reach[s.idx(next, k+1)] = true
			if !s.fit(next, k+1) {
				continue
			}
			c := s.clues[k]
			for i := pos; i < pos+c.Count; i++ {
				s.mark(i, c.Color)
			}
			if next > pos+c.Count {
				s.mark(pos+c.Count, puzzle.Empty)
			}
		}
	}
}

// mark records that position i takes value v in some arrangement.
func (s *lineSolver) mark(i int, v puzzle.Cell) {
	if s.conflict[i] {
		return
	}
	if !s.seen[i] {
		s.seen[i] = true
		s.forced[i] = v

		return
	}
	if s.forced[i] != v {
		s.conflict[i] = true
	}
}
