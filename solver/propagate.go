package solver

import "github.com/katalvlaran/nonogrid/puzzle"

// Propagate runs SolveLine over every row (top→bottom) then every column
// (left→right), committing newly forced cells into g, and repeats until:
//
//   - StateSolved        — no Unknown cells remain,
//   - StateStalled       — a full pass committed nothing (cross-line
//     information is needed; StuckCount is incremented once per stall),
//   - StateContradiction — some line admits no arrangement.
//
// Every committed cell increments m.TotalSteps. Propagate never guesses;
// what happens after a stall is the caller's decision.
//
// The line order is fixed, so the committed cells — and therefore the
// metrics — are identical across runs. Terminates because every
// non-final pass commits at least one of W×H cells.
func Propagate(p *puzzle.Puzzle, g *puzzle.Grid, m *Metrics) State {
	rowBuf := make([]puzzle.Cell, 0, p.Width)
	colBuf := make([]puzzle.Cell, 0, p.Height)

	for {
		changed := 0

		for r := 0; r < p.Height; r++ {
			rowBuf = g.Row(r, rowBuf)
			solved, err := SolveLine(rowBuf, p.RowClues[r])
			if err != nil {
				return StateContradiction
			}
			n := g.SetRow(r, solved)
			m.TotalSteps += n
			changed += n
		}

		for c := 0; c < p.Width; c++ {
			colBuf = g.Col(c, colBuf)
			solved, err := SolveLine(colBuf, p.ColClues[c])
			if err != nil {
				return StateContradiction
			}
			n := g.SetCol(c, solved)
			m.TotalSteps += n
			changed += n
		}

		if g.Complete() {
			return StateSolved
		}
		if changed == 0 {
			m.StuckCount++

			return StateStalled
		}
	}
}
