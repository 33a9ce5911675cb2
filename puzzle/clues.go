package puzzle

// DeriveClues reads the run structure of a fully-known line and returns
// its ClueSequence: one Clue per maximal run of same-colored filled
// cells, in line order. Empty cells separate runs but produce no clue.
// Unknown cells are treated as Empty; callers deriving clues from a
// solution should validate completeness first (see FromSolution).
//
// Complexity: O(len(line)).
func DeriveClues(line []Cell) ClueSequence {
	var clues ClueSequence
	i := 0
	for i < len(line) {
		if !line[i].Filled() {
			i++
			continue
		}
		color := line[i]
		count := 0
		for i < len(line) && line[i] == color {
			count++
			i++
		}
		clues = append(clues, Clue{Count: count, Color: color})
	}

	return clues
}

// Trim returns a copy of rows with fully-empty border rows and columns
// removed, as upstream image-derived grids often carry blank margins.
// The input is not modified. An all-empty grid trims to its first cell.
//
// Complexity: O(W×H).
func Trim(rows [][]Cell) [][]Cell {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return rows
	}
	h, w := len(rows), len(rows[0])
	top, bottom, left, right := 0, h-1, 0, w-1

	rowEmpty := func(r int) bool {
		for _, c := range rows[r] {
			if c.Filled() {
				return false
			}
		}

		return true
	}
	colEmpty := func(c int) bool {
		for r := top; r <= bottom; r++ {
			if rows[r][c].Filled() {
				return false
			}
		}

		return true
	}

	for top < h && rowEmpty(top) {
		top++
	}
	if top == h {
		top = h - 1 // fully empty grid: keep one row
	}
	for bottom > top && rowEmpty(bottom) {
		bottom--
	}
	for left < w && colEmpty(left) {
		left++
	}
	if left == w {
		left = w - 1
	}
	for right > left && colEmpty(right) {
		right--
	}

	trimmed := make([][]Cell, 0, bottom-top+1)
	for r := top; r <= bottom; r++ {
		row := make([]Cell, right-left+1)
		copy(row, rows[r][left:right+1])
		trimmed = append(trimmed, row)
	}

	return trimmed
}

// FromSolution builds a complete Puzzle from a fully-known solution grid:
// row and column clues are derived from its runs and Reference is set to
// the grid itself, so a round trip through validation must reproduce it.
//
// Returns ErrEmptyGrid / ErrNonRectangular for bad shapes and
// ErrIncompleteSolution if any cell is Unknown.
//
// Complexity: O(W×H).
func FromSolution(rows [][]Cell) (*Puzzle, error) {
	g, err := FromCells(rows)
	if err != nil {
		return nil, err
	}
	if !g.Complete() {
		return nil, ErrIncompleteSolution
	}

	p := &Puzzle{
		Width:     g.Width,
		Height:    g.Height,
		RowClues:  make([]ClueSequence, g.Height),
		ColClues:  make([]ClueSequence, g.Width),
		Reference: g,
	}
	buf := make([]Cell, 0, g.Width)
	for r := 0; r < g.Height; r++ {
		p.RowClues[r] = DeriveClues(g.Row(r, buf))
	}
	for c := 0; c < g.Width; c++ {
		p.ColClues[c] = DeriveClues(g.Col(c, buf))
	}

	return p, nil
}
