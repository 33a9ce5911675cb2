package puzzle

import "strings"

// Grid is a Width×Height matrix of Cells, stored row-major. It is the
// mutable working state of exactly one solve attempt: solvers own their
// Grid exclusively and clone it across backtracking branches, so no
// locking is needed.
type Grid struct {
	Width, Height int
	cells         []Cell // row-major, len == Width*Height
}

// NewGrid returns a Width×Height grid with every cell Unknown.
// Complexity: O(W×H).
func NewGrid(width, height int) *Grid {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Unknown
	}

	return &Grid{Width: width, Height: height, cells: cells}
}

// FromCells builds a grid from row-major rows, deep-copying the input.
// Returns ErrEmptyGrid for zero rows/columns and ErrNonRectangular if
// any row length differs from the first.
func FromCells(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(rows[0]), len(rows)
	g := &Grid{Width: w, Height: h, cells: make([]Cell, 0, w*h)}
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// Get returns the cell at (row, col). Complexity: O(1).
func (g *Grid) Get(row, col int) Cell { return g.cells[row*g.Width+col] }

// Set overwrites the cell at (row, col). Complexity: O(1).
func (g *Grid) Set(row, col int, v Cell) { g.cells[row*g.Width+col] = v }

// Row copies row r into buf (grown as needed) and returns it.
// Passing a reusable buffer keeps line solving allocation-free.
func (g *Grid) Row(r int, buf []Cell) []Cell {
	buf = buf[:0]

	return append(buf, g.cells[r*g.Width:(r+1)*g.Width]...)
}

// Col copies column c into buf (grown as needed) and returns it.
func (g *Grid) Col(c int, buf []Cell) []Cell {
	buf = buf[:0]
	for r := 0; r < g.Height; r++ {
		buf = append(buf, g.cells[r*g.Width+c])
	}

	return buf
}

// SetRow commits newly determined values into row r: only cells that are
// currently Unknown and known in vals are written. Returns the number of
// cells committed. Complexity: O(W).
func (g *Grid) SetRow(r int, vals []Cell) int {
	changed := 0
	base := r * g.Width
	for c, v := range vals {
		if v.Known() && g.cells[base+c] == Unknown {
			g.cells[base+c] = v
			changed++
		}
	}

	return changed
}

// SetCol commits newly determined values into column c, mirroring SetRow.
// Complexity: O(H).
func (g *Grid) SetCol(c int, vals []Cell) int {
	changed := 0
	for r, v := range vals {
		if v.Known() && g.cells[r*g.Width+c] == Unknown {
			g.cells[r*g.Width+c] = v
			changed++
		}
	}

	return changed
}

// Complete reports whether every cell is determined. Complexity: O(W×H).
func (g *Grid) Complete() bool {
	for _, c := range g.cells {
		if c == Unknown {
			return false
		}
	}

	return true
}

// UnknownCount returns the number of undetermined cells.
func (g *Grid) UnknownCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Unknown {
			n++
		}
	}

	return n
}

// Clone returns a deep copy. Backtracking uses this for branch isolation:
// abandoning a branch must never corrupt its siblings.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// Equal reports cell-by-cell equality of two grids of the same shape.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}

	return true
}

// FillRatio returns the share of cells holding a color (Unknown cells
// count as unfilled). Returns 0 for an empty grid.
func (g *Grid) FillRatio() float64 {
	if len(g.cells) == 0 {
		return 0
	}
	filled := 0
	for _, c := range g.cells {
		if c.Filled() {
			filled++
		}
	}

	return float64(filled) / float64(len(g.cells))
}

// String renders the grid for debugging: '?' Unknown, '.' Empty, and the
// last decimal digit of the color ID otherwise.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for r := 0; r < g.Height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.Width; c++ {
			switch v := g.Get(r, c); {
			case v == Unknown:
				b.WriteByte('?')
			case v == Empty:
				b.WriteByte('.')
			default:
				b.WriteByte('0' + byte(int(v)%10))
			}
		}
	}

	return b.String()
}
