package puzzle

import (
	"fmt"
	"sort"
)

// Puzzle is a complete nonogram definition: dimensions, one ClueSequence
// per row and per column, and an optional Reference solution used for
// upstream data-integrity checks (a mismatch between the found unique
// solution and Reference means the clues were derived incorrectly).
//
// A Puzzle is immutable once built; solvers never mutate it.
type Puzzle struct {
	Width, Height int
	RowClues      []ClueSequence // len == Height, top→bottom
	ColClues      []ClueSequence // len == Width, left→right
	Reference     *Grid          // optional expected solution
}

// String renders a short one-line description for logs and test output.
func (p *Puzzle) String() string {
	return fmt.Sprintf("Puzzle(%dx%d, %d colors)", p.Width, p.Height, p.NumColors())
}

// Validate checks the puzzle's structural invariants:
//
//   - non-negative dimensions and clue slices of matching lengths
//     (ErrBadDimensions),
//   - every clue has positive count and color (ErrBadClue),
//   - every line's MinSpan fits its length (ErrLineOverflow),
//   - a Reference grid, when present, matches the declared dimensions
//     (ErrBadDimensions).
//
// A failure here means the puzzle is malformed and must be rejected
// before solving; it is distinct from every validation outcome.
// Complexity: O(W + H + total clues).
func (p *Puzzle) Validate() error {
	if p.Width < 0 || p.Height < 0 ||
		len(p.RowClues) != p.Height || len(p.ColClues) != p.Width {
		return fmt.Errorf("%w: %dx%d with %d row and %d col sequences",
			ErrBadDimensions, p.Width, p.Height, len(p.RowClues), len(p.ColClues))
	}
	for i, seq := range p.RowClues {
		if err := seq.validate(p.Width, "row", i); err != nil {
			return err
		}
	}
	for i, seq := range p.ColClues {
		if err := seq.validate(p.Height, "col", i); err != nil {
			return err
		}
	}
	if p.Reference != nil && (p.Reference.Width != p.Width || p.Reference.Height != p.Height) {
		return fmt.Errorf("%w: reference grid is %dx%d",
			ErrBadDimensions, p.Reference.Width, p.Reference.Height)
	}

	return nil
}

// Colors returns the distinct color IDs appearing in any clue, in
// ascending order. Deterministic by construction. Complexity:
// O(total clues + k·log k).
func (p *Puzzle) Colors() []Cell {
	seen := make(map[Cell]struct{})
	for _, seq := range p.RowClues {
		for _, c := range seq {
			seen[c.Color] = struct{}{}
		}
	}
	for _, seq := range p.ColClues {
		for _, c := range seq {
			seen[c.Color] = struct{}{}
		}
	}
	colors := make([]Cell, 0, len(seen))
	for c := range seen {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })

	return colors
}

// NumColors returns the number of distinct clue colors.
func (p *Puzzle) NumColors() int { return len(p.Colors()) }

// AllCluesEmpty reports whether every row and column sequence is empty —
// a degenerate puzzle whose only "solution" is an all-blank grid.
func (p *Puzzle) AllCluesEmpty() bool {
	for _, seq := range p.RowClues {
		if len(seq) > 0 {
			return false
		}
	}
	for _, seq := range p.ColClues {
		if len(seq) > 0 {
			return false
		}
	}

	return true
}

// TotalClues returns the number of clues across all rows and columns.
func (p *Puzzle) TotalClues() int {
	n := 0
	for _, seq := range p.RowClues {
		n += len(seq)
	}
	for _, seq := range p.ColClues {
		n += len(seq)
	}

	return n
}
