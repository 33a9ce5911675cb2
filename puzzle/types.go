// Package puzzle defines core types and sentinel errors for the
// puzzle subpackage of github.com/katalvlaran/nonogrid.
package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors for puzzle construction and validation.
var (
	// ErrBadDimensions indicates negative width/height or clue slices whose
	// lengths disagree with the declared dimensions.
	ErrBadDimensions = errors.New("puzzle: clue slices must match declared dimensions")
	// ErrBadClue indicates a clue with a non-positive count or a
	// non-positive color ID.
	ErrBadClue = errors.New("puzzle: clue count and color must be positive")
	// ErrLineOverflow indicates a clue sequence whose minimal span exceeds
	// its line length; such a puzzle is malformed and is never solved.
	ErrLineOverflow = errors.New("puzzle: clue sequence does not fit in line")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("puzzle: all rows must have the same length")
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("puzzle: grid must have at least one row and one column")
	// ErrIncompleteSolution indicates a solution grid that still contains
	// Unknown cells where fully-known cells are required.
	ErrIncompleteSolution = errors.New("puzzle: solution grid contains unknown cells")
)

// Cell is the tri-state value of a single grid square.
//
//   - Unknown (-1) — not yet determined by solving.
//   - Empty   (0)  — confirmed blank (the "X" mark).
//   - 1 and up     — a color ID; a clue's Color is the Cell value its
//     run is filled with.
type Cell int

const (
	// Unknown marks a cell not yet determined.
	Unknown Cell = -1
	// Empty marks a cell confirmed blank. Color IDs start at Empty+1.
	Empty Cell = 0
)

// Known reports whether the cell has been determined (Empty or a color).
func (c Cell) Known() bool { return c != Unknown }

// Filled reports whether the cell holds a color (not Unknown, not Empty).
func (c Cell) Filled() bool { return c > Empty }

// Clue describes one expected run: Count consecutive cells of Color.
// Count must be ≥ 1 and Color must be a positive Cell value.
type Clue struct {
	Count int
	Color Cell
}

// String renders the clue in compact "3c2" form (count 3, color 2).
func (c Clue) String() string { return fmt.Sprintf("%dc%d", c.Count, int(c.Color)) }

// ClueSequence is the ordered list of clues for one line:
// left→right for rows, top→bottom for columns. An empty sequence means
// the whole line is Empty.
type ClueSequence []Clue

// MinSpan returns the minimal number of cells the sequence can occupy:
// the sum of run lengths plus one mandatory separator between each pair
// of consecutive same-color runs. Runs of different colors may abut, so
// they contribute no separator.
//
// Complexity: O(len(s)).
func (s ClueSequence) MinSpan() int {
	span := 0
	for i, c := range s {
		span += c.Count
		if i > 0 && s[i-1].Color == c.Color {
			span++
		}
	}

	return span
}

// validate checks every clue of the sequence against ErrBadClue and the
// sequence as a whole against ErrLineOverflow for a line of the given
// length. The wrapped error names the offending line for diagnostics.
func (s ClueSequence) validate(length int, kind string, index int) error {
	for _, c := range s {
		if c.Count < 1 || c.Color <= Empty {
			return fmt.Errorf("%w: %s %d has clue %s", ErrBadClue, kind, index, c)
		}
	}
	if span := s.MinSpan(); span > length {
		return fmt.Errorf("%w: %s %d needs %d cells, has %d", ErrLineOverflow, kind, index, span, length)
	}

	return nil
}
