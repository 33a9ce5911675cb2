// Package quality defines grades and sentinel errors for the quality
// subpackage of github.com/katalvlaran/nonogrid.
package quality

import "errors"

// ErrNoSolution is returned when a puzzle has no solution grid to grade;
// composition factors are meaningless without one.
var ErrNoSolution = errors.New("quality: puzzle needs a solution grid for grading")

// Grade is the design-quality bucket of a puzzle.
type Grade int

const (
	Excellent Grade = iota // 85–100
	Good                   // 70–84
	Fair                   // 55–69
	Poor                   // 40–54
	Bad                    // 0–39
)

// String implements fmt.Stringer for Grade.
func (g Grade) String() string {
	switch g {
	case Excellent:
		return "excellent"
	case Good:
		return "good"
	case Fair:
		return "fair"
	case Poor:
		return "poor"
	case Bad:
		return "bad"
	default:
		return "unknown"
	}
}

// Report is the full quality analysis: the weighted 0–100 score, its
// grade, each factor's raw 0..1 score, and human-readable observations
// in factor order (deterministic).
type Report struct {
	Grade   Grade
	Score   float64
	Factors map[string]float64
	Notes   []string
}
