// Package difficulty defines the score model and tier buckets for the
// difficulty subpackage of github.com/katalvlaran/nonogrid.
package difficulty

import (
	"math"

	"github.com/katalvlaran/nonogrid/puzzle"
	"github.com/katalvlaran/nonogrid/solver"
)

// FillFloor is the lower clamp of the fill-ratio factor: grids that are
// almost completely empty or completely full are heavily discounted but
// never zero the whole product.
const FillFloor = 0.1

// Tier is a difficulty bucket derived from the numeric score.
type Tier int

const (
	Easy Tier = iota
	Medium
	Hard
	Challenging
	Expert
	Master
)

// String implements fmt.Stringer for Tier.
func (t Tier) String() string {
	switch t {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Challenging:
		return "challenging"
	case Expert:
		return "expert"
	case Master:
		return "master"
	default:
		return "unknown"
	}
}

// ScoreReport is the full difficulty analysis of one puzzle: the raw
// score (rounded to 2 decimals), its tier bucket, and the per-factor
// breakdown for tuning and explainability.
type ScoreReport struct {
	Score   float64
	Tier    Tier
	Factors map[string]float64
}

// Score computes the multiplicative difficulty score for a puzzle from
// its shape, its solution grid, and the metrics of the solve that proved
// it unique. Pure and deterministic: no clock, no randomness, no global
// state.
//
// solution may be nil (e.g. when estimating from metrics alone); the
// fill factor then falls back to 0.5, matching an exactly unknown fill.
//
// Factors:
//
//	size          = W·H / 100                        (10×10 ⇒ 1.0)
//	fill_ratio    = clamp(1 − 2·|fill − 0.5|, FillFloor, 1.0)
//	colors        = 1 + (numColors − 1) · 0.1
//	fragmentation = avg clues per line / 3
//	technique     = 0.5 / 2.0 / 4.0 for levels 1 / 2 / 3
//	stuck         = 1 + StuckCount · 0.3
//	backtrack     = 1 + BacktrackCount · 0.5 + BacktrackDepth · 0.2
//
// Complexity: O(total clues).
func Score(p *puzzle.Puzzle, solution *puzzle.Grid, m solver.Metrics) ScoreReport {
	factors := make(map[string]float64, 7)

	sizeFactor := float64(p.Width*p.Height) / 100
	factors["size"] = sizeFactor

	fillFactor := 0.5
	if solution != nil {
		fillFactor = clamp(1-2*math.Abs(solution.FillRatio()-0.5), FillFloor, 1.0)
	}
	factors["fill_ratio"] = fillFactor

	colorFactor := 1 + float64(p.NumColors()-1)*0.1
	if p.NumColors() == 0 {
		colorFactor = 1
	}
	factors["colors"] = colorFactor

	fragFactor := 0.0
	if lines := p.Width + p.Height; lines > 0 {
		fragFactor = float64(p.TotalClues()) / float64(lines) / 3
	}
	factors["fragmentation"] = fragFactor

	techniqueFactor := 1.0
	switch m.TechniqueLevel() {
	case solver.TechniquePropagation:
		techniqueFactor = 0.5
	case solver.TechniqueCrossReference:
		techniqueFactor = 2.0
	case solver.TechniqueBacktracking:
		techniqueFactor = 4.0
	}
	factors["technique"] = techniqueFactor

	stuckFactor := 1 + float64(m.StuckCount)*0.3
	factors["stuck"] = stuckFactor

	backtrackFactor := 1 + float64(m.BacktrackCount)*0.5 + float64(m.BacktrackDepth)*0.2
	factors["backtrack"] = backtrackFactor

	raw := sizeFactor * fillFactor * colorFactor * fragFactor *
		techniqueFactor * stuckFactor * backtrackFactor * 10

	score := math.Round(raw*100) / 100

	return ScoreReport{Score: score, Tier: TierOf(score), Factors: factors}
}

// TierOf maps a score onto its bucket; lower bounds are inclusive.
func TierOf(score float64) Tier {
	switch {
	case score < 10:
		return Easy
	case score < 20:
		return Medium
	case score < 50:
		return Hard
	case score < 200:
		return Challenging
	case score < 600:
		return Expert
	default:
		return Master
	}
}

// EstimateTier gives a fast structural estimate without solving — useful
// for pre-filtering large candidate batches. Far less accurate than
// Score; a solved estimate always wins.
func EstimateTier(p *puzzle.Puzzle) Tier {
	avgClues := 0.0
	if lines := p.Width + p.Height; lines > 0 {
		avgClues = float64(p.TotalClues()) / float64(lines)
	}
	structural := float64(p.Width*p.Height) * (0.5 + avgClues*0.2)

	switch {
	case structural < 50:
		return Easy
	case structural < 100:
		return Medium
	case structural < 200:
		return Hard
	default:
		return Expert
	}
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
