package quality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nonogrid/puzzle"
)

// factor weights; clue density and fill ratio dominate because they make
// or break playability and visual appeal.
var weights = map[string]float64{
	"fill_ratio":          1.5,
	"aspect_ratio":        0.8,
	"grid_size":           1.0,
	"color_effectiveness": 1.2,
	"clue_variety":        1.0,
	"edge_utilization":    1.0,
	"line_balance":        0.8,
	"clue_density":        1.5,
}

// Evaluate grades the design quality of a puzzle given its solution
// grid. Returns ErrNoSolution when solution is nil. Pure, deterministic,
// O(W×H + total clues).
func Evaluate(p *puzzle.Puzzle, solution *puzzle.Grid) (Report, error) {
	if solution == nil {
		return Report{}, ErrNoSolution
	}

	factors := make(map[string]float64, len(weights))
	var notes []string
	record := func(name string, score float64, note string) {
		factors[name] = score
		if note != "" {
			notes = append(notes, note)
		}
	}

	score, note := scoreFillRatio(p, solution)
	record("fill_ratio", score, note)
	score, note = scoreAspectRatio(p)
	record("aspect_ratio", score, note)
	score, note = scoreGridSize(p)
	record("grid_size", score, note)
	score, note = scoreColorEffectiveness(p, solution)
	record("color_effectiveness", score, note)
	score, note = scoreClueVariety(p)
	record("clue_variety", score, note)
	score, note = scoreEdgeUtilization(p, solution)
	record("edge_utilization", score, note)
	score, note = scoreLineBalance(p)
	record("line_balance", score, note)
	score, note = scoreClueDensity(p)
	record("clue_density", score, note)

	weightedSum, totalWeight := 0.0, 0.0
	for name, w := range weights {
		weightedSum += factors[name] * w
		totalWeight += w
	}
	total := math.Round(weightedSum/totalWeight*100*10) / 10

	return Report{Grade: gradeOf(total), Score: total, Factors: factors, Notes: notes}, nil
}

// scoreFillRatio: 35–65% filled is ideal; sparse and dense both penalized.
func scoreFillRatio(p *puzzle.Puzzle, solution *puzzle.Grid) (float64, string) {
	ratio := solution.FillRatio()
	switch {
	case ratio >= 0.35 && ratio <= 0.65:
		return 1.0, ""
	case ratio < 0.20:
		return ratio / 0.20 * 0.5, fmt.Sprintf("very sparse (%.0f%% filled)", ratio*100)
	case ratio < 0.35:
		return 0.5 + (ratio-0.20)/0.15*0.5, fmt.Sprintf("sparse (%.0f%% filled)", ratio*100)
	case ratio > 0.80:
		return math.Max(0.3, 1.0-(ratio-0.80)/0.20), fmt.Sprintf("very dense (%.0f%% filled)", ratio*100)
	default: // 0.65–0.80
		return 1.0 - (ratio-0.65)/0.15*0.3, ""
	}
}

// scoreAspectRatio: the closer to square, the better.
func scoreAspectRatio(p *puzzle.Puzzle) (float64, string) {
	long := float64(max(p.Width, p.Height))
	short := float64(min(p.Width, p.Height))
	if short == 0 {
		return 0.3, "degenerate aspect ratio"
	}
	ratio := long / short
	switch {
	case ratio <= 1.5:
		return 1.0, ""
	case ratio <= 2.0:
		return 1.0 - (ratio-1.5)/0.5*0.2, ""
	case ratio <= 3.0:
		return 0.8 - (ratio-2.0)*0.3, fmt.Sprintf("elongated aspect ratio (%.1f:1)", ratio)
	default:
		return math.Max(0.3, 0.5-(ratio-3.0)/2.0*0.2), fmt.Sprintf("very elongated aspect ratio (%.1f:1)", ratio)
	}
}

// scoreGridSize: 8×8 to 25×25 is the sweet spot.
func scoreGridSize(p *puzzle.Puzzle) (float64, string) {
	minDim := min(p.Width, p.Height)
	maxDim := max(p.Width, p.Height)
	switch {
	case minDim < 5:
		return 0.3, fmt.Sprintf("very small grid (%dx%d)", p.Width, p.Height)
	case minDim < 8:
		return 0.5 + float64(minDim-5)/3*0.3, fmt.Sprintf("small grid (%dx%d)", p.Width, p.Height)
	case maxDim > 35:
		return 0.4, fmt.Sprintf("very large grid (%dx%d)", p.Width, p.Height)
	case maxDim > 25:
		return 0.7 - float64(maxDim-25)/10*0.3, fmt.Sprintf("large grid (%dx%d)", p.Width, p.Height)
	default:
		return 1.0, ""
	}
}

// scoreColorEffectiveness: every color should contribute meaningfully;
// near-unused colors and single-color dominance are penalized.
func scoreColorEffectiveness(p *puzzle.Puzzle, solution *puzzle.Grid) (float64, string) {
	colors := p.Colors()
	if len(colors) <= 1 {
		return 0.5, "single color puzzle"
	}

	counts := make(map[puzzle.Cell]int, len(colors))
	totalFilled := 0
	for r := 0; r < solution.Height; r++ {
		for c := 0; c < solution.Width; c++ {
			if v := solution.Get(r, c); v.Filled() {
				counts[v]++
				totalFilled++
			}
		}
	}
	if totalFilled == 0 {
		return 0.3, "no filled cells"
	}

	tinyColors := 0
	maxRatio := 0.0
	for _, n := range counts {
		ratio := float64(n) / float64(totalFilled)
		if ratio < 0.03 && n < 5 {
			tinyColors++
		}
		if ratio > maxRatio {
			maxRatio = ratio
		}
	}

	score := 1.0
	note := ""
	if tinyColors > 0 {
		score -= 0.15 * float64(min(tinyColors, 3)) / 3
		note = fmt.Sprintf("%d colors with minimal use", tinyColors)
	}
	switch {
	case maxRatio > 0.85:
		note = joinNote(note, fmt.Sprintf("one color dominates (%.0f%%)", maxRatio*100))
	case maxRatio > 0.75:
		note = joinNote(note, fmt.Sprintf("color imbalance (%.0f%% from one)", maxRatio*100))
	}
	if maxRatio > 0.75 {
		score -= (maxRatio - 0.75) / 0.25 * 0.3
	}

	// Bonus when every color sits in the 10–60% band.
	balanced := true
	for _, n := range counts {
		ratio := float64(n) / float64(totalFilled)
		if ratio < 0.10 || ratio > 0.60 {
			balanced = false
			break
		}
	}
	if balanced {
		score = math.Min(1.0, score+0.1)
	}

	return math.Max(0.2, score), note
}

// scoreClueVariety: a mix of run lengths solves better than monotony.
func scoreClueVariety(p *puzzle.Puzzle) (float64, string) {
	var lengths []float64
	unique := make(map[int]struct{})
	maxLen := 0
	for _, seq := range append(append([]puzzle.ClueSequence{}, p.RowClues...), p.ColClues...) {
		for _, c := range seq {
			lengths = append(lengths, float64(c.Count))
			unique[c.Count] = struct{}{}
			if c.Count > maxLen {
				maxLen = c.Count
			}
		}
	}
	if len(lengths) == 0 {
		return 0.5, "no clues"
	}

	switch {
	case len(unique) == 1:
		return 0.3, fmt.Sprintf("all clues are length %d", maxLen)
	case len(unique) <= 2 && maxLen <= 2:
		return 0.5, "limited clue variety (all short)"
	case maxLen <= 2:
		return 0.6, "no long clues"
	}

	avg := mean(lengths)
	cv := 0.0
	if avg > 0 {
		cv = stdev(lengths) / avg
	}
	switch {
	case cv < 0.3:
		return 0.7, "low clue variety"
	case cv > 1.5:
		return 0.8, ""
	default:
		return 1.0, ""
	}
}

// scoreEdgeUtilization: content should reach the borders, not float in
// an empty frame.
func scoreEdgeUtilization(p *puzzle.Puzzle, solution *puzzle.Grid) (float64, string) {
	var edgeFilled, edgeTotal, centerFilled, centerTotal int
	for r := 0; r < solution.Height; r++ {
		for c := 0; c < solution.Width; c++ {
			isEdge := r == 0 || r == solution.Height-1 || c == 0 || c == solution.Width-1
			filled := solution.Get(r, c).Filled()
			if isEdge {
				edgeTotal++
				if filled {
					edgeFilled++
				}
			} else {
				centerTotal++
				if filled {
					centerFilled++
				}
			}
		}
	}
	if edgeTotal == 0 {
		return 1.0, ""
	}

	edgeRatio := float64(edgeFilled) / float64(edgeTotal)
	centerRatio := 0.0
	if centerTotal > 0 {
		centerRatio = float64(centerFilled) / float64(centerTotal)
	}

	switch {
	case edgeRatio < 0.1 && centerRatio > 0.3:
		return 0.5, "content does not reach edges (floating)"
	case edgeRatio < 0.2 && centerRatio > edgeRatio*2:
		return 0.7, "sparse edges"
	}

	balance := edgeRatio
	if centerRatio > 0 {
		balance = math.Min(edgeRatio/centerRatio, centerRatio/edgeRatio)
	}

	return math.Min(1.0, 0.6+balance*0.4), ""
}

// scoreLineBalance: a good puzzle mixes trivial and complex lines.
func scoreLineBalance(p *puzzle.Puzzle) (float64, string) {
	var complexities []float64
	maxComplexity := 0
	for _, seq := range append(append([]puzzle.ClueSequence{}, p.RowClues...), p.ColClues...) {
		complexities = append(complexities, float64(len(seq)))
		if len(seq) > maxComplexity {
			maxComplexity = len(seq)
		}
	}
	if len(complexities) == 0 || maxComplexity == 0 {
		return 0.5, "empty puzzle"
	}

	trivial, complexLines := 0, 0
	for _, c := range complexities {
		if c <= 1 {
			trivial++
		}
		if c >= 4 {
			complexLines++
		}
	}
	trivialRatio := float64(trivial) / float64(len(complexities))
	complexRatio := float64(complexLines) / float64(len(complexities))

	score := 1.0
	note := ""
	switch {
	case trivialRatio > 0.5:
		score -= 0.3
		note = fmt.Sprintf("%.0f%% trivial lines", trivialRatio*100)
	case trivialRatio > 0.3:
		score -= 0.1
	}
	if complexRatio > 0.1 && trivialRatio < 0.4 {
		score = math.Min(1.0, score+0.1)
	}
	if len(complexities) > 1 {
		avg := mean(complexities)
		if variance(complexities) < 0.5 && avg > 1 {
			score -= 0.15
			note = joinNote(note, "monotonous line complexity")
		}
	}

	return math.Max(0.3, score), note
}

// scoreClueDensity: lines with too many clue segments are unplayable UI.
func scoreClueDensity(p *puzzle.Puzzle) (float64, string) {
	maxClues, crowded, totalLines := 0, 0, 0
	for _, seq := range append(append([]puzzle.ClueSequence{}, p.RowClues...), p.ColClues...) {
		totalLines++
		if len(seq) > maxClues {
			maxClues = len(seq)
		}
		if len(seq) >= 10 {
			crowded++
		}
	}
	if totalLines == 0 {
		return 0.5, "no clues"
	}

	var score float64
	note := ""
	switch {
	case maxClues <= 8:
		score = 1.0
	case maxClues <= 10:
		score = 0.95
	case maxClues <= 12:
		score, note = 0.85, fmt.Sprintf("dense clues (max %d/line)", maxClues)
	case maxClues <= 15:
		score, note = 0.65, fmt.Sprintf("very dense clues (max %d/line)", maxClues)
	case maxClues <= 20:
		score, note = 0.4, fmt.Sprintf("overcrowded clues (max %d/line)", maxClues)
	default:
		score, note = 0.2, fmt.Sprintf("unplayable clue density (max %d/line)", maxClues)
	}

	manyRatio := float64(crowded) / float64(totalLines)
	if manyRatio > 0.3 && maxClues > 10 {
		score *= 0.9
		note = joinNote(note, fmt.Sprintf("%.0f%% lines have 10+ clues", manyRatio*100))
	}

	return math.Max(0.1, score), note
}

func gradeOf(score float64) Grade {
	switch {
	case score >= 85:
		return Excellent
	case score >= 70:
		return Good
	case score >= 55:
		return Fair
	case score >= 40:
		return Poor
	default:
		return Bad
	}
}

func joinNote(a, b string) string {
	if a == "" {
		return b
	}

	return a + "; " + b
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// variance is the sample variance (n−1 denominator).
func variance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}

	return sum / float64(len(xs)-1)
}

func stdev(xs []float64) float64 { return math.Sqrt(variance(xs)) }
