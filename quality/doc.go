// Package quality grades how well-designed a puzzle is, independent of
// how hard it is. A trivially easy puzzle can still be excellent (clear
// image, balanced colors, playable clue density) and a brutally hard one
// can be badly designed (floating content, monotonous clues, unreadable
// clue columns).
//
// Eight factors, each scored 0..1, are combined with fixed weights into
// a 0–100 score and a Grade:
//
//  1. fill_ratio          — 35–65% filled is ideal
//  2. aspect_ratio        — near-square grids play better
//  3. grid_size           — sweet spot 8×8 to 25×25
//  4. color_effectiveness — every color should pull its weight
//  5. clue_variety        — a mix of run lengths beats monotony
//  6. edge_utilization    — content should reach the borders
//  7. line_balance        — mix of easy and harder lines
//  8. clue_density        — too many clues per line is unplayable
//
// Grades: ≥85 Excellent, ≥70 Good, ≥55 Fair, ≥40 Poor, else Bad.
//
// Scoring requires the solution grid (composition cannot be judged from
// clues alone) and is pure and deterministic, like everything in
// nonogrid.
package quality
