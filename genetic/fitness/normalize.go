package fitness

import "math"

// NormalizeByBest divides every score by best in place so the best becomes 1.0
//
// Degenerate best values are guarded:
//   - best = +Inf: infinite scores map to 1.0, finite scores to 0
//   - best <= 0 or NaN: every score maps to 1.0 (uniform selection)
func NormalizeByBest(scores []float64, best float64) {
	switch {
	case math.IsInf(best, 1):
		for i, s := range scores {
			if math.IsInf(s, 1) {
				scores[i] = 1
			} else {
				scores[i] = 0
			}
		}
	case math.IsNaN(best) || best <= 0:
		for i := range scores {
			scores[i] = 1
		}
	default:
		for i, s := range scores {
			scores[i] = s / best
		}
	}
}
