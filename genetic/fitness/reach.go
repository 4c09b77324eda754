package fitness

import "math"

// Outcome is the end-of-generation state of one ant relevant to scoring
type Outcome struct {
	// Distance to the target at evaluation time
	Distance float64
	// Completed is set when the ant entered the capture radius
	Completed bool
	// CompletionTick is the tick of capture, ignored unless Completed
	CompletionTick int
	// Crashed is set when the ant hit the obstacle or left the canvas
	Crashed bool
}

// ReachScorer rewards proximity, early arrival, and penalizes crashes
type ReachScorer struct {
	// Lifespan is the generation length in ticks
	Lifespan int
	// CompletionBonus scales the arrival multiplier: bonus * L / (tick + 1)
	CompletionBonus float64
	// CrashPenalty divides the score of crashed ants
	CrashPenalty float64
}

// Score computes 1/distance, +Inf when the ant sits exactly on the target
// Arrival bonus and crash penalty are independent and both apply when both flags are set
func (s ReachScorer) Score(o Outcome) float64 {
	var score float64
	if o.Distance == 0 {
		score = math.Inf(1)
	} else {
		score = 1 / o.Distance
	}

	if o.Completed {
		score *= s.CompletionBonus * float64(s.Lifespan) / float64(o.CompletionTick+1)
	}
	if o.Crashed && s.CrashPenalty != 0 {
		score /= s.CrashPenalty
	}
	return score
}
