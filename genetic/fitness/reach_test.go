package fitness

import (
	"math"
	"testing"
)

var scorer = ReachScorer{Lifespan: 300, CompletionBonus: 10, CrashPenalty: 10}

func TestReachScorer_InverseDistance(t *testing.T) {
	score := scorer.Score(Outcome{Distance: 200})
	if score != 1.0/200 {
		t.Errorf("expected %v, got %v", 1.0/200, score)
	}
}

func TestReachScorer_CompletionBonus(t *testing.T) {
	score := scorer.Score(Outcome{Distance: 5, Completed: true, CompletionTick: 59})
	expected := (1.0 / 5) * 10 * 300 / 60
	if math.Abs(score-expected) > 1e-12 {
		t.Errorf("expected %v, got %v", expected, score)
	}

	// Earlier arrival scores higher
	early := scorer.Score(Outcome{Distance: 5, Completed: true, CompletionTick: 10})
	if early <= score {
		t.Errorf("expected early arrival %v to beat %v", early, score)
	}
}

func TestReachScorer_CrashPenalty(t *testing.T) {
	score := scorer.Score(Outcome{Distance: 100, Crashed: true})
	if math.Abs(score-0.001) > 1e-15 {
		t.Errorf("expected 0.001, got %v", score)
	}
}

func TestReachScorer_BothFlags(t *testing.T) {
	score := scorer.Score(Outcome{Distance: 4, Completed: true, CompletionTick: 0, Crashed: true})
	expected := (1.0 / 4) * 10 * 300 / 1 / 10
	if math.Abs(score-expected) > 1e-12 {
		t.Errorf("expected %v, got %v", expected, score)
	}
}

func TestReachScorer_ZeroDistance(t *testing.T) {
	score := scorer.Score(Outcome{Distance: 0})
	if !math.IsInf(score, 1) {
		t.Errorf("expected +Inf, got %v", score)
	}
}

func TestNormalizeByBest(t *testing.T) {
	scores := []float64{0.5, 2, 1}
	NormalizeByBest(scores, 2)

	want := []float64{0.25, 1, 0.5}
	for i := range scores {
		if scores[i] != want[i] {
			t.Errorf("index %d: expected %v, got %v", i, want[i], scores[i])
		}
	}
}

func TestNormalizeByBest_InfiniteBest(t *testing.T) {
	scores := []float64{0.5, math.Inf(1), 3}
	NormalizeByBest(scores, math.Inf(1))

	want := []float64{0, 1, 0}
	for i := range scores {
		if scores[i] != want[i] {
			t.Errorf("index %d: expected %v, got %v", i, want[i], scores[i])
		}
	}
}

func TestNormalizeByBest_ZeroBest(t *testing.T) {
	scores := []float64{0, 0}
	NormalizeByBest(scores, 0)

	for i, s := range scores {
		if s != 1 {
			t.Errorf("index %d: expected uniform 1.0, got %v", i, s)
		}
	}
}
