package simulation

import (
	"context"
	"errors"
	"testing"

	"github.com/lixenwraith/antsugar/colony"
	"github.com/lixenwraith/antsugar/genetic/tracking"
	"github.com/lixenwraith/antsugar/vmath"
)

func shortWorld() colony.World {
	w := colony.DefaultWorld()
	w.Lifespan = 30
	w.PopulationSize = 20
	return w
}

func TestNew_RejectsInvalidWorld(t *testing.T) {
	w := shortWorld()
	w.Lifespan = 0
	if _, err := New(w); !errors.Is(err, colony.ErrInvalidWorld) {
		t.Errorf("expected ErrInvalidWorld, got %v", err)
	}
}

func TestNew_InitialState(t *testing.T) {
	w := shortWorld()
	s, err := New(w, WithSeed(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Generation() != 1 || s.Tick() != 0 {
		t.Errorf("expected generation 1 tick 0, got %d/%d", s.Generation(), s.Tick())
	}
	if s.Target() != w.Target {
		t.Errorf("expected target %+v, got %+v", w.Target, s.Target())
	}
	if s.Population().Len() != w.PopulationSize {
		t.Errorf("expected %d agents, got %d", w.PopulationSize, s.Population().Len())
	}
	if _, ok := s.LastReport(); ok {
		t.Error("expected no report before the first generation ends")
	}
}

func TestStep_GenerationRollover(t *testing.T) {
	w := shortWorld()
	var reports []Report
	s, _ := New(w, WithSeed(2), WithObserver(func(r Report) {
		reports = append(reports, r)
	}))

	for i := 0; i < w.Lifespan-1; i++ {
		if err := s.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if s.Tick() != w.Lifespan-1 || len(reports) != 0 {
		t.Fatalf("expected tick %d and no report, got tick %d reports %d", w.Lifespan-1, s.Tick(), len(reports))
	}

	if err := s.Step(); err != nil {
		t.Fatalf("final step: %v", err)
	}
	if s.Tick() != 0 || s.Generation() != 2 {
		t.Errorf("expected tick 0 generation 2, got %d/%d", s.Tick(), s.Generation())
	}
	if len(reports) != 1 || reports[0].Generation != 1 {
		t.Fatalf("expected one report for generation 1, got %+v", reports)
	}
	if s.Population().Len() != w.PopulationSize {
		t.Errorf("population size changed to %d", s.Population().Len())
	}

	m := reports[0].Metrics
	if m[tracking.MetricGeneration] != 1 {
		t.Errorf("expected generation metric 1, got %v", m[tracking.MetricGeneration])
	}
	if _, ok := m["avg_"+tracking.MetricActive]; !ok {
		t.Error("expected per-tick active average in metrics")
	}
	if s.History().Len() != 1 {
		t.Errorf("expected 1 history entry, got %d", s.History().Len())
	}
}

func TestStep_PausedFreezesTick(t *testing.T) {
	s, _ := New(shortWorld(), WithSeed(3))

	_ = s.Step()
	if !s.TogglePause() {
		t.Fatal("expected paused after toggle")
	}
	before := s.Views()
	for i := 0; i < 5; i++ {
		_ = s.Step()
	}
	if s.Tick() != 1 {
		t.Errorf("expected tick to stay at 1 while paused, got %d", s.Tick())
	}
	after := s.Views()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("agent %d moved while paused", i)
		}
	}

	s.SetPaused(false)
	_ = s.Step()
	if s.Tick() != 2 {
		t.Errorf("expected tick 2 after resume, got %d", s.Tick())
	}
}

func TestReset_IsTotal(t *testing.T) {
	w := shortWorld()
	s, _ := New(w, WithSeed(4))
	target := vmath.Vec2F{X: 100, Y: 100}
	s.SetTarget(target)

	if _, err := s.RunGeneration(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 7; i++ {
		_ = s.Step()
	}
	old := s.Population()

	s.Reset()

	if s.Generation() != 1 || s.Tick() != 0 {
		t.Errorf("expected generation 1 tick 0 after reset, got %d/%d", s.Generation(), s.Tick())
	}
	if s.Population() == old {
		t.Error("expected a fresh population after reset")
	}
	if s.History().Len() != 0 {
		t.Error("expected history cleared after reset")
	}
	if s.Target() != target {
		t.Errorf("expected target kept at %+v, got %+v", target, s.Target())
	}
	for _, v := range s.Views() {
		if v.Pos != w.Spawn {
			t.Fatalf("expected agents at spawn after reset, got %+v", v.Pos)
		}
	}
}

func TestSetTarget_Clamped(t *testing.T) {
	s, _ := New(shortWorld(), WithSeed(5))
	s.SetTarget(vmath.Vec2F{X: -40, Y: 9000})
	if s.Target() != (vmath.Vec2F{X: 0, Y: 600}) {
		t.Errorf("expected clamped target (0,600), got %+v", s.Target())
	}
}

func TestRun_CountAndCancel(t *testing.T) {
	w := shortWorld()
	s, _ := New(w, WithSeed(6))

	if err := s.Run(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Generation() != 4 {
		t.Errorf("expected generation 4 after 3 runs, got %d", s.Generation())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Run(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunGeneration_IgnoresPause(t *testing.T) {
	s, _ := New(shortWorld(), WithSeed(7))
	s.SetPaused(true)

	r, err := s.RunGeneration()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Generation != 1 || s.Generation() != 2 {
		t.Errorf("expected report for generation 1 and generation 2 in flight, got %d/%d", r.Generation, s.Generation())
	}
	if last, ok := s.LastReport(); !ok || last.Generation != 1 {
		t.Errorf("expected last report for generation 1, got %+v", last)
	}
}

func TestProgress(t *testing.T) {
	w := shortWorld()
	s, _ := New(w, WithSeed(8))
	for i := 0; i < 15; i++ {
		_ = s.Step()
	}
	if p := s.Progress(); p != 0.5 {
		t.Errorf("expected progress 0.5, got %v", p)
	}
}

func TestWithHistoryCapacity(t *testing.T) {
	s, _ := New(shortWorld(), WithSeed(9), WithHistoryCapacity(2))
	if err := s.Run(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.History().Len() != 2 {
		t.Errorf("expected history capped at 2, got %d", s.History().Len())
	}
}

func TestStep_ReproduceFailureStopsRun(t *testing.T) {
	w := shortWorld()
	s, _ := New(w, WithSeed(6))
	s.reproduce = func(*colony.Population) error { return colony.ErrEmptyPool }

	var err error
	for i := 0; i < w.Lifespan && err == nil; i++ {
		err = s.Step()
	}
	if !errors.Is(err, colony.ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool at generation end, got %v", err)
	}
	if s.Tick() != w.Lifespan || s.Generation() != 1 {
		t.Fatalf("expected stop at tick %d of generation 1, got %d/%d", w.Lifespan, s.Tick(), s.Generation())
	}

	for i := 0; i < 3; i++ {
		if err := s.Step(); !errors.Is(err, colony.ErrEmptyPool) {
			t.Fatalf("step after failure %d: expected ErrEmptyPool, got %v", i, err)
		}
	}
	if _, err := s.RunGeneration(); !errors.Is(err, colony.ErrEmptyPool) {
		t.Errorf("expected RunGeneration to report the failure, got %v", err)
	}
	if s.Tick() != w.Lifespan {
		t.Errorf("expected tick to stay at %d, got %d", w.Lifespan, s.Tick())
	}
	if _, ok := s.LastReport(); ok {
		t.Error("expected no report for a failed generation")
	}

	s.reproduce = (*colony.Population).Reproduce
	s.Reset()
	if s.Err() != nil {
		t.Fatalf("expected Reset to clear the failure, got %v", s.Err())
	}
	if _, err := s.RunGeneration(); err != nil {
		t.Fatalf("expected recovery after Reset, got %v", err)
	}
	if s.Generation() != 2 {
		t.Errorf("expected generation 2, got %d", s.Generation())
	}
}
