package simulation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/antsugar/colony"
	"github.com/lixenwraith/antsugar/genetic/tracking"
	"github.com/lixenwraith/antsugar/parameter"
	"github.com/lixenwraith/antsugar/vmath"
)

// Report summarizes one finished generation
type Report struct {
	Generation     int
	BestFitness    float64
	AverageFitness float64
	SuccessRate    float64
	Completed      int
	Crashed        int
	// Active ants neither reached the sugar nor crashed by the end of the lifespan
	Active int
	// FirstArrival is the earliest capture tick, -1 when no ant arrived
	FirstArrival int
	Elapsed      time.Duration
	Metrics      tracking.MetricBundle
}

// Observer is notified after each generation is evaluated and replaced
type Observer func(Report)

// Option configures a Simulation
type Option func(*Simulation)

// WithSeed fixes the random source, 0 keeps it unseeded
func WithSeed(seed uint64) Option {
	return func(s *Simulation) {
		s.seed = seed
	}
}

// WithObserver registers fn for generation reports
func WithObserver(fn Observer) Option {
	return func(s *Simulation) {
		s.observers = append(s.observers, fn)
	}
}

// WithHistoryCapacity bounds retained generation statistics
func WithHistoryCapacity(n int) Option {
	return func(s *Simulation) {
		s.historyCap = n
	}
}

// Simulation is the generation driver: it owns the tick counter, generation count,
// pause state and target, and calls into the population on a fixed cadence
// Not safe for concurrent use; frontends call it from a single loop goroutine
type Simulation struct {
	world      *colony.World
	rng        *rand.Rand
	seed       uint64
	population *colony.Population

	tick       int
	generation int
	paused     bool
	target     vmath.Vec2F
	started    time.Time

	collector   *tracking.Collector
	tickMetrics tracking.MetricBundle
	history     *tracking.History
	historyCap  int
	last        *Report

	observers []Observer

	reproduce func(*colony.Population) error
	// failed holds the error that stopped the run; cleared by Reset
	failed error
}

// New validates w and builds generation 1 with the target at w.Target
func New(w colony.World, opts ...Option) (*Simulation, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		world:       &w,
		historyCap:  parameter.HistoryCapacity,
		collector:   tracking.NewCollector(),
		tickMetrics: make(tracking.MetricBundle, 3),
		reproduce:   (*colony.Population).Reproduce,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.seed == 0 {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		s.rng = rand.New(rand.NewPCG(s.seed, s.seed))
	}

	s.target = s.world.Bounds.Clamp(w.Target)
	s.Reset()
	return s, nil
}

// Reset discards population, tick counter, generation count, history and any failure
// The target position is kept
func (s *Simulation) Reset() {
	s.failed = nil
	s.population = colony.NewPopulation(s.world, s.rng)
	s.tick = 0
	s.generation = 1
	s.started = time.Now()
	s.collector.Reset()
	s.history = tracking.NewHistory(s.historyCap)
	s.last = nil
}

// Step advances every agent one tick unless paused
// At the end of the lifespan the generation is evaluated and reproduced
// Once reproduction fails every later call returns that error until Reset
func (s *Simulation) Step() error {
	if s.paused {
		return nil
	}
	return s.advance()
}

func (s *Simulation) advance() error {
	if s.failed != nil {
		return s.failed
	}
	s.population.Update(s.target, s.tick)

	completed, crashed := s.population.Counts()
	s.tickMetrics[tracking.MetricCompleted] = float64(completed)
	s.tickMetrics[tracking.MetricCrashed] = float64(crashed)
	s.tickMetrics[tracking.MetricActive] = float64(s.population.Len() - completed - crashed)
	s.collector.Collect(s.tickMetrics)

	s.tick++
	if s.tick >= s.world.Lifespan {
		return s.endGeneration()
	}
	return nil
}

func (s *Simulation) endGeneration() error {
	pop := s.population
	pop.Evaluate(s.target)
	completed, crashed := pop.Counts()

	report := Report{
		Generation:     s.generation,
		BestFitness:    pop.BestFitness,
		AverageFitness: pop.AverageFitness,
		SuccessRate:    pop.SuccessRate,
		Completed:      completed,
		Crashed:        crashed,
		Active:         pop.Len() - completed - crashed,
		FirstArrival:   -1,
		Elapsed:        time.Since(s.started),
	}

	if err := s.reproduce(pop); err != nil {
		s.failed = fmt.Errorf("generation %d: %w", s.generation, err)
		return s.failed
	}

	report.Metrics = s.collector.Finalize(tracking.MetricBundle{
		tracking.MetricGeneration:  float64(report.Generation),
		tracking.MetricBestFitness: report.BestFitness,
		tracking.MetricAvgFitness:  report.AverageFitness,
		tracking.MetricSuccessRate: report.SuccessRate,
		tracking.MetricCompleted:   float64(completed),
		tracking.MetricCrashed:     float64(crashed),
	})
	if v, ok := report.Metrics[tracking.MetricFirstArrival]; ok {
		report.FirstArrival = int(v)
	}
	s.history.Record(report.Metrics)
	s.last = &report

	s.generation++
	s.tick = 0
	s.started = time.Now()
	s.collector.Reset()

	for _, fn := range s.observers {
		fn(report)
	}
	return nil
}

// RunGeneration steps until the current generation completes, ignoring pause
func (s *Simulation) RunGeneration() (Report, error) {
	gen := s.generation
	for s.generation == gen {
		if err := s.advance(); err != nil {
			return Report{}, err
		}
	}
	return *s.last, nil
}

// Run executes generations until count is reached or ctx is cancelled
// A non-positive count runs until cancellation
func (s *Simulation) Run(ctx context.Context, count int) error {
	for i := 0; count <= 0 || i < count; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := s.RunGeneration(); err != nil {
			return err
		}
	}
	return nil
}

// Err returns the error that stopped the run, nil while it is healthy
func (s *Simulation) Err() error {
	return s.failed
}

// TogglePause flips the pause state and returns the new value
func (s *Simulation) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

func (s *Simulation) SetPaused(paused bool) {
	s.paused = paused
}

func (s *Simulation) Paused() bool {
	return s.paused
}

// SetTarget moves the sugar, clamped to the canvas; takes effect on the next tick
func (s *Simulation) SetTarget(p vmath.Vec2F) {
	s.target = s.world.Bounds.Clamp(p)
}

func (s *Simulation) Target() vmath.Vec2F {
	return s.target
}

// Tick returns the index of the next tick within the generation
func (s *Simulation) Tick() int {
	return s.tick
}

// Generation returns the 1-based number of the generation in flight
func (s *Simulation) Generation() int {
	return s.generation
}

// Progress returns the fraction of the current generation elapsed, in [0, 1)
func (s *Simulation) Progress() float64 {
	return float64(s.tick) / float64(s.world.Lifespan)
}

// World returns a copy of the run constants
func (s *Simulation) World() colony.World {
	return *s.world
}

// Population exposes the current generation for statistics
func (s *Simulation) Population() *colony.Population {
	return s.population
}

// Views returns a render snapshot of all agents
func (s *Simulation) Views() []colony.AgentView {
	return s.population.Views()
}

// History returns finalized per-generation metrics since the last reset
func (s *Simulation) History() *tracking.History {
	return s.history
}

// LastReport returns the most recent generation report since the last reset
func (s *Simulation) LastReport() (Report, bool) {
	if s.last == nil {
		return Report{}, false
	}
	return *s.last, true
}
