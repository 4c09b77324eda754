package colony

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/lixenwraith/antsugar/genetic"
	"github.com/lixenwraith/antsugar/genetic/fitness"
	"github.com/lixenwraith/antsugar/vmath"
)

// ErrEmptyPool is returned by Reproduce when no mating pool is available
var ErrEmptyPool = genetic.ErrEmptyPool

// Population is a fixed-size generation of agents and its generational algorithm
type Population struct {
	world  *World
	rng    *rand.Rand
	agents []*Agent
	pool   *genetic.MatingPool[*Agent]
	scores []float64

	// Statistics of the last Evaluate, raw (unnormalized) fitness
	BestFitness    float64
	AverageFitness float64
	// SuccessRate is the percentage of agents that reached the target
	SuccessRate float64
}

// NewPopulation creates w.PopulationSize fresh agents
func NewPopulation(w *World, rng *rand.Rand) *Population {
	p := &Population{
		world:  w,
		rng:    rng,
		agents: make([]*Agent, w.PopulationSize),
		pool:   genetic.NewMatingPool[*Agent](w.PopulationSize),
		scores: make([]float64, w.PopulationSize),
	}
	for i := range p.agents {
		p.agents[i] = NewAgent(w, rng)
	}
	return p
}

// Len returns the number of agents
func (p *Population) Len() int {
	return len(p.agents)
}

// Agents returns the current generation, callers must not retain it across Reproduce
func (p *Population) Agents() []*Agent {
	return p.agents
}

// Views returns a render snapshot of every agent
func (p *Population) Views() []AgentView {
	views := make([]AgentView, len(p.agents))
	for i, a := range p.agents {
		views[i] = a.View()
	}
	return views
}

// Update advances every agent one tick
func (p *Population) Update(target vmath.Vec2F, tick int) {
	for _, a := range p.agents {
		a.Update(target, tick)
	}
}

// Counts returns the number of completed and crashed agents
func (p *Population) Counts() (completed, crashed int) {
	for _, a := range p.agents {
		if a.Completed {
			completed++
		}
		if a.Crashed {
			crashed++
		}
	}
	return completed, crashed
}

// Evaluate scores every agent, records statistics, normalizes fitness by the best
// and rebuilds the mating pool with floor(normalized * PoolResolution) entries per agent
func (p *Population) Evaluate(target vmath.Vec2F) {
	p.pool.Reset()
	if len(p.agents) == 0 {
		p.BestFitness, p.AverageFitness, p.SuccessRate = 0, 0, 0
		return
	}

	p.scores = p.scores[:0]
	for _, a := range p.agents {
		p.scores = append(p.scores, a.CalculateFitness(target))
	}

	completed, _ := p.Counts()
	p.BestFitness = floats.Max(p.scores)
	p.AverageFitness = stat.Mean(p.scores, nil)
	p.SuccessRate = float64(completed) / float64(len(p.agents)) * 100

	fitness.NormalizeByBest(p.scores, p.BestFitness)

	for i, a := range p.agents {
		a.Fitness = p.scores[i]
		p.pool.AddNormalized(a, a.Fitness)
	}
}

// PoolSize returns total mating pool entries from the last Evaluate
func (p *Population) PoolSize() int {
	return p.pool.Size()
}

// Reproduce replaces every agent with a child of two parents drawn with replacement
// from the mating pool, crossed over and mutated; the pool is consumed
func (p *Population) Reproduce() error {
	next := make([]*Agent, len(p.agents))

	for i := range next {
		parentA, err := p.pool.Draw(p.rng)
		if err != nil {
			return fmt.Errorf("reproduce: %w", err)
		}
		parentB, err := p.pool.Draw(p.rng)
		if err != nil {
			return fmt.Errorf("reproduce: %w", err)
		}

		child := parentA.Genome.Crossover(parentB.Genome, p.rng)
		child.Mutate(p.world.MutationRate, p.world.MaxForce, p.rng)
		next[i] = NewAgentWithGenome(p.world, child)
	}

	p.agents = next
	p.pool.Reset()
	return nil
}
