package colony

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/antsugar/genetic"
	"github.com/lixenwraith/antsugar/genetic/fitness"
	"github.com/lixenwraith/antsugar/vmath"
)

// Agent is one simulated ant: a point mass steered by its genome
type Agent struct {
	Pos vmath.Vec2F
	Vel vmath.Vec2F
	Acc vmath.Vec2F

	Genome genetic.Genome

	// Fitness is meaningless until Population.Evaluate runs, normalized afterwards
	Fitness float64

	// Completed and Crashed are one-way for the agent's lifetime
	Completed bool
	Crashed   bool
	// CompletionTick is the capture tick, -1 until Completed
	CompletionTick int

	world *World
}

// AgentView is the read-only state a renderer needs
type AgentView struct {
	Pos       vmath.Vec2F
	Heading   float64
	Completed bool
	Crashed   bool
}

// NewAgent creates an agent at spawn with a fresh random genome
func NewAgent(w *World, rng *rand.Rand) *Agent {
	return NewAgentWithGenome(w, genetic.NewGenome(w.Lifespan, w.MaxForce, rng))
}

// NewAgentWithGenome creates an agent at spawn that takes ownership of g
func NewAgentWithGenome(w *World, g genetic.Genome) *Agent {
	return &Agent{
		Pos:            w.Spawn,
		Genome:         g,
		CompletionTick: -1,
		world:          w,
	}
}

// ApplyForce accumulates f into acceleration
func (a *Agent) ApplyForce(f vmath.Vec2F) {
	a.Acc.Add(f)
}

// Update advances the agent one tick
// Status checks use the position reached by the previous tick, before this tick's force;
// once completed or crashed, position and velocity stay frozen
func (a *Agent) Update(target vmath.Vec2F, tick int) {
	if tick < 0 || tick >= len(a.Genome.Genes) {
		panic(fmt.Sprintf("colony: tick %d outside genome range [0,%d)", tick, len(a.Genome.Genes)))
	}

	if !a.Completed && a.Pos.Dist(target) < a.world.CaptureRadius {
		a.Completed = true
		a.CompletionTick = tick
	}

	if a.world.Obstacle.ContainsOpen(a.Pos) {
		a.Crashed = true
	}

	if a.world.Bounds.Outside(a.Pos) {
		a.Crashed = true
	}

	a.ApplyForce(a.Genome.Genes[tick])

	if !a.Completed && !a.Crashed {
		a.Vel.Add(a.Acc)
		a.Pos.Add(a.Vel)
		a.Acc.Scale(0)
	}
}

// CalculateFitness scores the agent against target, stores and returns the raw score
func (a *Agent) CalculateFitness(target vmath.Vec2F) float64 {
	a.Fitness = a.world.Scorer().Score(fitness.Outcome{
		Distance:       a.Pos.Dist(target),
		Completed:      a.Completed,
		CompletionTick: a.CompletionTick,
		Crashed:        a.Crashed,
	})
	return a.Fitness
}

// CompletedAt returns the capture tick if the agent reached the target
func (a *Agent) CompletedAt() (int, bool) {
	return a.CompletionTick, a.Completed
}

// Active reports whether the agent is still moving
func (a *Agent) Active() bool {
	return !a.Completed && !a.Crashed
}

// View returns a render snapshot
func (a *Agent) View() AgentView {
	return AgentView{
		Pos:       a.Pos,
		Heading:   a.Vel.Heading(),
		Completed: a.Completed,
		Crashed:   a.Crashed,
	}
}
