package genetic

import (
	"math/rand/v2"

	"github.com/lixenwraith/antsugar/vmath"
)

// Genome is an ordered sequence of per-tick steering forces
// Every gene has magnitude maxForce from creation or mutation; crossover copies genes verbatim
type Genome struct {
	Genes []vmath.Vec2F
}

// NewGenome synthesizes lifespan random genes, each scaled to maxForce
func NewGenome(lifespan int, maxForce float64, rng *rand.Rand) Genome {
	genes := make([]vmath.Vec2F, lifespan)
	for i := range genes {
		genes[i] = randomGene(maxForce, rng)
	}
	return Genome{Genes: genes}
}

// GenomeFrom wraps an existing gene sequence as-is
func GenomeFrom(genes []vmath.Vec2F) Genome {
	return Genome{Genes: genes}
}

// Len returns the number of genes, equal to the generation lifespan
func (g Genome) Len() int {
	return len(g.Genes)
}

// Crossover performs single-point crossover with a pivot uniform in [0, L-1]
func (g Genome) Crossover(partner Genome, rng *rand.Rand) Genome {
	length := min(len(g.Genes), len(partner.Genes))
	if length == 0 {
		return Genome{Genes: []vmath.Vec2F{}}
	}
	return g.CrossoverAt(partner, rng.IntN(length))
}

// CrossoverAt builds a child taking partner's genes at indices <= mid and own genes after
// Partner-first ordering is intentional; parents are drawn symmetrically so the bias cancels
func (g Genome) CrossoverAt(partner Genome, mid int) Genome {
	length := min(len(g.Genes), len(partner.Genes))
	genes := make([]vmath.Vec2F, length)
	for i := 0; i < length; i++ {
		if i > mid {
			genes[i] = g.Genes[i]
		} else {
			genes[i] = partner.Genes[i]
		}
	}
	return Genome{Genes: genes}
}

// Mutate replaces each gene with probability rate by a fresh random gene
// Returns the number of replaced genes
func (g *Genome) Mutate(rate, maxForce float64, rng *rand.Rand) int {
	mutated := 0
	for i := range g.Genes {
		if rng.Float64() < rate {
			g.Genes[i] = randomGene(maxForce, rng)
			mutated++
		}
	}
	return mutated
}

// Clone returns a deep copy
func (g Genome) Clone() Genome {
	genes := make([]vmath.Vec2F, len(g.Genes))
	copy(genes, g.Genes)
	return Genome{Genes: genes}
}

func randomGene(maxForce float64, rng *rand.Rand) vmath.Vec2F {
	gene := vmath.RandomUnit2F(rng)
	gene.SetMag(maxForce)
	return gene
}
