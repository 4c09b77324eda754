package genetic

// Package genetic provides the evolutionary operators for force-sequence genomes
// 1. Genome holds per-tick forces and owns crossover and mutation
// 2. MatingPool implements discretized fitness-proportionate selection
// 3. Has zero knowledge of agents or the world; callers supply fitness and randomness

import (
	"errors"
	"math"
	"math/rand/v2"
	"sort"
)

// PoolResolution is the number of pool entries granted to a normalized fitness of 1.0
const PoolResolution = 100

// ErrEmptyPool is returned when drawing from a pool with no entries
var ErrEmptyPool = errors.New("mating pool is empty")

// MatingPool implements roulette-wheel selection over integer entry counts
// Observable distribution matches a list replicating each member weight times,
// stored as cumulative weights and sampled by binary search
type MatingPool[T any] struct {
	members    []T
	weights    []int
	cumulative []int
	total      int
}

// NewMatingPool creates an empty pool sized for capacity members
func NewMatingPool[T any](capacity int) *MatingPool[T] {
	return &MatingPool[T]{
		members:    make([]T, 0, capacity),
		weights:    make([]int, 0, capacity),
		cumulative: make([]int, 0, capacity),
	}
}

// Discretize converts a normalized fitness to an entry count: floor(normalized * PoolResolution)
// NaN and negative inputs yield zero entries
func Discretize(normalized float64) int {
	if math.IsNaN(normalized) || normalized <= 0 {
		return 0
	}
	if math.IsInf(normalized, 1) {
		return PoolResolution
	}
	return int(math.Floor(normalized * PoolResolution))
}

// Add appends item with the given entry count, non-positive weights are skipped
func (p *MatingPool[T]) Add(item T, weight int) {
	if weight <= 0 {
		return
	}
	p.total += weight
	p.members = append(p.members, item)
	p.weights = append(p.weights, weight)
	p.cumulative = append(p.cumulative, p.total)
}

// AddNormalized appends item weighted by its normalized fitness, returns entries granted
func (p *MatingPool[T]) AddNormalized(item T, normalized float64) int {
	n := Discretize(normalized)
	p.Add(item, n)
	return n
}

// Size returns total entry count, the length of the equivalent replicated list
func (p *MatingPool[T]) Size() int {
	return p.total
}

// Members returns the number of distinct members with at least one entry
func (p *MatingPool[T]) Members() int {
	return len(p.members)
}

// Weight returns the entry count of the i-th member
func (p *MatingPool[T]) Weight(i int) int {
	return p.weights[i]
}

// Draw selects one member with probability weight/Size, with replacement
func (p *MatingPool[T]) Draw(rng *rand.Rand) (T, error) {
	var zero T
	if p.total == 0 {
		return zero, ErrEmptyPool
	}

	// Spin the wheel
	spin := rng.IntN(p.total)
	idx := sort.Search(len(p.cumulative), func(i int) bool {
		return p.cumulative[i] > spin
	})
	return p.members[idx], nil
}

// Reset clears the pool for reuse, keeping allocated capacity
func (p *MatingPool[T]) Reset() {
	clear(p.members)
	p.members = p.members[:0]
	p.weights = p.weights[:0]
	p.cumulative = p.cumulative[:0]
	p.total = 0
}
