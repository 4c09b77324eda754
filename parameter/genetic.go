package parameter

// Genetic Algorithm - Generation Shape
const (
	// Lifespan is the number of ticks per generation, and the genome length
	Lifespan = 300

	// PopulationSize is the number of ants per generation
	PopulationSize = 100

	// MaxForce is the magnitude of every gene
	MaxForce = 0.3

	// MutationRate is the per-gene replacement probability
	MutationRate = 0.01
)

// Genetic Algorithm - Fitness Shaping
const (
	// CompletionBonus scales the early-arrival multiplier: bonus * L / (tick + 1)
	CompletionBonus = 10.0

	// CrashPenalty divides the fitness of ants that hit a wall or the obstacle
	CrashPenalty = 10.0
)

// HistoryCapacity caps retained per-generation statistics
const HistoryCapacity = 4096
