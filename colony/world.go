package colony

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/antsugar/genetic/fitness"
	"github.com/lixenwraith/antsugar/parameter"
	"github.com/lixenwraith/antsugar/vmath"
)

// ErrInvalidWorld is wrapped by every World validation failure
var ErrInvalidWorld = errors.New("invalid world")

// World holds the constants of a run, fixed at process start and shared read-only
type World struct {
	// Bounds is the canvas; leaving it crashes an ant
	Bounds vmath.RectF
	// Obstacle crashes ants strictly inside it; zero size disables it
	Obstacle vmath.RectF
	// Spawn is the starting position of every ant
	Spawn vmath.Vec2F
	// Target is the initial sugar position, frontends may move it between ticks
	Target vmath.Vec2F

	Lifespan       int
	PopulationSize int
	MaxForce       float64
	MutationRate   float64
	CaptureRadius  float64

	CompletionBonus float64
	CrashPenalty    float64
}

// DefaultWorld returns the stock 800x600 arena
func DefaultWorld() World {
	return World{
		Bounds: vmath.RectF{W: parameter.CanvasWidth, H: parameter.CanvasHeight},
		Obstacle: vmath.RectF{
			X: parameter.ObstacleX,
			Y: parameter.ObstacleY,
			W: parameter.ObstacleWidth,
			H: parameter.ObstacleHeight,
		},
		Spawn:           vmath.Vec2F{X: parameter.SpawnX, Y: parameter.SpawnY},
		Target:          vmath.Vec2F{X: parameter.TargetX, Y: parameter.TargetY},
		Lifespan:        parameter.Lifespan,
		PopulationSize:  parameter.PopulationSize,
		MaxForce:        parameter.MaxForce,
		MutationRate:    parameter.MutationRate,
		CaptureRadius:   parameter.CaptureRadius,
		CompletionBonus: parameter.CompletionBonus,
		CrashPenalty:    parameter.CrashPenalty,
	}
}

// Validate reports the first inconsistent field
func (w World) Validate() error {
	switch {
	case !finite(w.Bounds.X, w.Bounds.Y, w.Bounds.W, w.Bounds.H,
		w.Obstacle.X, w.Obstacle.Y, w.Obstacle.W, w.Obstacle.H,
		w.Spawn.X, w.Spawn.Y, w.Target.X, w.Target.Y):
		return fmt.Errorf("%w: geometry must be finite", ErrInvalidWorld)
	case !finite(w.MaxForce, w.MutationRate, w.CaptureRadius, w.CompletionBonus, w.CrashPenalty):
		return fmt.Errorf("%w: genetic and fitness settings must be finite", ErrInvalidWorld)
	case w.Bounds.W <= 0 || w.Bounds.H <= 0:
		return fmt.Errorf("%w: canvas %vx%v must be positive", ErrInvalidWorld, w.Bounds.W, w.Bounds.H)
	case w.Obstacle.W < 0 || w.Obstacle.H < 0:
		return fmt.Errorf("%w: obstacle size %vx%v is negative", ErrInvalidWorld, w.Obstacle.W, w.Obstacle.H)
	case w.Bounds.Outside(w.Spawn):
		return fmt.Errorf("%w: spawn %+v outside canvas", ErrInvalidWorld, w.Spawn)
	case w.Lifespan <= 0:
		return fmt.Errorf("%w: lifespan %d must be positive", ErrInvalidWorld, w.Lifespan)
	case w.PopulationSize <= 0:
		return fmt.Errorf("%w: population size %d must be positive", ErrInvalidWorld, w.PopulationSize)
	case w.MaxForce <= 0:
		return fmt.Errorf("%w: max force %v must be positive", ErrInvalidWorld, w.MaxForce)
	case w.MutationRate < 0 || w.MutationRate > 1:
		return fmt.Errorf("%w: mutation rate %v outside [0,1]", ErrInvalidWorld, w.MutationRate)
	case w.CaptureRadius <= 0:
		return fmt.Errorf("%w: capture radius %v must be positive", ErrInvalidWorld, w.CaptureRadius)
	case w.CompletionBonus <= 0 || w.CrashPenalty <= 0:
		return fmt.Errorf("%w: completion bonus and crash penalty must be positive", ErrInvalidWorld)
	}
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Scorer returns the fitness function for this world
func (w World) Scorer() fitness.ReachScorer {
	return fitness.ReachScorer{
		Lifespan:        w.Lifespan,
		CompletionBonus: w.CompletionBonus,
		CrashPenalty:    w.CrashPenalty,
	}
}
