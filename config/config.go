package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/antsugar/colony"
	"github.com/lixenwraith/antsugar/parameter"
	"github.com/lixenwraith/antsugar/vmath"
)

// ErrUnknownKey is returned when a config file carries keys no field consumes
var ErrUnknownKey = errors.New("unknown config key")

// Config is the file-level run configuration
type Config struct {
	Canvas   Size    `toml:"canvas"`
	Obstacle Rect    `toml:"obstacle"`
	Spawn    Point   `toml:"spawn"`
	Target   Point   `toml:"target"`
	Genetic  Genetic `toml:"genetic"`
	Fitness  Fitness `toml:"fitness"`
	Run      Run     `toml:"run"`
	Audio    Audio   `toml:"audio"`
}

type Size struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Point struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

type Rect struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Genetic struct {
	Lifespan       int     `toml:"lifespan"`
	PopulationSize int     `toml:"population_size"`
	MaxForce       float64 `toml:"max_force"`
	MutationRate   float64 `toml:"mutation_rate"`
}

type Fitness struct {
	CaptureRadius   float64 `toml:"capture_radius"`
	CompletionBonus float64 `toml:"completion_bonus"`
	CrashPenalty    float64 `toml:"crash_penalty"`
}

// Run holds driver settings that do not affect the evolutionary semantics
type Run struct {
	// Seed fixes the random source, 0 draws a fresh seed
	Seed uint64 `toml:"seed"`
	// TickInterval paces interactive frontends
	TickInterval time.Duration `toml:"tick_interval"`
}

type Audio struct {
	Enabled bool `toml:"enabled"`
	// MasterVolume in 0.0-1.0
	MasterVolume float64 `toml:"master_volume"`
}

// Default returns the stock configuration
func Default() Config {
	w := colony.DefaultWorld()
	return Config{
		Canvas:   Size{Width: w.Bounds.W, Height: w.Bounds.H},
		Obstacle: Rect{X: w.Obstacle.X, Y: w.Obstacle.Y, Width: w.Obstacle.W, Height: w.Obstacle.H},
		Spawn:    Point{X: w.Spawn.X, Y: w.Spawn.Y},
		Target:   Point{X: w.Target.X, Y: w.Target.Y},
		Genetic: Genetic{
			Lifespan:       w.Lifespan,
			PopulationSize: w.PopulationSize,
			MaxForce:       w.MaxForce,
			MutationRate:   w.MutationRate,
		},
		Fitness: Fitness{
			CaptureRadius:   w.CaptureRadius,
			CompletionBonus: w.CompletionBonus,
			CrashPenalty:    w.CrashPenalty,
		},
		Run: Run{
			TickInterval: parameter.TickInterval,
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: parameter.DefaultMasterVolume,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// An empty path skips the file
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("load %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return cfg, fmt.Errorf("load %s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as TOML, creating parent directories
func Save(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}

// Validate checks the derived world and driver settings
func (c Config) Validate() error {
	if err := c.World().Validate(); err != nil {
		return err
	}
	if c.Run.TickInterval <= 0 {
		return fmt.Errorf("tick interval %v must be positive", c.Run.TickInterval)
	}
	if !(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1) {
		return fmt.Errorf("master volume %v outside [0,1]", c.Audio.MasterVolume)
	}
	return nil
}

// World converts the configuration to simulation constants
func (c Config) World() colony.World {
	return colony.World{
		Bounds:          vmath.RectF{W: c.Canvas.Width, H: c.Canvas.Height},
		Obstacle:        vmath.RectF{X: c.Obstacle.X, Y: c.Obstacle.Y, W: c.Obstacle.Width, H: c.Obstacle.Height},
		Spawn:           vmath.Vec2F{X: c.Spawn.X, Y: c.Spawn.Y},
		Target:          vmath.Vec2F{X: c.Target.X, Y: c.Target.Y},
		Lifespan:        c.Genetic.Lifespan,
		PopulationSize:  c.Genetic.PopulationSize,
		MaxForce:        c.Genetic.MaxForce,
		MutationRate:    c.Genetic.MutationRate,
		CaptureRadius:   c.Fitness.CaptureRadius,
		CompletionBonus: c.Fitness.CompletionBonus,
		CrashPenalty:    c.Fitness.CrashPenalty,
	}
}
