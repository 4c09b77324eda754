package config

import (
	"fmt"
	"strconv"
	"time"
)

// Environment overrides, applied after the config file
const (
	EnvPopulation   = "ANTSUGAR_POPULATION"
	EnvLifespan     = "ANTSUGAR_LIFESPAN"
	EnvMaxForce     = "ANTSUGAR_MAX_FORCE"
	EnvMutationRate = "ANTSUGAR_MUTATION_RATE"
	EnvSeed         = "ANTSUGAR_SEED"
	EnvTickInterval = "ANTSUGAR_TICK_INTERVAL"
	EnvAudioEnabled = "ANTSUGAR_AUDIO_ENABLED"
	// EnvMasterVolume is 0-100, converted to 0.0-1.0 and clamped
	EnvMasterVolume = "ANTSUGAR_MASTER_VOLUME"
)

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides fields from the environment, a malformed value is an error
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvPopulation); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPopulation, err)
		}
		c.Genetic.PopulationSize = n
	}

	if v, ok := lookup(EnvLifespan); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLifespan, err)
		}
		c.Genetic.Lifespan = n
	}

	if v, ok := lookup(EnvMaxForce); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxForce, err)
		}
		c.Genetic.MaxForce = f
	}

	if v, ok := lookup(EnvMutationRate); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMutationRate, err)
		}
		c.Genetic.MutationRate = f
	}

	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Run.Seed = n
	}

	if v, ok := lookup(EnvTickInterval); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTickInterval, err)
		}
		c.Run.TickInterval = d
	}

	if v, ok := lookup(EnvAudioEnabled); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = b
	}

	if v, ok := lookup(EnvMasterVolume); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
	}

	return nil
}
