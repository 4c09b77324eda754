package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/antsugar/parameter"
)

// Config controls generation cues
type Config struct {
	Enabled      bool
	MasterVolume float64
	ChimeVolume  float64
	BuzzVolume   float64
	SampleRate   int
}

// DefaultConfig returns enabled audio at default volumes
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: parameter.DefaultMasterVolume,
		ChimeVolume:  parameter.DefaultChimeVolume,
		BuzzVolume:   parameter.DefaultBuzzVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// Player plays a cue at each generation boundary
// A disabled or uninitialized player silently drops requests
type Player struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player, Initialize must be called before sounds are heard
func NewPlayer(cfg *Config) *Player {
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker, a disabled config is a no-op
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Active reports whether cues will be audible
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PlayGeneration queues the cue for a finished generation
func (p *Player) PlayGeneration(successRate float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := GenerationSound(successRate, p.cfg)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}
