package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/antsugar/parameter"
)

// Waveform selects the shape a tone is rendered with
type Waveform int

const (
	Sine Waveform = iota
	Square
	Saw
)

// Tone describes one shaped note. Attack and Release are linear ramps at the
// start and end of Duration
type Tone struct {
	Freq     float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Wave     Waveform
}

// tone renders a Tone sample by sample, applying its gain ramp inline
type tone struct {
	step    float64
	phase   float64
	wave    Waveform
	pos     int
	total   int
	attack  int
	release int
}

// NewTone returns a mono streamer for t at the given rate
func NewTone(t Tone, rate beep.SampleRate) beep.Streamer {
	total := rate.N(t.Duration)
	return &tone{
		step:    t.Freq / float64(rate),
		wave:    t.Wave,
		total:   total,
		attack:  min(rate.N(t.Attack), total),
		release: min(rate.N(t.Release), total),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && t.pos < t.total {
		v := t.sample() * t.gain()
		samples[n][0], samples[n][1] = v, v
		t.phase += t.step
		t.phase -= math.Floor(t.phase)
		t.pos++
		n++
	}
	return n, n > 0 || t.pos < t.total
}

func (t *tone) Err() error { return nil }

func (t *tone) sample() float64 {
	switch t.wave {
	case Square:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case Saw:
		return 2*t.phase - 1
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

func (t *tone) gain() float64 {
	g := 1.0
	if t.attack > 0 && t.pos < t.attack {
		g = float64(t.pos) / float64(t.attack)
	}
	if left := t.total - t.pos; t.release > 0 && left < t.release {
		g = min(g, float64(left)/float64(t.release))
	}
	return g
}

// scaled applies a linear gain, clamped to silence at or below zero
func scaled(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: max(vol, 0) - 1}
}

// successFraction maps a success percentage into [0, 1]
func successFraction(successRate float64) float64 {
	if math.IsNaN(successRate) {
		return 0
	}
	return math.Max(0, math.Min(successRate/100, 1))
}

// ChimeInterval is the rise in semitones between the two chime notes
func ChimeInterval(successRate float64) int {
	span := float64(parameter.ChimeMaxInterval - parameter.ChimeMinInterval)
	return parameter.ChimeMinInterval + int(math.Round(span*successFraction(successRate)))
}

// ChimeTail is the length of the second chime note
func ChimeTail(successRate float64) time.Duration {
	span := parameter.ChimeNote2MaxDuration - parameter.ChimeNote2MinDuration
	return parameter.ChimeNote2MinDuration + time.Duration(float64(span)*successFraction(successRate))
}

// CreateChimeSound generates a rising two-note chime whose interval and tail
// grow with the share of ants that reached the target
func CreateChimeSound(successRate float64, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	first := NewTone(Tone{
		Freq:     parameter.ChimeNote1Freq,
		Duration: parameter.ChimeNote1Duration,
		Attack:   parameter.ChimeAttack,
		Release:  parameter.ChimeNote1Release,
		Wave:     Square,
	}, rate)
	second := NewTone(Tone{
		Freq:     parameter.ChimeNote1Freq * math.Exp2(float64(ChimeInterval(successRate))/12),
		Duration: ChimeTail(successRate),
		Attack:   parameter.ChimeAttack,
		Release:  parameter.ChimeNote2Release,
		Wave:     Sine,
	}, rate)

	return scaled(beep.Seq(first, second), cfg.ChimeVolume*cfg.MasterVolume)
}

// CreateBuzzSound generates a short low saw buzz for a generation without arrivals
func CreateBuzzSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	buzz := NewTone(Tone{
		Freq:     parameter.BuzzFreq,
		Duration: parameter.BuzzDuration,
		Attack:   parameter.BuzzAttack,
		Release:  parameter.BuzzRelease,
		Wave:     Saw,
	}, rate)

	return scaled(buzz, cfg.BuzzVolume*cfg.MasterVolume)
}

// GenerationSound picks the cue for a finished generation
func GenerationSound(successRate float64, cfg *Config) beep.Streamer {
	if successRate > 0 {
		return CreateChimeSound(successRate, cfg)
	}
	return CreateBuzzSound(cfg)
}
