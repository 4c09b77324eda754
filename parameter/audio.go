package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Chime Sound (generation with at least one arrival)
// The second note rises ChimeMinInterval semitones at the lowest success rate
// and ChimeMaxInterval at 100%, and its tail stretches the same way
const (
	ChimeNote1Freq        = 987.77
	ChimeMinInterval      = 3
	ChimeMaxInterval      = 12
	ChimeNote1Duration    = 80 * time.Millisecond
	ChimeNote2MinDuration = 120 * time.Millisecond
	ChimeNote2MaxDuration = 360 * time.Millisecond
	ChimeAttack           = 5 * time.Millisecond
	ChimeNote1Release     = 20 * time.Millisecond
	ChimeNote2Release     = 100 * time.Millisecond
)

// Buzz Sound (generation with no arrivals)
const (
	BuzzFreq     = 110.0
	BuzzDuration = 120 * time.Millisecond
	BuzzAttack   = 5 * time.Millisecond
	BuzzRelease  = 40 * time.Millisecond
)

// Default Volumes (0.0-1.0)
const (
	DefaultMasterVolume = 0.5
	DefaultChimeVolume  = 0.6
	DefaultBuzzVolume   = 0.3
)
