package parameter

import "time"

// Simulation Loop Timing
const (
	// TickInterval paces one simulation tick in interactive frontends (~30 Hz)
	TickInterval = 33 * time.Millisecond

	// EventChannelSize buffers terminal input between poller and loop
	EventChannelSize = 256
)

// Logging
const (
	// LogDir is where debug logs are written, relative to the working directory
	LogDir = "logs"

	// LogFileName is the active log file inside LogDir
	LogFileName = "antsugar.log"

	// MaxLogSize triggers rotation of an existing log file on startup
	MaxLogSize = 10 * 1024 * 1024
)
