// Package logging routes the standard logger to a rotating file under a log directory
// Frontends own the terminal or window, so nothing is ever written to stdout or stderr
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/antsugar/parameter"
)

// Setup directs log output to dir/antsugar.log when debug is set and discards it otherwise
// An existing file above MaxLogSize is renamed with a timestamp before a fresh one is opened
// Returns the open file for the caller to close, nil when disabled or on failure
func Setup(dir string, debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, parameter.LogFileName)
	rotate(dir, path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("logging started pid=%d", os.Getpid())
	return f
}

func rotate(dir, path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= parameter.MaxLogSize {
		return
	}
	stamp := time.Now().Format("20060102_150405")
	rotated := filepath.Join(dir, fmt.Sprintf("antsugar_%s.log", stamp))
	_ = os.Rename(path, rotated)
}
