// Package util provides common utilities including logging helpers,
// data directory resolution, and input parsing.
package util

import (
	"io"
	"log"
)

// LogError logs an error with context if it is non-nil and reports whether
// it did.
func LogError(context string, err error) bool {
	if err != nil {
		log.Printf("%s: %v", context, err)
		return true
	}
	return false
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}

// SilenceLogs drops std log output. The TUI calls this when it cannot open
// a log file, since stray writes would corrupt the screen.
func SilenceLogs() {
	log.SetOutput(io.Discard)
}
