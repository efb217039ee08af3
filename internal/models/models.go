package models

import (
	"fmt"
	"time"
)

// SessionKind enumerates what a countdown was configured for.
type SessionKind string

const (
	KindWork   SessionKind = "work"
	KindBreak  SessionKind = "break"
	KindCustom SessionKind = "custom"
)

// Snapshot is the observable state of the session timer after a transition.
type Snapshot struct {
	Remaining int // seconds
	Duration  int // seconds
	Running   bool
	Status    string
	Completed bool // set only on the transition that reaches zero
	// Label is the status the session was configured with. It outlives the
	// status changes made by ticks, so completion knows what finished.
	Label string
}

// Clock formats the remaining time as MM:SS. Minutes are not capped at 99.
func (s Snapshot) Clock() string {
	return FormatClock(s.Remaining)
}

// Fraction is remaining/duration, or remaining/1 for an unconfigured timer.
func (s Snapshot) Fraction() float64 {
	total := s.Duration
	if total <= 0 {
		total = 1
	}
	return float64(s.Remaining) / float64(total)
}

// Title is the terminal title line, e.g. "24:59 - Resume".
func (s Snapshot) Title() string {
	return fmt.Sprintf("%s - %s", s.Clock(), s.Status)
}

// FormatClock renders whole seconds as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Preferences are the user-tunable values kept alongside the session state.
type Preferences struct {
	FocusMinutes int
	BreakMinutes int
	Theme        string
}

// SessionRecord is one completed countdown.
type SessionRecord struct {
	ID              string
	Kind            SessionKind
	Label           string
	DurationSeconds int
	CompletedAt     time.Time
}
