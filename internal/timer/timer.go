// Package timer implements the countdown state machine behind a focus or
// break session. A SessionTimer owns its duration, the time left, and the
// one repeating tick that counts it down.
package timer

import (
	"sync"
	"time"

	"github.com/akyairhashvil/focusring/internal/config"
	"github.com/akyairhashvil/focusring/internal/models"
)

// Listener observes every state transition. Listeners run with the timer
// locked and must not call back into it.
type Listener func(models.Snapshot)

// SessionTimer is the countdown state machine. The zero value is not usable;
// call New.
type SessionTimer struct {
	mu        sync.Mutex
	scheduler Scheduler
	interval  time.Duration

	duration  int
	remaining int
	running   bool
	status    string
	label     string

	schedule Schedule
	gen      uint64

	listeners []Listener
}

// New returns an idle timer at 00:00. A nil scheduler uses TickerScheduler.
func New(scheduler Scheduler, interval time.Duration) *SessionTimer {
	if scheduler == nil {
		scheduler = TickerScheduler{}
	}
	if interval <= 0 {
		interval = config.TickInterval
	}
	return &SessionTimer{
		scheduler: scheduler,
		interval:  interval,
		status:    config.StatusReady,
	}
}

// OnChange registers l to run after every transition.
func (t *SessionTimer) OnChange(l Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, l)
}

// Snapshot returns the current state.
func (t *SessionTimer) Snapshot() models.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked(false)
}

// Configure replaces the session length and rewinds to its start.
func (t *SessionTimer) Configure(durationSeconds int, label string) {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.duration = durationSeconds
	t.remaining = durationSeconds
	t.status = label
	t.label = label
	t.emitLocked(false)
}

// Start begins counting down. It is ignored while running or when nothing
// is left to count.
func (t *SessionTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running || t.remaining <= 0 {
		return
	}
	t.stopLocked()
	t.running = true
	gen := t.gen
	t.schedule = t.scheduler.Every(t.interval, func() { t.tick(gen) })
	t.emitLocked(false)
}

// Pause stops the countdown where it is.
func (t *SessionTimer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.status = config.StatusPaused
	t.emitLocked(false)
}

// Reset stops the countdown and rewinds to the full duration.
func (t *SessionTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.remaining = t.duration
	t.status = config.StatusReset
	t.emitLocked(false)
}

// Clear drops the session entirely, back to 00:00.
func (t *SessionTimer) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.duration = 0
	t.remaining = 0
	t.status = config.StatusCleared
	t.label = ""
	t.emitLocked(false)
}

// Stop cancels the countdown without a transition. Listeners are not
// called, so whatever they last saw (running included) stays as it was.
// Used on shutdown.
func (t *SessionTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
}

// Restore adopts persisted values if they form a valid session. A session
// that was running when it was saved comes back stopped, waiting for Start.
// It reports whether the values were adopted.
func (t *SessionTimer) Restore(remaining, duration int, wasRunning bool) bool {
	if remaining < 0 || duration < 0 || remaining > duration {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.duration = duration
	t.remaining = remaining
	t.label = ""
	if wasRunning {
		t.status = config.StatusPressStart
	}
	t.emitLocked(false)
	return true
}

func (t *SessionTimer) tick(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// A tick queued before the schedule was replaced or stopped.
	if !t.running || gen != t.gen {
		return
	}
	t.status = config.StatusResume
	t.remaining--
	t.emitLocked(false)
	if t.remaining <= 0 {
		t.remaining = 0
		t.stopLocked()
		t.status = config.StatusComplete
		t.emitLocked(true)
	}
}

// stopLocked clears running and cancels the active schedule, if any.
func (t *SessionTimer) stopLocked() {
	t.running = false
	t.gen++
	if t.schedule != nil {
		t.schedule.Stop()
		t.schedule = nil
	}
}

func (t *SessionTimer) snapshotLocked(completed bool) models.Snapshot {
	return models.Snapshot{
		Remaining: t.remaining,
		Duration:  t.duration,
		Running:   t.running,
		Status:    t.status,
		Completed: completed,
		Label:     t.label,
	}
}

func (t *SessionTimer) emitLocked(completed bool) {
	snap := t.snapshotLocked(completed)
	for _, l := range t.listeners {
		l(snap)
	}
}
