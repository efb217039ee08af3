// Package session exposes the timer commands the presentation layers call
// and keeps the persisted copy of the timer and preferences in step with it.
package session

import (
	"context"
	"strconv"
	"sync"

	"github.com/akyairhashvil/focusring/internal/config"
	"github.com/akyairhashvil/focusring/internal/models"
	"github.com/akyairhashvil/focusring/internal/timer"
	"github.com/akyairhashvil/focusring/internal/util"
)

// Store is the persistence the controller needs.
//
//go:generate mockgen -source=controller.go -destination=mock_store_test.go -package=session
type Store interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	SetSettings(ctx context.Context, values map[string]string) error
	ClearSettings(ctx context.Context) error
	AddSessionRecord(ctx context.Context, rec models.SessionRecord) (models.SessionRecord, error)
	ListSessionRecords(ctx context.Context, limit int) ([]models.SessionRecord, error)
	ClearSessionRecords(ctx context.Context) error
}

// Controller owns the single SessionTimer and its preferences.
type Controller struct {
	ctx   context.Context
	store Store
	timer *timer.SessionTimer

	mu    sync.Mutex
	prefs models.Preferences
}

// DefaultPreferences returns focus 25, break 5, theme light.
func DefaultPreferences() models.Preferences {
	return models.Preferences{
		FocusMinutes: config.DefaultFocusMinutes,
		BreakMinutes: config.DefaultBreakMinutes,
		Theme:        config.DefaultTheme,
	}
}

// New wires tm to store. Every timer transition is written back to store
// before any listener added later through OnChange sees it.
func New(ctx context.Context, store Store, tm *timer.SessionTimer) *Controller {
	c := &Controller{
		ctx:   ctx,
		store: store,
		timer: tm,
		prefs: DefaultPreferences(),
	}
	tm.OnChange(c.persist)
	tm.OnChange(c.record)
	return c
}

// OnChange registers a presentation listener.
func (c *Controller) OnChange(l timer.Listener) {
	c.timer.OnChange(l)
}

// Snapshot returns the timer state.
func (c *Controller) Snapshot() models.Snapshot {
	return c.timer.Snapshot()
}

// Preferences returns the current preferences.
func (c *Controller) Preferences() models.Preferences {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prefs
}

// ApplyCustomTime saves both minute values as preferences and loads a focus
// session of the chosen length.
func (c *Controller) ApplyCustomTime(focusInput, breakInput string) {
	focus := ParseMinutes(focusInput, config.DefaultFocusMinutes)
	brk := ParseMinutes(breakInput, config.DefaultBreakMinutes)

	c.mu.Lock()
	c.prefs.FocusMinutes = focus
	c.prefs.BreakMinutes = brk
	c.mu.Unlock()

	util.LogError("save custom time", c.store.SetSettings(c.ctx, map[string]string{
		config.KeyFocusTime: strconv.Itoa(focus),
		config.KeyBreakTime: strconv.Itoa(brk),
	}))
	c.timer.Configure(focus*60, config.StatusCustomTimeSet)
}

// StartWork loads a focus session. Despite the name it does not start
// counting; Start does.
func (c *Controller) StartWork(minutesInput string) {
	mins := ParseMinutes(minutesInput, config.DefaultFocusMinutes)
	c.timer.Configure(mins*60, config.StatusWorkStarted)
}

// StartBreak loads a break session.
func (c *Controller) StartBreak(breakInput string) {
	mins := ParseMinutes(breakInput, config.DefaultBreakMinutes)
	c.timer.Configure(mins*60, config.StatusBreakTime)
}

// Stop cancels the countdown without touching the stored session, so a
// session that was counting is offered again on the next start. Call it on
// shutdown in place of Pause.
func (c *Controller) Stop() { c.timer.Stop() }

func (c *Controller) Start() { c.timer.Start() }
func (c *Controller) Pause() { c.timer.Pause() }
func (c *Controller) Reset() { c.timer.Reset() }

// Clear wipes every persisted setting and returns timer and preferences to
// their defaults. Completed-session history is kept.
func (c *Controller) Clear() {
	util.LogError("clear settings", c.store.ClearSettings(c.ctx))

	c.mu.Lock()
	c.prefs = DefaultPreferences()
	c.mu.Unlock()

	c.timer.Clear()
}

// SetTheme selects and saves a theme. Unknown names select the default.
func (c *Controller) SetTheme(name string) string {
	if !config.IsKnownTheme(name) {
		name = config.DefaultTheme
	}
	c.mu.Lock()
	c.prefs.Theme = name
	c.mu.Unlock()

	util.LogError("save theme", c.store.SetSetting(c.ctx, config.KeyTheme, name))
	return name
}

// ClearHistory drops every completed-session record.
func (c *Controller) ClearHistory() {
	util.LogError("clear history", c.store.ClearSessionRecords(c.ctx))
}

// History returns up to limit completed sessions, newest first.
func (c *Controller) History(limit int) []models.SessionRecord {
	recs, err := c.store.ListSessionRecords(c.ctx, limit)
	if util.LogError("list history", err) {
		return nil
	}
	return recs
}

// Restore loads preferences and the last session from the store. Missing or
// malformed values fall back to defaults; a session that was counting when
// it was saved comes back stopped.
func (c *Controller) Restore() {
	prefs := DefaultPreferences()
	if v, ok := c.store.GetSetting(c.ctx, config.KeyFocusTime); ok {
		prefs.FocusMinutes = ParseMinutes(v, config.DefaultFocusMinutes)
	}
	if v, ok := c.store.GetSetting(c.ctx, config.KeyBreakTime); ok {
		prefs.BreakMinutes = ParseMinutes(v, config.DefaultBreakMinutes)
	}
	if v, ok := c.store.GetSetting(c.ctx, config.KeyTheme); ok && config.IsKnownTheme(v) {
		prefs.Theme = v
	}
	c.mu.Lock()
	c.prefs = prefs
	c.mu.Unlock()

	remainingRaw, okR := c.store.GetSetting(c.ctx, config.KeySessionRemaining)
	durationRaw, okD := c.store.GetSetting(c.ctx, config.KeySessionDuration)
	if !okR || !okD {
		return
	}
	remaining, okR := util.ParseLeadingInt(remainingRaw)
	duration, okD := util.ParseLeadingInt(durationRaw)
	if !okR || !okD {
		return
	}
	runningRaw, _ := c.store.GetSetting(c.ctx, config.KeyIsRunning)
	c.timer.Restore(remaining, duration, runningRaw == "true")
}

// ParseMinutes reads a minute count from user input. Empty, unparsable, and
// non-positive input yields def; large values are capped at MaxMinutes.
func ParseMinutes(input string, def int) int {
	n, ok := util.ParseLeadingInt(input)
	if !ok || n <= 0 {
		return def
	}
	return util.Clamp(n, 1, config.MaxMinutes)
}

// persist runs under the timer lock.
func (c *Controller) persist(s models.Snapshot) {
	util.LogError("persist session", c.store.SetSettings(c.ctx, map[string]string{
		config.KeySessionRemaining: strconv.Itoa(s.Remaining),
		config.KeySessionDuration:  strconv.Itoa(s.Duration),
		config.KeyIsRunning:        util.BoolString(s.Running),
	}))
}

// record runs under the timer lock.
func (c *Controller) record(s models.Snapshot) {
	if !s.Completed {
		return
	}
	rec := models.SessionRecord{Kind: kindOf(s.Label), Label: s.Label, DurationSeconds: s.Duration}
	_, err := c.store.AddSessionRecord(c.ctx, rec)
	util.LogError("record session", err)
}

// kindOf maps the label a session was configured with to its kind. Restored
// sessions carry no label and count as custom.
func kindOf(label string) models.SessionKind {
	switch label {
	case config.StatusWorkStarted:
		return models.KindWork
	case config.StatusBreakTime:
		return models.KindBreak
	}
	return models.KindCustom
}
