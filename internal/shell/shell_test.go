package shell

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/focusring/internal/config"
	"github.com/akyairhashvil/focusring/internal/database"
	"github.com/akyairhashvil/focusring/internal/session"
	"github.com/akyairhashvil/focusring/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualScheduler fires ticks only when told to.
type manualScheduler struct {
	fn  func()
	gen int
}

type manualSchedule struct {
	s   *manualScheduler
	gen int
}

func (m *manualSchedule) Stop() {
	if m.s.gen == m.gen {
		m.s.fn = nil
	}
}

func (m *manualScheduler) Every(_ time.Duration, fn func()) timer.Schedule {
	m.gen++
	m.fn = fn
	return &manualSchedule{s: m, gen: m.gen}
}

func (m *manualScheduler) tick(n int) {
	for i := 0; i < n && m.fn != nil; i++ {
		m.fn()
	}
}

type fixture struct {
	sh    *Shell
	out   *bytes.Buffer
	ctrl  *session.Controller
	db    *database.Database
	sched *manualScheduler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(ctx, filepath.Join(t.TempDir(), "shell.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sched := &manualScheduler{}
	ctrl := session.New(ctx, db, timer.New(sched, time.Second))
	ctrl.Restore()

	out := &bytes.Buffer{}
	sh := newShell(ctx, ctrl, Options{Reports: db, ReportsDir: filepath.Join(t.TempDir(), "reports")}, out)
	return &fixture{sh: sh, out: out, ctrl: ctrl, db: db, sched: sched}
}

func (f *fixture) run(t *testing.T, lines ...string) string {
	t.Helper()
	f.out.Reset()
	for _, l := range lines {
		require.True(t, f.sh.Dispatch(l), "command %q ended the shell", l)
	}
	return f.out.String()
}

func TestDispatchWorkStartTick(t *testing.T) {
	f := newFixture(t)

	out := f.run(t, "work 2", "start")
	assert.Contains(t, out, "02:00  "+config.StatusWorkStarted)

	f.sched.tick(3)
	snap := f.ctrl.Snapshot()
	assert.True(t, snap.Running)
	assert.Equal(t, 117, snap.Remaining)
	assert.Equal(t, config.StatusResume, snap.Status)
	assert.Contains(t, f.out.String(), "01:57")
}

func TestDispatchWorkUsesSavedFocusTime(t *testing.T) {
	f := newFixture(t)
	f.run(t, "custom 40 10")

	f.run(t, "work")
	assert.Equal(t, 40*60, f.ctrl.Snapshot().Duration)

	f.run(t, "break")
	assert.Equal(t, 10*60, f.ctrl.Snapshot().Duration)
	assert.Equal(t, config.StatusBreakTime, f.ctrl.Snapshot().Status)
}

func TestDispatchCustomFallsBack(t *testing.T) {
	f := newFixture(t)
	out := f.run(t, "custom abc")
	assert.Contains(t, out, "Focus 25 min, break 5 min")
	assert.Equal(t, config.StatusCustomTimeSet, f.ctrl.Snapshot().Status)
}

func TestDispatchPauseResetClear(t *testing.T) {
	f := newFixture(t)
	f.run(t, "work 1", "start")
	f.sched.tick(10)

	f.run(t, "pause")
	snap := f.ctrl.Snapshot()
	assert.False(t, snap.Running)
	assert.Equal(t, 50, snap.Remaining)

	f.run(t, "reset")
	assert.Equal(t, 60, f.ctrl.Snapshot().Remaining)
	assert.Equal(t, config.StatusReset, f.ctrl.Snapshot().Status)

	out := f.run(t, "clear")
	assert.Contains(t, out, "Settings cleared!")
	snap = f.ctrl.Snapshot()
	assert.Equal(t, 0, snap.Duration)
	assert.Equal(t, config.StatusCleared, snap.Status)
}

func TestDispatchCompletionAndHistory(t *testing.T) {
	f := newFixture(t)
	out := f.run(t, "history")
	assert.Contains(t, out, "No completed sessions.")

	f.run(t, "work 1", "start")
	f.sched.tick(60)
	assert.Equal(t, config.StatusComplete, f.ctrl.Snapshot().Status)

	out = f.run(t, "history")
	assert.Contains(t, out, "work")
	assert.Contains(t, out, "01:00")

	out = f.run(t, "history clear")
	assert.Contains(t, out, "History cleared.")
	recs, err := f.db.ListSessionRecords(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.Contains(t, f.run(t, "history"), "No completed sessions.")
}

func TestDispatchTheme(t *testing.T) {
	f := newFixture(t)

	out := f.run(t, "theme green")
	assert.Contains(t, out, "Theme: green")
	v, ok := f.db.GetSetting(context.Background(), config.KeyTheme)
	require.True(t, ok)
	assert.Equal(t, "green", v)

	out = f.run(t, "theme solarized")
	assert.Contains(t, out, "using light")

	out = f.run(t, "theme")
	assert.Contains(t, out, "available:")
}

func TestDispatchWatchSuppressesTicks(t *testing.T) {
	f := newFixture(t)
	f.run(t, "work 1", "watch off", "start")

	f.out.Reset()
	f.sched.tick(5)
	assert.Empty(t, f.out.String())

	f.sched.tick(55)
	assert.Contains(t, f.out.String(), config.StatusComplete)

	out := f.run(t, "watch")
	assert.Contains(t, out, "Tick output: on")
}

func TestDispatchReport(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	out := f.run(t, "report "+dir)
	require.Contains(t, out, "Report saved: ")

	path := strings.TrimSpace(strings.TrimPrefix(out, "Report saved: "))
	assert.Equal(t, dir, filepath.Dir(path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestDispatchMisc(t *testing.T) {
	f := newFixture(t)

	assert.Empty(t, f.run(t, "   "))
	assert.Contains(t, f.run(t, "bogus"), "Unknown command: bogus")
	assert.Contains(t, f.run(t, "help"), "custom <focus> <break>")
	assert.Contains(t, f.run(t, "STATUS"), "00:00")

	assert.False(t, f.sh.Dispatch("quit"))
}

func TestStatusLine(t *testing.T) {
	f := newFixture(t)
	f.run(t, "work 1")
	line := statusLine(f.ctrl.Snapshot())
	assert.True(t, strings.HasPrefix(line, "01:00  "+config.StatusWorkStarted))
	assert.Contains(t, line, "100%")
	assert.Contains(t, line, "[stopped]")
}
