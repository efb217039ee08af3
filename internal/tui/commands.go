package tui

import (
	"time"

	"github.com/akyairhashvil/focusring/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg is one scheduled tick. ID names the schedule it belongs to.
type TickMsg struct {
	ID uint64
	At time.Time
}

func tickCmd(id uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg{ID: id, At: t} })
}

// TickScheduler runs timer ticks on the bubbletea event loop. Each schedule
// gets a fresh ID; ticks carrying any other ID are dropped, so stopping a
// schedule needs no coordination with ticks already in flight.
type TickScheduler struct {
	next     uint64
	active   uint64
	interval time.Duration
	fn       func()
	pending  bool
}

func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

var _ timer.Scheduler = (*TickScheduler)(nil)

func (s *TickScheduler) Every(interval time.Duration, fn func()) timer.Schedule {
	if interval <= 0 {
		interval = time.Second
	}
	s.next++
	s.active = s.next
	s.interval = interval
	s.fn = fn
	s.pending = true
	return &tickHandle{s: s, id: s.active}
}

// Active reports whether a schedule is live.
func (s *TickScheduler) Active() bool {
	return s.active != 0
}

// Cmd returns the first tick of a schedule created since the last call.
func (s *TickScheduler) Cmd() tea.Cmd {
	if !s.pending || s.active == 0 {
		s.pending = false
		return nil
	}
	s.pending = false
	return tickCmd(s.active, s.interval)
}

// Fire delivers a tick and arms the next one while the schedule lives.
func (s *TickScheduler) Fire(msg TickMsg) tea.Cmd {
	if msg.ID == 0 || msg.ID != s.active || s.fn == nil {
		return nil
	}
	s.fn()
	if s.active != msg.ID {
		return nil
	}
	return tickCmd(msg.ID, s.interval)
}

type tickHandle struct {
	s  *TickScheduler
	id uint64
}

func (h *tickHandle) Stop() {
	if h.s.active != h.id {
		return
	}
	h.s.active = 0
	h.s.fn = nil
	h.s.pending = false
}
