package tui

import (
	"testing"
	"time"
)

func TestTickSchedulerFiresActiveSchedule(t *testing.T) {
	s := NewTickScheduler()
	calls := 0
	h := s.Every(time.Second, func() { calls++ })

	if s.Cmd() == nil {
		t.Fatalf("expected first tick command")
	}
	if s.Cmd() != nil {
		t.Fatalf("expected pending tick to be consumed")
	}
	id := s.active
	if cmd := s.Fire(TickMsg{ID: id}); cmd == nil {
		t.Fatalf("expected re-armed tick")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}

	h.Stop()
	if s.Active() {
		t.Fatalf("expected schedule to be stopped")
	}
	if cmd := s.Fire(TickMsg{ID: id}); cmd != nil {
		t.Fatalf("expected stale tick to be dropped")
	}
	if calls != 1 {
		t.Fatalf("stale tick ran the callback")
	}
	h.Stop()
}

func TestTickSchedulerReplacesSchedule(t *testing.T) {
	s := NewTickScheduler()
	first, second := 0, 0
	old := s.Every(time.Second, func() { first++ })
	oldID := s.active
	s.Every(time.Second, func() { second++ })

	old.Stop()
	if !s.Active() {
		t.Fatalf("stopping a replaced schedule must not stop the live one")
	}
	s.Fire(TickMsg{ID: oldID})
	s.Fire(TickMsg{ID: s.active})
	if first != 0 || second != 1 {
		t.Fatalf("unexpected calls first=%d second=%d", first, second)
	}
}

func TestTickSchedulerStopInsideCallback(t *testing.T) {
	s := NewTickScheduler()
	var h interface{ Stop() }
	h = s.Every(time.Second, func() { h.Stop() })
	if cmd := s.Fire(TickMsg{ID: s.active}); cmd != nil {
		t.Fatalf("expected no follow-up tick after stop")
	}
	if s.Cmd() != nil {
		t.Fatalf("expected no pending tick")
	}
}

func TestTickSchedulerDefaultsInterval(t *testing.T) {
	s := NewTickScheduler()
	s.Every(0, func() {})
	if s.interval != time.Second {
		t.Fatalf("expected 1s default interval, got %v", s.interval)
	}
}
