package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/akyairhashvil/focusring/internal/config"
	"github.com/akyairhashvil/focusring/internal/report"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	editNone = iota
	editFocus
	editBreak
)

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.TargetRingWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		if target < config.MinRingWidth {
			target = config.MinRingWidth
		}
		m.progress.Width = target
	}
	m.help.Width = m.width
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	wasRunning := m.ctrl.Snapshot().Running
	cmd := m.sched.Fire(msg)
	snap := m.ctrl.Snapshot()
	if wasRunning && !snap.Running && snap.Status == config.StatusComplete {
		m.history = m.ctrl.History(config.HistoryRows)
		m.Message = "Session complete."
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.confirming {
		return m.handleConfirmClear(msg)
	}
	if m.editing != editNone {
		return m.handleEditing(msg)
	}
	// Clear transient messages on keypress
	m.Message = ""
	return m.handleNormalMode(msg)
}

func (m Model) handleNormalMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		m.ctrl.Start()
	case key.Matches(msg, m.keys.Pause):
		m.ctrl.Pause()
	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()
	case key.Matches(msg, m.keys.FullScreen):
		m.fullscreen = !m.fullscreen
	case m.fullscreen:
		// The full-screen clock only takes the controls above.
		return m, nil
	case key.Matches(msg, m.keys.Work):
		m.ctrl.StartWork(m.focusInput.Value())
	case key.Matches(msg, m.keys.Break):
		m.ctrl.StartBreak(m.breakInput.Value())
	case key.Matches(msg, m.keys.Apply):
		m = m.applyCustomTime()
	case key.Matches(msg, m.keys.Theme):
		m = m.applyTheme(NextTheme(m.theme))
	case key.Matches(msg, m.keys.Edit):
		m.editing = editFocus
		m.breakInput.Blur()
		cmd := m.focusInput.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Clear):
		m.confirming = true
	case key.Matches(msg, m.keys.Export):
		m = m.exportReport()
	}
	return m, nil
}

func (m Model) handleEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m = m.stopEditing()
		return m, nil
	case tea.KeyEnter:
		m = m.stopEditing()
		m = m.applyCustomTime()
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab:
		var cmd tea.Cmd
		if m.editing == editFocus {
			m.editing = editBreak
			m.focusInput.Blur()
			cmd = m.breakInput.Focus()
		} else {
			m.editing = editFocus
			m.breakInput.Blur()
			cmd = m.focusInput.Focus()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	if m.editing == editFocus {
		m.focusInput, cmd = m.focusInput.Update(msg)
	} else {
		m.breakInput, cmd = m.breakInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleConfirmClear(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.confirming = false
	switch msg.String() {
	case "y", "Y":
		m.ctrl.Clear()
		prefs := m.ctrl.Preferences()
		m.focusInput.SetValue(strconv.Itoa(prefs.FocusMinutes))
		m.breakInput.SetValue(strconv.Itoa(prefs.BreakMinutes))
		m.theme = prefs.Theme
		SetTheme(m.theme)
		m.progress = newRing(m.progress.Width)
		m.Message = "Settings cleared! Timer reset."
	default:
		m.Message = "Clear cancelled."
	}
	return m, nil
}

func (m Model) stopEditing() Model {
	m.editing = editNone
	m.focusInput.Blur()
	m.breakInput.Blur()
	return m
}

// applyCustomTime also normalises the inputs to the values actually used.
func (m Model) applyCustomTime() Model {
	m.ctrl.ApplyCustomTime(m.focusInput.Value(), m.breakInput.Value())
	prefs := m.ctrl.Preferences()
	m.focusInput.SetValue(strconv.Itoa(prefs.FocusMinutes))
	m.breakInput.SetValue(strconv.Itoa(prefs.BreakMinutes))
	return m
}

func (m Model) applyTheme(name string) Model {
	m.theme = m.ctrl.SetTheme(name)
	SetTheme(m.theme)
	m.progress = newRing(m.progress.Width)
	m.Message = fmt.Sprintf("Theme: %s", CurrentTheme.Name)
	return m
}

func (m Model) exportReport() Model {
	if m.opts.Reports == nil || m.opts.ReportsDir == "" {
		m.Message = "Reports are not configured."
		return m
	}
	path, err := report.ExportDay(m.ctx, m.opts.Reports, m.opts.ReportsDir, time.Now())
	if err != nil {
		m.Message = fmt.Sprintf("Export failed: %v", err)
		return m
	}
	m.Message = fmt.Sprintf("Report saved: %s", path)
	return m
}
