// Package tui is the terminal front end: it renders the countdown and
// forwards key presses to the session controller.
package tui

import (
	"context"
	"strconv"

	"github.com/akyairhashvil/focusring/internal/config"
	"github.com/akyairhashvil/focusring/internal/models"
	"github.com/akyairhashvil/focusring/internal/report"
	"github.com/akyairhashvil/focusring/internal/session"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Options carries the optional collaborators of the model.
type Options struct {
	Reports    report.Source
	ReportsDir string
}

// Controller is the part of session.Controller the TUI drives.
type Controller interface {
	ApplyCustomTime(focusInput, breakInput string)
	StartWork(minutesInput string)
	StartBreak(breakInput string)
	Start()
	Pause()
	Reset()
	Clear()
	SetTheme(name string) string
	Snapshot() models.Snapshot
	Preferences() models.Preferences
	History(limit int) []models.SessionRecord
}

var _ Controller = (*session.Controller)(nil)

// Model is the root bubbletea model.
type Model struct {
	ctx   context.Context
	ctrl  Controller
	sched *TickScheduler
	opts  Options

	keys     keyMap
	help     help.Model
	progress progress.Model

	focusInput textinput.Model
	breakInput textinput.Model
	editing    int // 0 none, 1 focus, 2 break

	theme      string
	fullscreen bool
	confirming bool
	history    []models.SessionRecord
	lastTitle  string
	Message    string
	width      int
	height     int
}

// NewModel builds the model around an already restored controller. sched
// must be the scheduler the controller's timer was built with.
func NewModel(ctx context.Context, ctrl Controller, sched *TickScheduler, opts Options) Model {
	prefs := ctrl.Preferences()
	SetTheme(prefs.Theme)

	fi := textinput.New()
	fi.CharLimit = config.MaxMinutesDigits
	fi.Width = 4
	fi.Prompt = ""
	fi.SetValue(strconv.Itoa(prefs.FocusMinutes))

	bi := textinput.New()
	bi.CharLimit = config.MaxMinutesDigits
	bi.Width = 4
	bi.Prompt = ""
	bi.SetValue(strconv.Itoa(prefs.BreakMinutes))

	return Model{
		ctx:        ctx,
		ctrl:       ctrl,
		sched:      sched,
		opts:       opts,
		keys:       defaultKeyMap(),
		help:       help.New(),
		progress:   newRing(config.TargetRingWidth),
		focusInput: fi,
		breakInput: bi,
		theme:      prefs.Theme,
		history:    ctrl.History(config.HistoryRows),
	}
}

func (m Model) Init() tea.Cmd {
	title := m.ctrl.Snapshot().Title()
	return tea.SetWindowTitle(title)
}

// Update routes msg and follows up with the window title and any tick the
// handled message scheduled.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	cmds := []tea.Cmd{cmd, next.sched.Cmd()}
	if title := next.ctrl.Snapshot().Title(); title != next.lastTitle {
		next.lastTitle = title
		cmds = append(cmds, tea.SetWindowTitle(title))
	}
	return next, tea.Batch(cmds...)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}
