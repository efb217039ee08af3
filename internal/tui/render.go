package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/focusring/internal/config"
	"github.com/akyairhashvil/focusring/internal/models"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	snap := m.ctrl.Snapshot()
	if m.fullscreen {
		return m.renderFocus(snap)
	}
	if m.height > 0 && m.height < config.MinLayoutHeight {
		return statusLine(snap)
	}
	return m.renderMain(snap)
}

func (m Model) renderMain(snap models.Snapshot) string {
	var b strings.Builder

	b.WriteString(CurrentTheme.Header.Render(config.AppName) + "  " +
		CurrentTheme.Dim.Render("theme: "+CurrentTheme.Name) + "\n\n")
	b.WriteString(CurrentTheme.Clock.Render(snap.Clock()) + "\n")
	b.WriteString(m.progress.ViewAs(snap.Fraction()) + "\n")
	b.WriteString(CurrentTheme.Status.Render(snap.Status) + "\n\n")

	focus := CurrentTheme.Label.Render("Focus") + "\n" + m.inputBox(m.focusInput.View(), m.editing == editFocus)
	brk := CurrentTheme.Label.Render("Break") + "\n" + m.inputBox(m.breakInput.View(), m.editing == editBreak)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, focus, "  ", brk) + "\n")

	if len(m.history) > 0 {
		b.WriteString("\n" + CurrentTheme.Label.Render("Recent sessions") + "\n")
		for _, rec := range m.history {
			b.WriteString(CurrentTheme.Dim.Render(FormatRecord(rec)) + "\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.confirming:
		b.WriteString(CurrentTheme.Error.Render("Clear all saved settings? (y/N)") + "\n")
	case m.Message != "":
		b.WriteString(CurrentTheme.Dim.Render(m.Message) + "\n")
	}
	if m.editing != editNone {
		b.WriteString(CurrentTheme.Dim.Render("tab switch field • enter apply • esc done"))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	out := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out,
			lipgloss.WithWhitespaceBackground(CurrentTheme.Background))
	}
	return out
}

func (m Model) inputBox(view string, focused bool) string {
	style := CurrentTheme.Input
	if focused {
		style = style.BorderForeground(CurrentTheme.Status.GetForeground())
	}
	return style.Render(view)
}

func (m Model) renderFocus(snap models.Snapshot) string {
	clock := bigClock(snap.Clock(), m.width)
	body := lipgloss.JoinVertical(lipgloss.Center,
		CurrentTheme.Clock.Background(CurrentTheme.FocusBackground).Render(clock),
		"",
		CurrentTheme.Status.Background(CurrentTheme.FocusBackground).Render(snap.Status),
		"",
		m.help.ShortHelpView(m.keys.focusHelp()),
	)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(CurrentTheme.FocusBackground))
}

// statusLine is the one-line form used when the window is too small for
// the full layout.
func statusLine(snap models.Snapshot) string {
	return fmt.Sprintf("%s  %s  %3.0f%%", snap.Clock(), snap.Status, snap.Fraction()*100)
}
