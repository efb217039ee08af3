package tui

import (
	"github.com/akyairhashvil/focusring/internal/config"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	// FocusBackground is used by the full-screen clock.
	FocusBackground lipgloss.Color
	RingStart       string
	RingEnd         string

	Base   lipgloss.Style
	Header lipgloss.Style
	Clock  lipgloss.Style
	Status lipgloss.Style
	Input  lipgloss.Style
	Label  lipgloss.Style
	Dim    lipgloss.Style
	Error  lipgloss.Style
}

func newTheme(name string, bg, fg, focusBg, accent, dim lipgloss.Color, ringStart, ringEnd string) Theme {
	base := lipgloss.NewStyle().Background(bg).Foreground(fg)
	return Theme{
		Name:            name,
		Background:      bg,
		Foreground:      fg,
		FocusBackground: focusBg,
		RingStart:       ringStart,
		RingEnd:         ringEnd,
		Base:            base,
		Header:          base.Foreground(accent).Bold(true),
		Clock:           base.Bold(true),
		Status:          base.Foreground(accent),
		Input:           lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(fg).Foreground(fg).Padding(0, 1).Width(8),
		Label:           base,
		Dim:             base.Foreground(dim),
		Error:           base.Foreground(lipgloss.Color("#E05555")).Bold(true),
	}
}

// Themes mirrors the selectable theme ids. The image themes stand in for
// the wallpaper backgrounds with white text on a tinted field.
var Themes = map[string]Theme{
	"light":  newTheme("Light", "#f7f7f7", "#000000", "#f7f7f7", "#3C6FD1", "#777777", "#5A8DEE", "#3C6FD1"),
	"dark":   newTheme("Dark", "#171616", "#e4e1e1", "#0d0c0c", "#C792EA", "#6b6868", "#C792EA", "#82AAFF"),
	"green":  newTheme("Green", "#1B2B2B", "#DFFFE0", "#122020", "#7FE0A0", "#5F7F70", "#7FE0A0", "#3DBE7A"),
	"image":  newTheme("Wallpaper", "#3B4A5A", "#ffffff", "#22303D", "#F2D39B", "#A8B4C0", "#F2D39B", "#E8A87C"),
	"image1": newTheme("Wallpaper II", "#5A3B4A", "#ffffff", "#5A3B4A", "#F7C5D8", "#C0A8B4", "#F7C5D8", "#D88BA8"),
	"image2": newTheme("Wallpaper III", "#2F4F3F", "#ffffff", "#2F4F3F", "#CDE8B0", "#A0B8A8", "#CDE8B0", "#8CC56A"),
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes[config.DefaultTheme]

// SetTheme activates name, falling back to the default theme.
func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
		return
	}
	CurrentTheme = Themes[config.DefaultTheme]
}

// NextTheme returns the theme id after current in cycling order.
func NextTheme(current string) string {
	for i, name := range config.Themes {
		if name == current {
			return config.Themes[(i+1)%len(config.Themes)]
		}
	}
	return config.DefaultTheme
}

func newRing(width int) progress.Model {
	p := progress.New(progress.WithGradient(CurrentTheme.RingStart, CurrentTheme.RingEnd), progress.WithoutPercentage())
	p.Width = width
	return p
}
