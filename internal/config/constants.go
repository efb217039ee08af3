package config

import "time"

// Timer defaults.
const (
	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 5
	DefaultTheme        = "light"
	MaxMinutes          = 999
	TickInterval        = time.Second
)

// Status labels shown next to the countdown.
const (
	StatusReady         = "Ready"
	StatusCustomTimeSet = "Custom Time Set"
	StatusWorkStarted   = "Work Started"
	StatusBreakTime     = "Break Time"
	StatusResume        = "Resume"
	StatusPaused        = "Paused"
	StatusReset         = "Reset"
	StatusComplete      = "Session Complete!"
	StatusCleared       = "Reset to Default"
	StatusPressStart    = "Press Start Button"
)

// Persisted setting keys. The names match the browser build so an exported
// store reads the same either way.
const (
	KeyFocusTime        = "focusTime"
	KeyBreakTime        = "breakTime"
	KeyTheme            = "theme"
	KeySessionRemaining = "sessionRemaining"
	KeySessionDuration  = "sessionDuration"
	KeyIsRunning        = "isRunning"
)

// Themes lists the selectable theme identifiers in cycling order.
var Themes = []string{"light", "dark", "green", "image", "image1", "image2"}

// IsKnownTheme reports whether name is one of Themes.
func IsKnownTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// Database/application settings.
const (
	AppName        = "focusring"
	DBFileName     = "focusring.db"
	ConfigFileName = "config.yaml"
	LogFileName    = "focusring.log"
)
