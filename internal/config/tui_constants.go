package config

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// TargetRingWidth is the preferred width of the progress ring.
	TargetRingWidth = 40

	// MinRingWidth is the minimum width of the progress ring.
	MinRingWidth = 10

	// MinLayoutHeight is the smallest height that gets the full layout;
	// shorter windows show a single status line.
	MinLayoutHeight = 12
)

// Input constraints.
const (
	// MaxMinutesDigits bounds the minute input fields.
	MaxMinutesDigits = 3

	// HistoryRows is how many completed sessions the views list.
	HistoryRows = 5
)
