package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPrevious = "◀"
	IconNext     = "▶"
	IconFolder   = "📁"
	IconAdd      = "+"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	PositionFormat     = "%d / %d"
)

// Layout sizing
const (
	WindowWidth  float32 = 1800
	WindowHeight float32 = 900

	ImageMinWidth  float32 = 600
	ImageMinHeight float32 = 400

	SidePanelWidth float32 = 260
	CheckboxHeight float32 = 50

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 360
)

// Keyboard shortcuts
const (
	ShortcutNext     = 'm'
	ShortcutPrevious = 'n'
)

// Timings
const (
	WatchDebounce   = 500 * time.Millisecond
	ClassifyTimeout = 30 * time.Second
)
