package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Dock surface
const (
	// HiddenSliver is how many pixels of the dock stay on screen when it is
	// parked, so the panel itself remains hoverable
	HiddenSliver float32 = 5
)

// Toast notification sizing and behavior
const (
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Tooltip behavior
const (
	TooltipOffset   float32 = 8
	TooltipAutoHide         = 1500 * time.Millisecond
)

// Settings window sizing
const (
	SettingsWindowWidth  float32 = 480
	SettingsWindowHeight float32 = 540
)
