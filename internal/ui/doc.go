package ui

// Package ui contains the Fyne-based surfaces of the dock: the edge panel
// itself, its launcher buttons, and the tabbed settings window. The dock
// renders from a read-only configuration view; all mutation goes through the
// settings panel and the config manager.
