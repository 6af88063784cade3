package platform

// Package platform answers the questions the dock cannot ask the toolkit:
// where the global cursor is and how big the screen is. Both are read by
// shelling out to per-OS utilities; command output parsing is kept in pure
// functions so it can be table-tested without a display.
