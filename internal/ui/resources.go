package ui

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/mordilloSan/go-logger/logger"
)

// placeholderIcon is the glyph shown when a button has no icon path or the
// file cannot be read. A missing icon degrades the button, never the dock.
func placeholderIcon() fyne.Resource {
	return theme.BrokenImageIcon()
}

// loadButtonIcon loads the icon resource for a descriptor path, degrading to
// the placeholder glyph on any failure
func loadButtonIcon(path string) fyne.Resource {
	if path == "" {
		return placeholderIcon()
	}
	if _, err := os.Stat(path); err != nil {
		logger.Debugf("icon %s unreadable, using placeholder: %v", path, err)
		return placeholderIcon()
	}
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		logger.Debugf("icon %s failed to load, using placeholder: %v", path, err)
		return placeholderIcon()
	}
	return res
}
