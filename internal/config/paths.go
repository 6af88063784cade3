package config

import (
	"os"
	"path/filepath"
)

const (
	appDirName       = "shydock"
	settingsFileName = "settings.json"
	buttonsFileName  = "buttons.json"
)

// DefaultConfigDir returns the per-user directory holding settings.json and
// buttons.json, e.g. ~/.config/shydock on Linux.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName), nil
}
