package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mordilloSan/go-logger/logger"

	"github.com/shydock/shydock/internal/model"
)

// buttonsDoc is the on-disk shape of buttons.json
type buttonsDoc struct {
	Buttons []model.ButtonDescriptor `json:"buttons"`
}

// Store reads and writes the two config documents. Loads self-heal: a
// missing, unreadable or undecodable file is replaced with defaults, and the
// defaults are returned. Saves go through a temp file plus rename so no
// partially written document is ever visible to a reader.
type Store struct {
	dir string
}

// NewStore returns a Store keeping its documents under dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory holding both documents
func (st *Store) Dir() string {
	return st.dir
}

// SettingsPath returns the full path of settings.json
func (st *Store) SettingsPath() string {
	return filepath.Join(st.dir, settingsFileName)
}

// ButtonsPath returns the full path of buttons.json
func (st *Store) ButtonsPath() string {
	return filepath.Join(st.dir, buttonsFileName)
}

// LoadSettings reads settings.json. Missing keys keep their defaults,
// out-of-range values are clamped, and a missing or corrupt file is healed
// back to the built-in defaults. The returned error reports only a failed
// heal write; the returned Settings are always valid.
func (st *Store) LoadSettings() (model.Settings, error) {
	path := st.SettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Infof("settings file %s missing, writing defaults", path)
		} else {
			logger.Warnf("%v, restoring defaults", &ReadError{Path: path, Err: err})
		}
		def := model.DefaultSettings()
		return def, st.SaveSettings(def)
	}

	s := model.DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		logger.Warnf("%v, restoring defaults", &ReadError{Path: path, Err: err})
		def := model.DefaultSettings()
		return def, st.SaveSettings(def)
	}
	s.Clamp()
	return s, nil
}

// SaveSettings serializes the full settings document to settings.json
func (st *Store) SaveSettings(s model.Settings) error {
	return st.writeDoc(st.SettingsPath(), s)
}

// LoadButtons reads buttons.json. A missing or corrupt file is healed back
// to an empty list; descriptors that fail validation are dropped with a
// warning so one bad entry cannot take down the rest of the dock.
func (st *Store) LoadButtons() ([]model.ButtonDescriptor, error) {
	path := st.ButtonsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Infof("buttons file %s missing, writing empty list", path)
		} else {
			logger.Warnf("%v, restoring empty list", &ReadError{Path: path, Err: err})
		}
		return []model.ButtonDescriptor{}, st.SaveButtons(nil)
	}

	var doc buttonsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warnf("%v, restoring empty list", &ReadError{Path: path, Err: err})
		return []model.ButtonDescriptor{}, st.SaveButtons(nil)
	}

	buttons := make([]model.ButtonDescriptor, 0, len(doc.Buttons))
	for _, b := range doc.Buttons {
		if err := b.Validate(); err != nil {
			logger.Warnf("dropping button %q from %s: %v", b.Name, path, err)
			continue
		}
		buttons = append(buttons, b)
	}
	return buttons, nil
}

// SaveButtons serializes the full button list to buttons.json
func (st *Store) SaveButtons(buttons []model.ButtonDescriptor) error {
	if buttons == nil {
		buttons = []model.ButtonDescriptor{}
	}
	return st.writeDoc(st.ButtonsPath(), buttonsDoc{Buttons: buttons})
}

func (st *Store) writeDoc(path string, v interface{}) error {
	if err := os.MkdirAll(st.dir, 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	data = append(data, '\n')

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
