package config

import (
	"sync"

	"github.com/mordilloSan/go-logger/logger"

	"github.com/shydock/shydock/internal/model"
)

// View is the read-only face of the Manager handed to rendering code.
// Writers hold the concrete *Manager; everything else sees snapshots.
type View interface {
	Settings() model.Settings
	Buttons() []model.ButtonDescriptor
	Subscribe() <-chan struct{}
	Unsubscribe(<-chan struct{})
}

// Manager owns the live dock configuration: the settings document and the
// ordered button list. All mutation funnels through it — the settings panel
// and the file watcher are the only writers. Every successful mutation is
// persisted before it is committed, then subscribers are notified.
type Manager struct {
	mu          sync.RWMutex
	store       *Store
	settings    model.Settings
	buttons     []model.ButtonDescriptor
	subscribers []chan struct{}
}

// NewManager returns a Manager starting from the built-in defaults
func NewManager(store *Store) *Manager {
	return &Manager{
		store:       store,
		settings:    model.DefaultSettings(),
		buttons:     []model.ButtonDescriptor{},
		subscribers: make([]chan struct{}, 0),
	}
}

// Load reads both documents from disk, healing missing or corrupt ones.
// The returned error reports only failed heal writes; the in-memory state
// is always usable afterwards.
func (m *Manager) Load() error {
	settings, sErr := m.store.LoadSettings()
	buttons, bErr := m.store.LoadButtons()

	m.mu.Lock()
	m.settings = settings
	m.buttons = buttons
	m.mu.Unlock()

	if sErr != nil {
		return sErr
	}
	return bErr
}

// Settings returns a snapshot of the current settings
func (m *Manager) Settings() model.Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// Buttons returns a snapshot of the current button list
func (m *Manager) Buttons() []model.ButtonDescriptor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.ButtonDescriptor, len(m.buttons))
	copy(out, m.buttons)
	return out
}

// ApplySettings validates, persists and commits a full settings document.
// On error the previous settings remain in force, on disk and in memory.
func (m *Manager) ApplySettings(s model.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	if err := m.store.SaveSettings(s); err != nil {
		m.mu.Unlock()
		return err
	}
	m.settings = s
	m.mu.Unlock()

	m.notifySubscribers()
	return nil
}

// AddButton appends a validated descriptor and persists the new list
func (m *Manager) AddButton(d model.ButtonDescriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	next := append(m.Buttons(), d)
	return m.commitButtons(next)
}

// UpdateButton replaces the descriptor at index i
func (m *Manager) UpdateButton(i int, d model.ButtonDescriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	next := m.Buttons()
	if i < 0 || i >= len(next) {
		return &model.IndexError{Op: "update", Index: i, Len: len(next)}
	}
	next[i] = d
	return m.commitButtons(next)
}

// RemoveButton deletes the descriptor at index i
func (m *Manager) RemoveButton(i int) error {
	next := m.Buttons()
	if i < 0 || i >= len(next) {
		return &model.IndexError{Op: "remove", Index: i, Len: len(next)}
	}
	next = append(next[:i], next[i+1:]...)
	return m.commitButtons(next)
}

// MoveButton re-inserts the descriptor at from so it ends up at index to,
// shifting the descriptors between the two positions by one
func (m *Manager) MoveButton(from, to int) error {
	next, err := model.MoveButton(m.Buttons(), from, to)
	if err != nil {
		return err
	}
	return m.commitButtons(next)
}

// ReplaceButtons validates, persists and commits a full button list. The
// settings panel uses it to apply its working copy in one step.
func (m *Manager) ReplaceButtons(buttons []model.ButtonDescriptor) error {
	for _, b := range buttons {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	next := make([]model.ButtonDescriptor, len(buttons))
	copy(next, buttons)
	return m.commitButtons(next)
}

func (m *Manager) commitButtons(next []model.ButtonDescriptor) error {
	m.mu.Lock()
	if err := m.store.SaveButtons(next); err != nil {
		m.mu.Unlock()
		return err
	}
	m.buttons = next
	m.mu.Unlock()

	m.notifySubscribers()
	return nil
}

// reload re-reads both documents and commits them when they differ from the
// in-memory state. Returns true when subscribers were notified. The
// no-change path also swallows the watcher events produced by the manager's
// own atomic saves.
func (m *Manager) reload() bool {
	settings, sErr := m.store.LoadSettings()
	if sErr != nil {
		logger.Warnf("reload settings: %v", sErr)
	}
	buttons, bErr := m.store.LoadButtons()
	if bErr != nil {
		logger.Warnf("reload buttons: %v", bErr)
	}

	m.mu.Lock()
	changed := settings != m.settings || !buttonsEqual(buttons, m.buttons)
	m.settings = settings
	m.buttons = buttons
	m.mu.Unlock()

	if changed {
		logger.Infof("configuration reloaded from disk")
		m.notifySubscribers()
	}
	return changed
}

func buttonsEqual(a, b []model.ButtonDescriptor) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Subscribe returns a channel that receives a signal after every committed
// change. The channel is buffered; a slow consumer misses signals but never
// blocks a writer.
func (m *Manager) Subscribe() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan struct{}, 10)
	m.subscribers = append(m.subscribers, ch)
	return ch
}

// Unsubscribe closes and removes a channel returned by Subscribe
func (m *Manager) Unsubscribe(ch <-chan struct{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			close(sub)
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			return
		}
	}
}

func (m *Manager) notifySubscribers() {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, ch := range m.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
