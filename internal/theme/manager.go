// internal/theme/manager.go
package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/jot/internal/logger"
)

// Manager holds loaded themes and the active one.
type Manager struct {
	mutex       sync.RWMutex
	themes      map[string]*Theme // lowercase name -> theme
	activeTheme *Theme
}

// NewManager creates a manager holding the built-in themes, with Paper active.
func NewManager() *Manager {
	mgr := &Manager{themes: make(map[string]*Theme)}
	mgr.themes[strings.ToLower(Paper.Name)] = &Paper
	mgr.activeTheme = &Paper
	return mgr
}

// LoadFile loads a theme file, registers it and makes it active.
func (m *Manager) LoadFile(path string) error {
	theme, err := LoadThemeFromFile(path)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	key := strings.ToLower(theme.Name)
	if existing, ok := m.themes[key]; ok {
		logger.Warnf("Theme '%s' from '%s' overrides existing theme '%s'", theme.Name, path, existing.Name)
	}
	m.themes[key] = theme
	m.activeTheme = theme
	logger.Infof("Active theme set to: %s", theme.Name)
	return nil
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.activeTheme
}

// SetTheme sets the active theme by name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	theme, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	m.activeTheme = theme
	return nil
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, theme := range m.themes {
		names = append(names, theme.Name)
	}
	sort.Strings(names)
	return names
}
