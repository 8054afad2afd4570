// Package autostart manages the OS launch entry that starts the
// application at login.
package autostart

import (
	"fmt"
	"os"
	"path/filepath"
)

// Manager writes and removes the platform launch-entry file.
type Manager struct {
	dir string
}

// NewManager resolves the platform autostart directory.
func NewManager() (*Manager, error) {
	dir, err := entryDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get autostart directory: %w", err)
	}
	return &Manager{dir: dir}, nil
}

// NewManagerAt returns a manager using the given entry directory instead
// of the platform default.
func NewManagerAt(dir string) *Manager {
	return &Manager{dir: dir}
}

// Enabled reports whether a launch entry currently exists.
func (m *Manager) Enabled() (bool, error) {
	_, err := os.Stat(m.entryPath())
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SetEnabled writes the launch entry when enabled, removes it otherwise.
// Disabling when no entry exists is a no-op.
func (m *Manager) SetEnabled(enabled bool) error {
	path := m.entryPath()

	if !enabled {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove autostart file: %w", err)
		}
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return fmt.Errorf("failed to create autostart directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(entryContent(exe)), 0644); err != nil {
		return fmt.Errorf("failed to write autostart file: %w", err)
	}
	return nil
}

func (m *Manager) entryPath() string {
	return filepath.Join(m.dir, entryFileName)
}
