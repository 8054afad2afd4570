package window

import (
	"fmt"
	"log"
	"sync"

	"github.com/hiudyy/DashLayer/internal/model"
	"github.com/hiudyy/DashLayer/internal/render"
)

// Manager tracks at most one live window per widget id. The map is only
// touched under the manager's lock, and the lock spans the whole
// close-then-recreate sequence in Open so two concurrent opens for the
// same id cannot both succeed.
type Manager struct {
	mu      sync.Mutex
	host    Host
	dir     string
	windows map[string]Handle
}

// NewManager returns a manager that persists rendered documents under
// widgetsDir and requests windows from host.
func NewManager(host Host, widgetsDir string) *Manager {
	return &Manager{
		host:    host,
		dir:     widgetsDir,
		windows: make(map[string]Handle),
	}
}

// Open creates a window for the widget, closing any existing window for
// the same id first. There is no diffing against the old window; an open
// is always a full recreate. Returns the widget id on success.
func (m *Manager) Open(w model.Widget) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.windows[w.ID]; ok {
		if err := existing.Close(); err != nil {
			log.Printf("[WINDOW] close of stale window %s: %v", w.ID, err)
		}
		delete(m.windows, w.ID)
	}

	path, err := render.WriteFile(m.dir, w)
	if err != nil {
		return "", err
	}

	handle, err := m.host.CreateWindow(Options{
		Title:       w.Name,
		URL:         "file://" + path,
		Width:       w.Width,
		Height:      w.Height,
		X:           w.X,
		Y:           w.Y,
		Frameless:   true,
		Transparent: w.Transparent,
		AlwaysOnTop: w.AlwaysOnTop,
		SkipTaskbar: true,
		Resizable:   true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create widget window: %w", err)
	}

	m.windows[w.ID] = handle
	return w.ID, nil
}

// Close tears down the window for the given widget id. Closing an id with
// no open window is a no-op, not an error.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	handle, ok := m.windows[id]
	if !ok {
		return nil
	}
	delete(m.windows, id)

	if err := handle.Close(); err != nil {
		return fmt.Errorf("failed to close widget window: %w", err)
	}
	return nil
}

// CloseAll tears down every tracked window, best-effort.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, handle := range m.windows {
		if err := handle.Close(); err != nil {
			log.Printf("[WINDOW] close %s: %v", id, err)
		}
		delete(m.windows, id)
	}
}

// IsOpen reports whether a window is currently tracked for the id.
func (m *Manager) IsOpen(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.windows[id]
	return ok
}

// Count returns the number of tracked windows.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.windows)
}
