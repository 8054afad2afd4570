package app

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/hiudyy/DashLayer/internal/model"
)

// GetWidgets returns all persisted widgets in stored order.
func (a *App) GetWidgets() ([]model.Widget, error) {
	return a.Widgets.Load()
}

// SaveWidget creates or updates a widget record.
func (a *App) SaveWidget(w model.Widget) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return a.Widgets.Upsert(w)
}

// DeleteWidget removes the widget record and closes its window if one is
// open. The window close is best-effort: a missing or stubborn window
// never blocks the delete.
func (a *App) DeleteWidget(widgetID string) error {
	if err := a.Widgets.Delete(widgetID); err != nil {
		return err
	}
	if err := a.Windows.Close(widgetID); err != nil {
		log.Printf("[APP] close window for deleted widget %s: %v", widgetID, err)
	}
	return nil
}

// CreateWidgetWindow renders the widget and opens (or recreates) its
// window. Returns the widget id on success.
func (a *App) CreateWidgetWindow(w model.Widget) (string, error) {
	return a.Windows.Open(w)
}

// CloseWidgetWindow closes the widget's window if open.
func (a *App) CloseWidgetWindow(widgetID string) error {
	return a.Windows.Close(widgetID)
}

// GetProfiles returns all saved profiles.
func (a *App) GetProfiles() ([]model.Profile, error) {
	return a.Profiles.Load()
}

// SaveProfile creates or updates a profile snapshot.
func (a *App) SaveProfile(p model.Profile) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == "" {
		p.CreatedAt = time.Now().Format(time.RFC3339)
	}
	return a.Profiles.Upsert(p)
}

// DeleteProfile removes a profile by id.
func (a *App) DeleteProfile(profileID string) error {
	return a.Profiles.Delete(profileID)
}

// LoadProfile applies a profile: the current widget and dependency sets
// are overwritten wholesale with the profile's snapshot. No merge.
func (a *App) LoadProfile(p model.Profile) error {
	if err := a.Widgets.Replace(p.Widgets); err != nil {
		return err
	}
	return a.Dependencies.Replace(p.Dependencies)
}

// GetDependencies returns all tracked dependencies.
func (a *App) GetDependencies() ([]model.Dependency, error) {
	return a.Dependencies.Load()
}

// AddDependency records an external asset.
func (a *App) AddDependency(d model.Dependency) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.AddedAt == "" {
		d.AddedAt = time.Now().Format(time.RFC3339)
	}
	return a.Dependencies.Upsert(d)
}

// RemoveDependency removes a dependency by id.
func (a *App) RemoveDependency(dependencyID string) error {
	return a.Dependencies.Delete(dependencyID)
}

// GetAutostart reports whether the login launch entry exists.
func (a *App) GetAutostart() (bool, error) {
	return a.Autostart.Enabled()
}

// SetAutostart writes or removes the login launch entry.
func (a *App) SetAutostart(enabled bool) error {
	return a.Autostart.SetEnabled(enabled)
}

// GetScreenSize returns the primary screen geometry used by the editor
// for visual positioning. Fixed placeholder until live monitor queries
// are needed.
func (a *App) GetScreenSize() model.ScreenSize {
	return model.ScreenSize{Width: 1920, Height: 1080}
}

// LaunchAutostartWidgets opens a window for every widget flagged
// auto-start. Per-widget failures are logged and skipped so one bad
// widget does not block the rest.
func (a *App) LaunchAutostartWidgets() error {
	widgets, err := a.Widgets.Load()
	if err != nil {
		return err
	}

	for _, w := range widgets {
		if !w.AutoStart {
			continue
		}
		if _, err := a.Windows.Open(w); err != nil {
			log.Printf("[APP] autostart widget %s: %v", w.ID, err)
		}
	}
	return nil
}

// GetSystemInfo samples live CPU, memory, disk and temperature figures.
func (a *App) GetSystemInfo() model.SystemInfo {
	return a.Sampler.Sample()
}
