package app

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/hiudyy/DashLayer/internal/autostart"
	"github.com/hiudyy/DashLayer/internal/model"
	"github.com/hiudyy/DashLayer/internal/window"
)

type recordingHandle struct{}

func (recordingHandle) Close() error { return nil }

// recordingHost tracks created windows by title and can be told to refuse
// specific widgets.
type recordingHost struct {
	mu      sync.Mutex
	titles  []string
	refused map[string]bool
}

func (h *recordingHost) CreateWindow(opts window.Options) (window.Handle, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.refused[opts.Title] {
		return nil, errors.New("host refused")
	}
	h.titles = append(h.titles, opts.Title)
	return recordingHandle{}, nil
}

func newTestApp(t *testing.T) (*App, *recordingHost) {
	t.Helper()
	host := &recordingHost{refused: make(map[string]bool)}
	dir := t.TempDir()
	a, err := NewAt(filepath.Join(dir, "config"), host, autostart.NewManagerAt(filepath.Join(dir, "autostart")))
	if err != nil {
		t.Fatalf("NewAt() error = %v", err)
	}
	return a, host
}

func TestGetWidgets_EmptyStore(t *testing.T) {
	a, _ := newTestApp(t)

	widgets, err := a.GetWidgets()
	if err != nil {
		t.Fatalf("GetWidgets() error = %v", err)
	}
	if len(widgets) != 0 {
		t.Errorf("len(widgets) = %d, want 0", len(widgets))
	}
}

func TestSaveWidget_AssignsID(t *testing.T) {
	a, _ := newTestApp(t)

	if err := a.SaveWidget(model.Widget{Name: "clock"}); err != nil {
		t.Fatalf("SaveWidget() error = %v", err)
	}

	widgets, _ := a.GetWidgets()
	if len(widgets) != 1 {
		t.Fatalf("len(widgets) = %d, want 1", len(widgets))
	}
	if widgets[0].ID == "" {
		t.Error("saved widget has empty id")
	}
}

func TestDeleteWidget_ClosesOpenWindow(t *testing.T) {
	a, _ := newTestApp(t)
	w := model.Widget{ID: "w1", Name: "clock"}
	_ = a.SaveWidget(w)

	if _, err := a.CreateWidgetWindow(w); err != nil {
		t.Fatalf("CreateWidgetWindow() error = %v", err)
	}
	if err := a.DeleteWidget("w1"); err != nil {
		t.Fatalf("DeleteWidget() error = %v", err)
	}

	if a.Windows.IsOpen("w1") {
		t.Error("window still open after DeleteWidget")
	}
	widgets, _ := a.GetWidgets()
	if len(widgets) != 0 {
		t.Errorf("len(widgets) = %d, want 0", len(widgets))
	}
}

func TestDeleteWidget_NoWindowOpen(t *testing.T) {
	a, _ := newTestApp(t)
	_ = a.SaveWidget(model.Widget{ID: "w1"})

	if err := a.DeleteWidget("w1"); err != nil {
		t.Errorf("DeleteWidget() with no open window error = %v, want nil", err)
	}
}

func TestDependencies_Scenario(t *testing.T) {
	a, _ := newTestApp(t)
	dep := model.Dependency{
		ID:      "d1",
		URL:     "https://x/y.css",
		Name:    "y",
		Cached:  false,
		AddedAt: "2024-01-01",
	}

	if err := a.AddDependency(dep); err != nil {
		t.Fatalf("AddDependency() error = %v", err)
	}

	deps, err := a.GetDependencies()
	if err != nil {
		t.Fatalf("GetDependencies() error = %v", err)
	}
	if len(deps) != 1 {
		t.Fatalf("len(deps) = %d, want 1", len(deps))
	}
	if deps[0] != dep {
		t.Errorf("dep = %+v, want %+v", deps[0], dep)
	}

	if err := a.RemoveDependency("d1"); err != nil {
		t.Fatalf("RemoveDependency() error = %v", err)
	}
	deps, _ = a.GetDependencies()
	if len(deps) != 0 {
		t.Errorf("len(deps) after remove = %d, want 0", len(deps))
	}
}

func TestLoadProfile_TotalOverwrite(t *testing.T) {
	a, _ := newTestApp(t)

	// Prior state not present in the profile must be gone after load.
	_ = a.SaveWidget(model.Widget{ID: "w3", Name: "stale"})
	_ = a.AddDependency(model.Dependency{ID: "stale-dep"})

	p := model.Profile{
		ID:           "p1",
		Name:         "work",
		Widgets:      []model.Widget{{ID: "w1"}, {ID: "w2"}},
		Dependencies: []model.Dependency{{ID: "d1"}},
		CreatedAt:    "2024-01-01T00:00:00Z",
	}
	if err := a.LoadProfile(p); err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}

	widgets, _ := a.GetWidgets()
	if len(widgets) != 2 {
		t.Fatalf("len(widgets) = %d, want 2", len(widgets))
	}
	for _, w := range widgets {
		if w.ID == "w3" {
			t.Error("stale widget w3 survived profile load")
		}
	}

	deps, _ := a.GetDependencies()
	if len(deps) != 1 || deps[0].ID != "d1" {
		t.Errorf("deps = %+v, want exactly [d1]", deps)
	}
}

func TestSaveProfile_RoundTrip(t *testing.T) {
	a, _ := newTestApp(t)

	p := model.Profile{Name: "home", Widgets: []model.Widget{{ID: "w1"}}}
	if err := a.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	profiles, err := a.GetProfiles()
	if err != nil {
		t.Fatalf("GetProfiles() error = %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("len(profiles) = %d, want 1", len(profiles))
	}
	if profiles[0].ID == "" || profiles[0].CreatedAt == "" {
		t.Errorf("profile missing assigned id/createdAt: %+v", profiles[0])
	}

	if err := a.DeleteProfile(profiles[0].ID); err != nil {
		t.Fatalf("DeleteProfile() error = %v", err)
	}
	profiles, _ = a.GetProfiles()
	if len(profiles) != 0 {
		t.Errorf("len(profiles) after delete = %d, want 0", len(profiles))
	}
}

func TestLaunchAutostartWidgets(t *testing.T) {
	a, host := newTestApp(t)

	_ = a.SaveWidget(model.Widget{ID: "w1", Name: "auto-1", AutoStart: true})
	_ = a.SaveWidget(model.Widget{ID: "w2", Name: "manual", AutoStart: false})
	_ = a.SaveWidget(model.Widget{ID: "w3", Name: "auto-2", AutoStart: true})

	if err := a.LaunchAutostartWidgets(); err != nil {
		t.Fatalf("LaunchAutostartWidgets() error = %v", err)
	}

	if len(host.titles) != 2 {
		t.Fatalf("created windows = %v, want the two auto-start widgets", host.titles)
	}
	for _, title := range host.titles {
		if title == "manual" {
			t.Error("non-autostart widget was launched")
		}
	}
}

func TestLaunchAutostartWidgets_BadWidgetDoesNotBlockRest(t *testing.T) {
	a, host := newTestApp(t)
	host.refused["broken"] = true

	_ = a.SaveWidget(model.Widget{ID: "w1", Name: "broken", AutoStart: true})
	_ = a.SaveWidget(model.Widget{ID: "w2", Name: "fine", AutoStart: true})

	if err := a.LaunchAutostartWidgets(); err != nil {
		t.Fatalf("LaunchAutostartWidgets() error = %v, want nil despite bad widget", err)
	}
	if len(host.titles) != 1 || host.titles[0] != "fine" {
		t.Errorf("created windows = %v, want just the healthy widget", host.titles)
	}
}

func TestGetScreenSize_Placeholder(t *testing.T) {
	a, _ := newTestApp(t)

	size := a.GetScreenSize()
	if size.Width != 1920 || size.Height != 1080 {
		t.Errorf("GetScreenSize() = %+v, want 1920x1080", size)
	}
}

func TestAutostartCommands(t *testing.T) {
	a, _ := newTestApp(t)

	enabled, err := a.GetAutostart()
	if err != nil {
		t.Fatalf("GetAutostart() error = %v", err)
	}
	if enabled {
		t.Error("GetAutostart() = true on fresh install")
	}

	if err := a.SetAutostart(true); err != nil {
		t.Fatalf("SetAutostart(true) error = %v", err)
	}
	enabled, _ = a.GetAutostart()
	if !enabled {
		t.Error("GetAutostart() = false after SetAutostart(true)")
	}
}
