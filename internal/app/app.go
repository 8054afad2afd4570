// Package app wires the services together and exposes the command
// surface bound to the frontend.
package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hiudyy/DashLayer/internal/autostart"
	"github.com/hiudyy/DashLayer/internal/model"
	"github.com/hiudyy/DashLayer/internal/server"
	"github.com/hiudyy/DashLayer/internal/store"
	"github.com/hiudyy/DashLayer/internal/sysinfo"
	"github.com/hiudyy/DashLayer/internal/watcher"
	"github.com/hiudyy/DashLayer/internal/window"
)

const appDirName = "dashlayer"

// Port the local widget feed binds to on 127.0.0.1.
const feedPort = 8711

// App struct
type App struct {
	ctx context.Context

	configDir string

	// Services
	Widgets      *store.Store[model.Widget]
	Profiles     *store.Store[model.Profile]
	Dependencies *store.Store[model.Dependency]
	Windows      *window.Manager
	Sampler      *sysinfo.Sampler
	Collector    *sysinfo.Collector
	Watcher      *watcher.Service
	Server       *server.Server
	Autostart    *autostart.Manager
}

// New creates the application with production wiring: stores under the
// user config dir, per-widget windows as webview child processes.
func New() (*App, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration directory: %w", err)
	}

	am, err := autostart.NewManager()
	if err != nil {
		return nil, err
	}

	return NewAt(filepath.Join(configDir, appDirName), window.ProcessHost{}, am)
}

// NewAt creates the application rooted at the given config directory with
// the given window host.
func NewAt(configDir string, host window.Host, am *autostart.Manager) (*App, error) {
	sampler := sysinfo.NewSampler()
	collector := sysinfo.NewCollector(sampler.Sample, configDir)

	w, err := watcher.New(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}

	srv := server.New(sampler, collector, w)
	srv.Routes()

	return &App{
		configDir:    configDir,
		Widgets:      store.New[model.Widget](filepath.Join(configDir, "widgets.json")),
		Profiles:     store.New[model.Profile](filepath.Join(configDir, "profiles.json")),
		Dependencies: store.New[model.Dependency](filepath.Join(configDir, "dependencies.json")),
		Windows:      window.NewManager(host, filepath.Join(configDir, "widgets")),
		Sampler:      sampler,
		Collector:    collector,
		Watcher:      w,
		Server:       srv,
		Autostart:    am,
	}, nil
}

// Startup is called at application startup.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	if err := a.ensureDirectories(); err != nil {
		log.Printf("[APP] %v", err)
	}

	a.Collector.Start()
	a.Watcher.Start()
	if err := a.Server.Start(feedPort); err != nil {
		log.Printf("[APP] failed to start widget feed: %v", err)
	}
}

// Shutdown is called at application termination.
func (a *App) Shutdown(ctx context.Context) {
	_ = a.Server.Shutdown()
	a.Watcher.Stop()
	a.Collector.Stop()
	a.Windows.CloseAll()
}

// ensureDirectories creates the config and cache directories. The cache
// directory holds fetched dependency assets once caching lands.
func (a *App) ensureDirectories() error {
	if err := os.MkdirAll(a.configDir, 0755); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(a.configDir, "cache"), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}
