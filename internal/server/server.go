// Package server exposes a localhost HTTP surface for rendered widget
// windows: live telemetry, sample history, and record-change events.
package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/hiudyy/DashLayer/internal/sysinfo"
	"github.com/hiudyy/DashLayer/internal/watcher"
)

// Server represents the HTTP server configuration and mux.
type Server struct {
	Mux        *http.ServeMux
	httpServer *http.Server

	sampler   *sysinfo.Sampler
	collector *sysinfo.Collector
	watcher   *watcher.Service
}

// New creates a Server wired to the given telemetry and watcher services.
func New(sampler *sysinfo.Sampler, collector *sysinfo.Collector, w *watcher.Service) *Server {
	return &Server{
		Mux:       http.NewServeMux(),
		sampler:   sampler,
		collector: collector,
		watcher:   w,
	}
}

// Routes registers all HTTP handlers on the server mux.
func (s *Server) Routes() {
	s.Mux.HandleFunc("/health", healthHandler)
	s.Mux.HandleFunc("/api/system", SystemHandler(s.sampler))
	s.Mux.HandleFunc("/api/system/history", sysinfo.HistoryHandler(s.collector))
	s.Mux.HandleFunc("/api/events", EventsHandler(s.watcher))
	s.Mux.Handle("/ws/system", WsSystemHandler(s.sampler))
}

// Start starts the HTTP server on the given port bound to localhost.
// It runs ListenAndServe in a goroutine and returns immediately.
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	log.Printf("[SERVER] starting widget feed on %s", addr)
	s.httpServer = &http.Server{Addr: addr, Handler: s.Mux}
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[SERVER] error: %v", err)
		}
	}()
	return nil
}

// Shutdown stops accepting connections and closes the server.
func (s *Server) Shutdown() error {
	if s.httpServer != nil {
		if err := s.httpServer.Close(); err != nil {
			log.Printf("[SERVER] error closing http server: %v", err)
		}
	}
	return nil
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
