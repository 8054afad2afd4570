// Package watcher notifies subscribers when a record file in the config
// directory changes on disk, so the UI can pick up external edits.
package watcher

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Record kinds reported in events.
const (
	KindWidgets      = "widgets"
	KindProfiles     = "profiles"
	KindDependencies = "dependencies"
)

// Event is the payload sent to clients when a record file changes.
type Event struct {
	Kind string `json:"kind"`
	File string `json:"file"`
}

var watchedFiles = map[string]string{
	"widgets.json":      KindWidgets,
	"profiles.json":     KindProfiles,
	"dependencies.json": KindDependencies,
}

// Service watches the config directory and broadcasts record-file change
// events to subscriber channels.
type Service struct {
	watcher *fsnotify.Watcher
	dir     string
	clients map[chan Event]bool
	mu      sync.Mutex
	done    chan struct{}
}

// New creates a watcher service over the given config directory.
func New(dir string) (*Service, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Service{
		watcher: w,
		dir:     dir,
		clients: make(map[chan Event]bool),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching and broadcasting. The config directory must exist
// before it can be watched; record stores create it on first write.
func (s *Service) Start() {
	if err := s.watcher.Add(s.dir); err != nil {
		log.Printf("[WATCHER] error watching %s: %v", s.dir, err)
	}
	go s.loop()
}

// Stop stops the watcher.
func (s *Service) Stop() {
	close(s.done)
	s.watcher.Close()
}

// Subscribe listens for events.
func (s *Service) Subscribe() chan Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan Event, 100) // Buffer to prevent blocking
	s.clients[ch] = true
	return ch
}

// Unsubscribe removes a listener.
func (s *Service) Unsubscribe(ch chan Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[ch]; ok {
		delete(s.clients, ch)
		close(ch)
	}
}

func (s *Service) loop() {
	// path -> timestamp, simple debounce
	lastEvent := make(map[string]time.Time)

	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}

			name := filepath.Base(event.Name)
			kind, ok := watchedFiles[name]
			if !ok {
				continue
			}

			if time.Since(lastEvent[name]) < 500*time.Millisecond {
				continue
			}
			lastEvent[name] = time.Now()

			log.Printf("[WATCHER] %s changed (%s)", name, event.Op)
			s.broadcast(Event{Kind: kind, File: name})

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[WATCHER] error: %v", err)
		}
	}
}

func (s *Service) broadcast(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.clients {
		select {
		case ch <- e:
		default:
			// Drop event if client too slow
		}
	}
}
