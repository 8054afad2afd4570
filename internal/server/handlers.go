package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hiudyy/DashLayer/internal/sysinfo"
	"github.com/hiudyy/DashLayer/internal/watcher"
)

// How often the websocket stream pushes a fresh sample.
const streamInterval = 2 * time.Second

// SystemHandler serves a one-shot telemetry snapshot.
func SystemHandler(s *sysinfo.Sampler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(s.Sample())
	}
}

// EventsHandler streams record-change events over Server-Sent Events so
// widget documents can react to external edits of the config files.
func EventsHandler(w *watcher.Service) http.HandlerFunc {
	return func(wResp http.ResponseWriter, r *http.Request) {
		wResp.Header().Set("Content-Type", "text/event-stream")
		wResp.Header().Set("Cache-Control", "no-cache")
		wResp.Header().Set("Connection", "keep-alive")
		wResp.Header().Set("Access-Control-Allow-Origin", "*")

		flusher, ok := wResp.(http.Flusher)
		if !ok {
			http.Error(wResp, "Streaming unsupported", http.StatusInternalServerError)
			return
		}
		flusher.Flush()

		ch := w.Subscribe()
		defer w.Unsubscribe(ch)

		log.Printf("[SSE] Client connected: %s", r.RemoteAddr)

		for {
			select {
			case <-r.Context().Done():
				log.Printf("[SSE] Client disconnected: %s", r.RemoteAddr)
				return
			case event, ok := <-ch:
				if !ok {
					return
				}
				data, err := json.Marshal(event)
				if err != nil {
					continue
				}
				fmt.Fprintf(wResp, "data: %s\n\n", data)
				flusher.Flush()
			}
		}
	}
}

// WsSystemHandler upgrades to a WebSocket and pushes telemetry samples at
// a fixed interval until the client disconnects.
func WsSystemHandler(s *sysinfo.Sampler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		up := websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		}
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, "upgrade failed", http.StatusBadRequest)
			return
		}
		defer conn.Close()

		// Read pump: discard incoming messages, detect close.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(streamInterval)
		defer ticker.Stop()

		// Send one sample immediately so clients don't wait a full tick.
		if err := conn.WriteJSON(s.Sample()); err != nil {
			return
		}

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteJSON(s.Sample()); err != nil {
					return
				}
			}
		}
	}
}
