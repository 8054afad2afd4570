package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hiudyy/DashLayer/internal/model"
	"github.com/hiudyy/DashLayer/internal/sysinfo"
	"github.com/hiudyy/DashLayer/internal/watcher"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	sampler := sysinfo.NewSampler()
	collector := sysinfo.NewCollector(sampler.Sample, t.TempDir())
	w, err := watcher.New(t.TempDir())
	if err != nil {
		t.Fatalf("watcher.New() error = %v", err)
	}
	srv := New(sampler, collector, w)
	srv.Routes()
	return srv
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	srv.Mux.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %q, want ok status", rec.Body.String())
	}
}

func TestSystemHandler(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/system", nil)
	rec := httptest.NewRecorder()
	srv.Mux.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var info model.SystemInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("response not SystemInfo JSON: %v", err)
	}
	if info.MemoryUsage < 0 || info.MemoryUsage > 100 {
		t.Errorf("MemoryUsage = %v, want 0-100", info.MemoryUsage)
	}
}

func TestHistoryRoute(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/system/history", nil)
	rec := httptest.NewRecorder()
	srv.Mux.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var samples []sysinfo.Sample
	if err := json.Unmarshal(rec.Body.Bytes(), &samples); err != nil {
		t.Fatalf("response not sample list: %v", err)
	}
}

func TestWsSystemStream(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Mux)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/system"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("ws dial error = %v", err)
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var info model.SystemInfo
	if err := conn.ReadJSON(&info); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if info.CPUUsage < 0 || info.CPUUsage > 100 {
		t.Errorf("CPUUsage = %v, want 0-100", info.CPUUsage)
	}
}
