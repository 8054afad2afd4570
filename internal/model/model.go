// Package model defines the persisted entities and the telemetry snapshot
// exchanged with the frontend. JSON tags are camelCase for JavaScript
// compatibility.
package model

// Widget is a user-defined HTML/CSS/JS micro-app rendered in its own window.
type Widget struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	HTML        string `json:"html"`
	CSS         string `json:"css"`
	JS          string `json:"js"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Opacity     int    `json:"opacity"` // 0-100
	AlwaysOnTop bool   `json:"alwaysOnTop"`
	Transparent bool   `json:"transparent"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	AutoStart   bool   `json:"autoStart"`
	Locked      bool   `json:"locked"`
}

// Key returns the store key for the widget.
func (w Widget) Key() string { return w.ID }

// Profile is a named, complete snapshot of widgets and dependencies,
// swappable as a unit.
type Profile struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Widgets      []Widget     `json:"widgets"`
	Dependencies []Dependency `json:"dependencies"`
	CreatedAt    string       `json:"createdAt"`
}

func (p Profile) Key() string { return p.ID }

// Dependency describes an external script/style asset a widget may rely on.
// Cached is tracked as metadata only; nothing here performs the fetch.
type Dependency struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Name    string `json:"name"`
	Cached  bool   `json:"cached"`
	AddedAt string `json:"addedAt"`
}

func (d Dependency) Key() string { return d.ID }

// SystemInfo is a point-in-time telemetry snapshot. It is never persisted.
type SystemInfo struct {
	CPUUsage       float64  `json:"cpuUsage"`
	MemoryUsage    float64  `json:"memoryUsage"`
	MemoryTotal    uint64   `json:"memoryTotal"`
	MemoryUsed     uint64   `json:"memoryUsed"`
	DiskUsage      float64  `json:"diskUsage"`
	DiskTotal      uint64   `json:"diskTotal"`
	DiskUsed       uint64   `json:"diskUsed"`
	CPUTemperature *float64 `json:"cpuTemperature"`
}

// ScreenSize is the reported primary screen geometry.
type ScreenSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}
