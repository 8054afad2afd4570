// Package window owns the mapping from widget id to live window and the
// shim to the OS windowing layer.
package window

// Options describes the window a widget is displayed in.
type Options struct {
	Title       string
	URL         string
	Width       int
	Height      int
	X           int
	Y           int
	Frameless   bool
	Transparent bool
	AlwaysOnTop bool
	SkipTaskbar bool
	Resizable   bool
}

// Handle is a live window. It is valid only while the window is open.
type Handle interface {
	Close() error
}

// Host is the windowing layer that actually creates windows.
type Host interface {
	CreateWindow(opts Options) (Handle, error)
}
