package window

import (
	"github.com/zserge/webview"
)

// RunWindow displays the widget document in a webview and blocks until
// the window closes. It runs in the child process spawned by ProcessHost.
// Frameless, always-on-top, skip-taskbar and initial position are applied
// by the process host environment where the toolkit supports them; the
// webview layer itself only honors title, size and resizability.
func RunWindow(opts Options) {
	wv := webview.New(webview.Settings{
		Title:     opts.Title,
		URL:       opts.URL,
		Width:     opts.Width,
		Height:    opts.Height,
		Resizable: opts.Resizable,
	})
	defer wv.Exit()
	wv.Run()
}
