package main

import (
	"flag"
	"log"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"

	"github.com/hiudyy/DashLayer/internal/app"
	"github.com/hiudyy/DashLayer/internal/window"
)

func main() {
	// Widget-window mode: the manager re-invokes this executable with
	// -widget-url to host a single widget document in its own process.
	widgetURL := flag.String("widget-url", "", "display a single widget document and exit")
	widgetTitle := flag.String("widget-title", "Widget", "widget window title")
	widgetWidth := flag.Int("widget-width", 300, "widget window width")
	widgetHeight := flag.Int("widget-height", 200, "widget window height")
	widgetX := flag.Int("widget-x", 0, "widget window x position")
	widgetY := flag.Int("widget-y", 0, "widget window y position")
	widgetTransparent := flag.Bool("widget-transparent", false, "widget window transparency")
	widgetOnTop := flag.Bool("widget-on-top", false, "keep widget window on top")
	flag.Parse()

	if *widgetURL != "" {
		window.RunWindow(window.Options{
			Title:       *widgetTitle,
			URL:         *widgetURL,
			Width:       *widgetWidth,
			Height:      *widgetHeight,
			X:           *widgetX,
			Y:           *widgetY,
			Frameless:   true,
			Transparent: *widgetTransparent,
			AlwaysOnTop: *widgetOnTop,
			SkipTaskbar: true,
			Resizable:   true,
		})
		return
	}

	a, err := app.New()
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}

	err = wails.Run(&options.App{
		Title:  "DashLayer",
		Width:  1200,
		Height: 800,
		Bind: []interface{}{
			a,
		},
		OnStartup:  a.Startup,
		OnShutdown: a.Shutdown,
	})
	if err != nil {
		println("Error:", err.Error())
	}
}
