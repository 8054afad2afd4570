//go:build windows

package autostart

import (
	"fmt"
	"os"
	"path/filepath"
)

const entryFileName = "dashlayer.bat"

func entryDir() (string, error) {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		return "", fmt.Errorf("APPDATA not set")
	}
	return filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs", "Startup"), nil
}

func entryContent(exe string) string {
	return fmt.Sprintf("@echo off\r\nstart \"\" \"%s\"\r\n", exe)
}
