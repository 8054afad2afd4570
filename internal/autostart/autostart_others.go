//go:build !windows

package autostart

import (
	"fmt"
	"os"
	"path/filepath"
)

const entryFileName = "dashlayer.desktop"

func entryDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart"), nil
}

func entryContent(exe string) string {
	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=DashLayer
Comment=Desktop Widget Manager
Exec=%s
Icon=dashlayer
Terminal=false
Categories=Utility;
StartupNotify=false
X-GNOME-Autostart-enabled=true
`, exe)
}
