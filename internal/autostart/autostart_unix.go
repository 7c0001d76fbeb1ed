//go:build !windows

package autostart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Unix registration is an XDG autostart desktop entry under
// ~/.config/autostart/<app>.desktop.

func entryPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(configDir, "autostart", appName+".desktop"), nil
}

func desktopEntry(e Entry) string {
	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Exec=%s
X-GNOME-Autostart-enabled=true
`, e.AppName, e.Command)
}

// Enable writes the desktop entry, replacing any previous registration.
func Enable(e Entry) error {
	path, err := entryPath(e.AppName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create autostart directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(desktopEntry(e)), 0644); err != nil {
		return fmt.Errorf("failed to write autostart entry: %w", err)
	}
	return nil
}

// Disable removes the desktop entry. Removing an entry that does not exist
// is not an error.
func Disable(e Entry) error {
	path, err := entryPath(e.AppName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove autostart entry: %w", err)
	}
	return nil
}

// IsEnabled reports whether a registration exists and its command matches
// the expected invocation. A stale entry pointing at a different command
// counts as disabled.
func IsEnabled(e Entry) (bool, error) {
	path, err := entryPath(e.AppName)
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read autostart entry: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "Exec=") {
			return strings.TrimPrefix(line, "Exec=") == e.Command, nil
		}
	}
	return false, nil
}
