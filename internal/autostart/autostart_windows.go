//go:build windows

package autostart

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// Windows registration is a value under the current user's Run key.

const runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

// Enable writes the Run value, replacing any previous registration.
func Enable(e Entry) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open Run registry key: %w", err)
	}
	defer key.Close()

	if err := key.SetStringValue(e.AppName, e.Command); err != nil {
		return fmt.Errorf("failed to set autostart registry value: %w", err)
	}
	return nil
}

// Disable removes the Run value. A missing value is not an error.
func Disable(e Entry) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open Run registry key: %w", err)
	}
	defer key.Close()

	if err := key.DeleteValue(e.AppName); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("failed to delete autostart registry value: %w", err)
	}
	return nil
}

// IsEnabled reports whether the Run value exists and matches the expected
// command. A stale value pointing at a different command counts as
// disabled.
func IsEnabled(e Entry) (bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return false, fmt.Errorf("failed to open Run registry key: %w", err)
	}
	defer key.Close()

	value, _, err := key.GetStringValue(e.AppName)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read autostart registry value: %w", err)
	}
	return value == e.Command, nil
}
