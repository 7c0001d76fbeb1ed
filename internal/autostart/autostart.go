// Package autostart registers the application to launch at login. The
// startup command is resolved once at process start and injected, so every
// call site agrees on what gets registered.
package autostart

import (
	"fmt"
	"os"
	"path/filepath"
)

// Entry describes one auto-start registration.
type Entry struct {
	// AppName keys the registration (registry value name on Windows,
	// desktop-entry file name elsewhere).
	AppName string
	// Command is the full invocation to register.
	Command string
}

// ResolveCommand computes the startup command for the current process.
func ResolveCommand() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	return exe + " widget", nil
}
