package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend is the raw byte-level persistence collaborator. Read reports
// absence separately from failure so callers can treat a missing document
// as "use defaults" without inspecting error types.
type Backend interface {
	Read(location string) (data []byte, found bool, err error)
	Write(location string, data []byte) error
}

// FileBackend stores documents on the local filesystem, creating parent
// directories on write.
type FileBackend struct{}

func (FileBackend) Read(location string) ([]byte, bool, error) {
	data, err := os.ReadFile(location)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", location, err)
	}
	return data, true, nil
}

func (FileBackend) Write(location string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(location), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(location, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", location, err)
	}
	return nil
}
