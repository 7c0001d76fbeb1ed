// Package storage persists the two application documents, deadline records
// and settings, as indented JSON through a pluggable byte backend. Load
// operations degrade to defaults/empty on absence or corruption and report
// the reason alongside, leaving the escalation decision to the caller.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/minqiz/ddlnote/internal/config"
)

// SettingsStore round-trips the settings document.
type SettingsStore struct {
	backend  Backend
	location string
}

func NewSettingsStore(backend Backend, location string) *SettingsStore {
	return &SettingsStore{backend: backend, location: location}
}

// Load returns the merged settings document: defaults overlaid with
// whatever was persisted. An absent document yields plain defaults with a
// nil error; an unreadable or non-mapping document yields plain defaults
// plus the reason.
func (s *SettingsStore) Load() (config.Document, error) {
	defaults := config.Defaults()

	data, found, err := s.backend.Read(s.location)
	if err != nil {
		return defaults, err
	}
	if !found {
		return defaults, nil
	}

	var persisted map[string]any
	if err := json.Unmarshal(data, &persisted); err != nil {
		return defaults, fmt.Errorf("settings document is not a valid mapping: %w", err)
	}
	return config.Reconcile(defaults, persisted), nil
}

// Save serializes the full document, overwriting prior content. Unknown
// keys present in the document are written out unchanged.
func (s *SettingsStore) Save(doc config.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	return s.backend.Write(s.location, data)
}

// Location returns the document path, for diagnostics.
func (s *SettingsStore) Location() string {
	return s.location
}
