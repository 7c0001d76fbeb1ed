package storage

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/minqiz/ddlnote/internal/models"
)

// RecordStore round-trips the deadline records document.
type RecordStore struct {
	backend  Backend
	location string
}

func NewRecordStore(backend Backend, location string) *RecordStore {
	return &RecordStore{backend: backend, location: location}
}

// Load returns the persisted record sequence. Absence yields an empty slice
// with a nil error; corruption or a non-sequence document yields an empty
// slice plus the reason. Records written by older versions without an id
// are assigned one so every loaded record is individually addressable.
func (s *RecordStore) Load() ([]models.Deadline, error) {
	data, found, err := s.backend.Read(s.location)
	if err != nil {
		return []models.Deadline{}, err
	}
	if !found {
		return []models.Deadline{}, nil
	}

	var records []models.Deadline
	if err := json.Unmarshal(data, &records); err != nil {
		return []models.Deadline{}, fmt.Errorf("records document is not a valid sequence: %w", err)
	}
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.New().String()
		}
	}
	return records, nil
}

// Save serializes the full record sequence, overwriting prior content.
func (s *RecordStore) Save(records []models.Deadline) error {
	if records == nil {
		records = []models.Deadline{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize records: %w", err)
	}
	return s.backend.Write(s.location, data)
}

// Location returns the document path, for diagnostics.
func (s *RecordStore) Location() string {
	return s.location
}
