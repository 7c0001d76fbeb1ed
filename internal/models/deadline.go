package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/minqiz/ddlnote/internal/constants"
)

// Deadline is a named task with an optional due date. The due date is kept
// as text in its canonical YYYY-MM-DD HH:MM form; whether it parses decides
// whether the record shows up in the countdown section or the diagnostic
// section of the display.
type Deadline struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// NewDeadline creates a record with a stable synthetic id. Records are
// matched by id for edit and delete, never by field equality, so two
// records may share a name and date without ambiguity.
func NewDeadline(name, date string) Deadline {
	return Deadline{
		ID:   uuid.New().String(),
		Name: name,
		Date: date,
	}
}

// DueAt parses the record's due date against the canonical format.
func (d Deadline) DueAt() (time.Time, error) {
	return time.ParseInLocation(constants.DateTimeFormat, d.Date, time.Local)
}

// HasDate reports whether a due date is set at all. A set-but-malformed
// date still returns true; validity is DueAt's concern.
func (d Deadline) HasDate() bool {
	return d.Date != ""
}
