package cli

import (
	"fmt"
	"time"

	"github.com/minqiz/ddlnote/internal/config"
	"github.com/minqiz/ddlnote/internal/logger"
	"github.com/minqiz/ddlnote/internal/models"
	"github.com/minqiz/ddlnote/internal/storage"
	"github.com/minqiz/ddlnote/internal/theme"
)

// Clock supplies the current instant. Injected so the formatter call sites
// are testable against a fixed time.
type Clock func() time.Time

type Context struct {
	Records  *storage.RecordStore
	Settings *storage.SettingsStore
	Themes   theme.Registry
	Clock    Clock

	// StartupCommand is the resolved auto-start invocation, computed once
	// in main and shared by every component that registers it.
	StartupCommand string
}

// LoadRecords applies the degrade-and-log policy: a corrupt or unreadable
// records document is logged and an empty sequence is used for the session.
func (c *Context) LoadRecords() []models.Deadline {
	records, err := c.Records.Load()
	if err != nil {
		logger.Warn("Failed to load records, starting with an empty list", "error", err)
	}
	return records
}

// LoadSettings applies the same policy to the settings document, falling
// back to defaults.
func (c *Context) LoadSettings() config.Document {
	doc, err := c.Settings.Load()
	if err != nil {
		logger.Warn("Failed to load settings, using defaults", "error", err)
	}
	return doc
}

// SaveRecords logs a write failure instead of propagating it; the in-memory
// state stays authoritative for the session but will not survive a restart.
func (c *Context) SaveRecords(records []models.Deadline) {
	if err := c.Records.Save(records); err != nil {
		logger.Error("Failed to save records, changes will be lost on exit", "error", err)
	}
}

// SaveSettings applies the same leniency to the settings document.
func (c *Context) SaveSettings(doc config.Document) {
	if err := c.Settings.Save(doc); err != nil {
		logger.Error("Failed to save settings, changes will be lost on exit", "error", err)
	}
}

// FindRecord locates a record by id.
func FindRecord(records []models.Deadline, id string) (int, error) {
	for i, rec := range records {
		if rec.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("no record with id %s", id)
}

// FindRecordByValue locates the first record matching name and date.
// Duplicates are legal, so this intentionally resolves to the first
// occurrence only; id-based lookup is the unambiguous path.
func FindRecordByValue(records []models.Deadline, name, date string) (int, error) {
	for i, rec := range records {
		if rec.Name == name && rec.Date == date {
			return i, nil
		}
	}
	return -1, fmt.Errorf("no record named %q due %q", name, date)
}
