package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/minqiz/ddlnote/internal/config"
	"github.com/minqiz/ddlnote/internal/models"
	"github.com/minqiz/ddlnote/internal/storage"
)

func testContext(t *testing.T) *Context {
	t.Helper()
	dir := t.TempDir()
	backend := storage.FileBackend{}
	return &Context{
		Records:  storage.NewRecordStore(backend, filepath.Join(dir, "ddl_items.json")),
		Settings: storage.NewSettingsStore(backend, filepath.Join(dir, "settings.json")),
	}
}

func TestLoadRecords_DegradesToEmptyOnCorruption(t *testing.T) {
	ctx := testContext(t)
	if err := os.WriteFile(ctx.Records.Location(), []byte("{corrupt"), 0600); err != nil {
		t.Fatal(err)
	}

	records := ctx.LoadRecords()
	if len(records) != 0 {
		t.Errorf("expected empty sequence on corruption, got %v", records)
	}
}

func TestLoadSettings_DegradesToDefaultsOnCorruption(t *testing.T) {
	ctx := testContext(t)
	if err := os.WriteFile(ctx.Settings.Location(), []byte("{corrupt"), 0600); err != nil {
		t.Fatal(err)
	}

	doc := ctx.LoadSettings()
	if !reflect.DeepEqual(doc, config.Defaults()) {
		t.Errorf("expected defaults on corruption, got %v", doc)
	}
}

func TestFindRecord(t *testing.T) {
	a := models.NewDeadline("a", "2025-01-01 00:00")
	b := models.NewDeadline("b", "2025-01-02 00:00")
	records := []models.Deadline{a, b}

	idx, err := FindRecord(records, b.ID)
	if err != nil || idx != 1 {
		t.Errorf("expected index 1, got %d (%v)", idx, err)
	}
	if _, err := FindRecord(records, "missing"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestFindRecordByValue_FirstOccurrence(t *testing.T) {
	records := []models.Deadline{
		models.NewDeadline("dup", "2025-01-01 00:00"),
		models.NewDeadline("dup", "2025-01-01 00:00"),
	}

	idx, err := FindRecordByValue(records, "dup", "2025-01-01 00:00")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if idx != 0 {
		t.Errorf("expected the first occurrence, got index %d", idx)
	}

	if _, err := FindRecordByValue(records, "dup", "2025-06-01 00:00"); err == nil {
		t.Error("expected error when no record matches")
	}
}
