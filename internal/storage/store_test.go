package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/minqiz/ddlnote/internal/config"
	"github.com/minqiz/ddlnote/internal/constants"
	"github.com/minqiz/ddlnote/internal/models"
)

func settingsStore(t *testing.T) *SettingsStore {
	t.Helper()
	return NewSettingsStore(FileBackend{}, filepath.Join(t.TempDir(), "settings.json"))
}

func recordStore(t *testing.T) *RecordStore {
	t.Helper()
	return NewRecordStore(FileBackend{}, filepath.Join(t.TempDir(), "ddl_items.json"))
}

func TestSettingsStore_LoadAbsentReturnsDefaults(t *testing.T) {
	doc, err := settingsStore(t).Load()
	if err != nil {
		t.Fatalf("expected absent document to load silently, got %v", err)
	}
	if !reflect.DeepEqual(doc, config.Defaults()) {
		t.Errorf("expected defaults, got %v", doc)
	}
}

func TestSettingsStore_RoundTrip(t *testing.T) {
	store := settingsStore(t)

	doc := config.Defaults()
	doc[constants.SettingFontSize] = 14
	doc[constants.SettingTheme] = "plain"
	doc["custom_key"] = "kept"

	if err := store.Save(doc); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got := loaded.Int(constants.SettingFontSize, 0); got != 14 {
		t.Errorf("expected font_size 14, got %d", got)
	}
	if got := loaded.String(constants.SettingTheme, ""); got != "plain" {
		t.Errorf("expected theme plain, got %q", got)
	}
	if got := loaded.String("custom_key", ""); got != "kept" {
		t.Errorf("expected unknown key to round-trip, got %q", got)
	}
	// Defaults backfill any key the persisted document is missing.
	if got := loaded.Int(constants.SettingWindowX, 0); got != constants.DefaultWindowX {
		t.Errorf("expected default window_x backfill, got %d", got)
	}
}

func TestSettingsStore_CorruptReturnsDefaultsWithReason(t *testing.T) {
	store := settingsStore(t)
	if err := os.WriteFile(store.Location(), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	doc, err := store.Load()
	if err == nil {
		t.Error("expected a reason for the corrupt document")
	}
	if !reflect.DeepEqual(doc, config.Defaults()) {
		t.Errorf("expected defaults on corruption, got %v", doc)
	}
}

func TestSettingsStore_NonMappingReturnsDefaultsWithReason(t *testing.T) {
	store := settingsStore(t)
	if err := os.WriteFile(store.Location(), []byte(`[1, 2, 3]`), 0600); err != nil {
		t.Fatal(err)
	}

	doc, err := store.Load()
	if err == nil {
		t.Error("expected a reason for the non-mapping document")
	}
	if !reflect.DeepEqual(doc, config.Defaults()) {
		t.Errorf("expected defaults, got %v", doc)
	}
}

func TestRecordStore_LoadAbsentReturnsEmpty(t *testing.T) {
	records, err := recordStore(t).Load()
	if err != nil {
		t.Fatalf("expected absent document to load silently, got %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty sequence, got %v", records)
	}
}

func TestRecordStore_RoundTrip(t *testing.T) {
	store := recordStore(t)

	saved := []models.Deadline{
		models.NewDeadline("thesis", "2025-12-31 23:59"),
		models.NewDeadline("thesis", "2025-12-31 23:59"), // duplicates are legal
		models.NewDeadline("undated", ""),
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("round trip mismatch:\nsaved  %v\nloaded %v", saved, loaded)
	}
}

func TestRecordStore_AssignsMissingIDs(t *testing.T) {
	store := recordStore(t)
	// A document written by an older version carries no ids.
	legacy := `[{"name": "thesis", "date": "2025-12-31 23:59"}]`
	if err := os.WriteFile(store.Location(), []byte(legacy), 0600); err != nil {
		t.Fatal(err)
	}

	records, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ID == "" {
		t.Error("expected a generated id for the legacy record")
	}
	if records[0].Name != "thesis" || records[0].Date != "2025-12-31 23:59" {
		t.Errorf("expected field values preserved, got %+v", records[0])
	}
}

func TestRecordStore_CorruptReturnsEmptyWithReason(t *testing.T) {
	store := recordStore(t)
	if err := os.WriteFile(store.Location(), []byte(`{"not": "a list"}`), 0600); err != nil {
		t.Fatal(err)
	}

	records, err := store.Load()
	if err == nil {
		t.Error("expected a reason for the non-sequence document")
	}
	if len(records) != 0 {
		t.Errorf("expected empty sequence, got %v", records)
	}
}

func TestRecordStore_SaveNilWritesEmptySequence(t *testing.T) {
	store := recordStore(t)
	if err := store.Save(nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(store.Location())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("expected an empty JSON sequence, got %q", data)
	}
}

func TestFileBackend_CreatesParentDirectories(t *testing.T) {
	backend := FileBackend{}
	location := filepath.Join(t.TempDir(), "nested", "dir", "doc.json")

	if err := backend.Write(location, []byte(`{}`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, found, err := backend.Read(location)
	if err != nil || !found {
		t.Fatalf("read failed: found=%v err=%v", found, err)
	}
	if string(data) != `{}` {
		t.Errorf("unexpected content %q", data)
	}
}

func TestFileBackend_AbsentIsNotAnError(t *testing.T) {
	_, found, err := FileBackend{}.Read(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("expected no error for an absent file, got %v", err)
	}
	if found {
		t.Error("expected found=false for an absent file")
	}
}
