package settings

import (
	"path/filepath"
	"testing"

	"github.com/minqiz/ddlnote/internal/cli"
	"github.com/minqiz/ddlnote/internal/constants"
	"github.com/minqiz/ddlnote/internal/storage"
)

func setupContext(t *testing.T) *cli.Context {
	t.Helper()
	dir := t.TempDir()
	backend := storage.FileBackend{}
	return &cli.Context{
		Records:  storage.NewRecordStore(backend, filepath.Join(dir, "ddl_items.json")),
		Settings: storage.NewSettingsStore(backend, filepath.Join(dir, "settings.json")),
	}
}

func TestSettingsCmd_List(t *testing.T) {
	ctx := setupContext(t)

	cmd := &SettingsCmd{List: true}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_UpdateFontSize(t *testing.T) {
	ctx := setupContext(t)

	size := 14
	cmd := &SettingsCmd{FontSize: &size}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	doc, err := ctx.Settings.Load()
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	if got := doc.Int(constants.SettingFontSize, 0); got != 14 {
		t.Errorf("expected font_size 14, got %d", got)
	}
}

func TestSettingsCmd_UpdateFontSize_InvalidValue(t *testing.T) {
	ctx := setupContext(t)

	zero := 0
	cmd := &SettingsCmd{FontSize: &zero}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for font size 0, got nil")
	}

	// Nothing was persisted.
	doc, _ := ctx.Settings.Load()
	if got := doc.Int(constants.SettingFontSize, 0); got != constants.DefaultFontSize {
		t.Errorf("expected default font_size after rejection, got %d", got)
	}
}

func TestSettingsCmd_AlphaClampedBeforeStore(t *testing.T) {
	ctx := setupContext(t)

	alpha := 3.5
	cmd := &SettingsCmd{Alpha: &alpha}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	doc, _ := ctx.Settings.Load()
	if got := doc.Float(constants.SettingAlpha, -1); got != 1.0 {
		t.Errorf("expected alpha clamped to 1.0, got %f", got)
	}
}

func TestSettingsCmd_UnknownThemeRejected(t *testing.T) {
	ctx := setupContext(t)

	themeName := "nonexistent"
	cmd := &SettingsCmd{Theme: &themeName}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for unknown theme, got nil")
	}
}

func TestSettingsCmd_ValidThemeAccepted(t *testing.T) {
	ctx := setupContext(t)

	themeName := "breeze"
	cmd := &SettingsCmd{Theme: &themeName}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	doc, _ := ctx.Settings.Load()
	if got := doc.String(constants.SettingTheme, ""); got != "breeze" {
		t.Errorf("expected theme breeze, got %q", got)
	}
}

func TestSettingsCmd_NoChanges(t *testing.T) {
	ctx := setupContext(t)
	if err := (&SettingsCmd{}).Run(ctx); err != nil {
		t.Errorf("expected no-op run to succeed, got %v", err)
	}
}
