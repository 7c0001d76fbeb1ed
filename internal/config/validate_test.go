package config

import (
	"strings"
	"testing"

	"github.com/minqiz/ddlnote/internal/constants"
)

type themeSet map[string]bool

func (s themeSet) IsAvailable(name string) bool { return s[name] }

var themes = themeSet{"arc": true, "plain": true}

func TestUpdate_ApplyCommitsFields(t *testing.T) {
	doc := Defaults()
	size := 14
	weight := constants.FontWeightBold
	update := Update{FontSize: &size, FontWeight: &weight}
	if err := update.Apply(doc, themes); err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}

	if got := doc.Int(constants.SettingFontSize, 0); got != 14 {
		t.Errorf("expected font_size 14, got %d", got)
	}
	if got := doc.String(constants.SettingFontWeight, ""); got != constants.FontWeightBold {
		t.Errorf("expected bold, got %q", got)
	}
}

func TestUpdate_ApplyClampsAlpha(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{2.5, 1.0},
		{-1.0, 0.0},
		{0.3, 0.3},
	}
	for _, tt := range tests {
		doc := Defaults()
		alpha := tt.in
		if err := (Update{Alpha: &alpha}).Apply(doc, themes); err != nil {
			t.Fatalf("unexpected rejection for alpha %f: %v", tt.in, err)
		}
		if got := doc.Float(constants.SettingAlpha, -1); got != tt.want {
			t.Errorf("alpha %f stored as %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestUpdate_ApplyRejectsWithoutCommitting(t *testing.T) {
	badSize := 0
	badWeight := "heavy"
	badTheme := "nonexistent"

	tests := []struct {
		name   string
		update Update
	}{
		{"zero font size", Update{FontSize: &badSize}},
		{"unknown font weight", Update{FontWeight: &badWeight}},
		{"unknown theme", Update{Theme: &badTheme}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Defaults()
			if err := tt.update.Apply(doc, themes); err == nil {
				t.Fatal("expected rejection, got nil")
			}
			// A rejected update leaves the document untouched.
			if got := doc.Int(constants.SettingFontSize, -1); got != constants.DefaultFontSize {
				t.Errorf("document modified on rejection: font_size %d", got)
			}
			if got := doc.String(constants.SettingTheme, ""); got != constants.DefaultTheme {
				t.Errorf("document modified on rejection: theme %q", got)
			}
		})
	}
}

func TestUpdate_PartialRejectionLeavesValidFieldsUncommitted(t *testing.T) {
	doc := Defaults()
	size := 14
	badWeight := "heavy"

	if err := (Update{FontSize: &size, FontWeight: &badWeight}).Apply(doc, themes); err == nil {
		t.Fatal("expected rejection, got nil")
	}
	if got := doc.Int(constants.SettingFontSize, -1); got != constants.DefaultFontSize {
		t.Errorf("expected atomic rejection, but font_size was committed: %d", got)
	}
}

func TestUpdate_Empty(t *testing.T) {
	if !(Update{}).Empty() {
		t.Error("expected zero update to be empty")
	}
	v := 1
	if (Update{WindowX: &v}).Empty() {
		t.Error("expected non-zero update to not be empty")
	}
}

func TestValidateRecord(t *testing.T) {
	canonical, err := ValidateRecord("thesis", "2025-12-31", "23:59")
	if err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if canonical != "2025-12-31 23:59" {
		t.Errorf("expected canonical form, got %q", canonical)
	}

	if _, err := ValidateRecord("", "2025-12-31", "23:59"); err == nil {
		t.Error("expected rejection for empty name")
	}
	if _, err := ValidateRecord("x", "31/12/2025", "23:59"); err == nil {
		t.Error("expected rejection for non-canonical date")
	}
	if _, err := ValidateRecord("x", "2025-12-31", "99:99"); err == nil {
		t.Error("expected rejection for impossible time")
	}
	if _, err := ValidateRecord("x", "2025-12-31", "23:59:00"); err == nil {
		t.Error("expected rejection for seconds precision")
	}

	_, err = ValidateRecord("x", "bad", "worse")
	if err == nil || !strings.Contains(err.Error(), "bad worse") {
		t.Errorf("expected the raw input in the message, got %v", err)
	}
}
