package config

import (
	"fmt"
	"time"

	"github.com/minqiz/ddlnote/internal/constants"
)

// ThemeSet answers whether a theme identifier is available. The settings
// engine only needs membership, not how the set is produced.
type ThemeSet interface {
	IsAvailable(name string) bool
}

// Update is a validated settings edit. Only non-nil fields are applied.
type Update struct {
	WindowX      *int
	WindowY      *int
	WindowWidth  *int
	WindowHeight *int
	FontFamily   *string
	FontSize     *int
	FontWeight   *string
	FgColor      *string
	BgColor      *string
	Alpha        *float64
	Theme        *string
	AutoStart    *bool
}

// Apply validates the update against the document and commits it atomically:
// on any rejection the document is untouched and a descriptive error is
// returned for the edit surface to show. Alpha is clamped rather than
// rejected.
func (u Update) Apply(doc Document, themes ThemeSet) error {
	if u.FontSize != nil && *u.FontSize <= 0 {
		return fmt.Errorf("font size must be greater than zero, got %d", *u.FontSize)
	}
	if u.FontWeight != nil && *u.FontWeight != constants.FontWeightNormal && *u.FontWeight != constants.FontWeightBold {
		return fmt.Errorf("font weight must be %q or %q, got %q",
			constants.FontWeightNormal, constants.FontWeightBold, *u.FontWeight)
	}
	if u.WindowWidth != nil && *u.WindowWidth <= 0 {
		return fmt.Errorf("window width must be greater than zero, got %d", *u.WindowWidth)
	}
	if u.WindowHeight != nil && *u.WindowHeight <= 0 {
		return fmt.Errorf("window height must be greater than zero, got %d", *u.WindowHeight)
	}
	if u.Theme != nil && themes != nil && !themes.IsAvailable(*u.Theme) {
		return fmt.Errorf("unknown theme %q", *u.Theme)
	}

	setInt := func(key string, v *int) {
		if v != nil {
			doc[key] = *v
		}
	}
	setStr := func(key string, v *string) {
		if v != nil {
			doc[key] = *v
		}
	}
	setInt(constants.SettingWindowX, u.WindowX)
	setInt(constants.SettingWindowY, u.WindowY)
	setInt(constants.SettingWindowWidth, u.WindowWidth)
	setInt(constants.SettingWindowHeight, u.WindowHeight)
	setInt(constants.SettingFontSize, u.FontSize)
	setStr(constants.SettingFontFamily, u.FontFamily)
	setStr(constants.SettingFontWeight, u.FontWeight)
	setStr(constants.SettingFgColor, u.FgColor)
	setStr(constants.SettingBgColor, u.BgColor)
	setStr(constants.SettingTheme, u.Theme)
	if u.Alpha != nil {
		doc[constants.SettingAlpha] = ClampAlpha(*u.Alpha)
	}
	if u.AutoStart != nil {
		doc[constants.SettingAutoStart] = *u.AutoStart
	}
	return nil
}

// Empty reports whether the update changes nothing.
func (u Update) Empty() bool {
	return u.WindowX == nil && u.WindowY == nil &&
		u.WindowWidth == nil && u.WindowHeight == nil &&
		u.FontFamily == nil && u.FontSize == nil && u.FontWeight == nil &&
		u.FgColor == nil && u.BgColor == nil &&
		u.Alpha == nil && u.Theme == nil && u.AutoStart == nil
}

// ValidateRecord checks a deadline edit at the boundary: non-empty name and
// a strictly parseable date. The canonical form is returned so callers store
// exactly what the parser accepted.
func ValidateRecord(name, date, clock string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("name must not be empty")
	}
	combined := date + " " + clock
	if _, err := time.ParseInLocation(constants.DateTimeFormat, combined, time.Local); err != nil {
		return "", fmt.Errorf("invalid date or time: expected %s and %s, got %q",
			"YYYY-MM-DD", "HH:MM", combined)
	}
	return combined, nil
}
