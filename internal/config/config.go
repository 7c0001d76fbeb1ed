// Package config implements the settings document: a flat key-value mapping
// merged from a fixed default schema and user overrides. Unknown keys carried
// by a persisted document survive the merge and the next save.
package config

import (
	"github.com/minqiz/ddlnote/internal/constants"
)

// Document is the flat settings mapping. Values are whatever JSON decoding
// produced (string, float64, bool), so reads go through the typed accessors
// below rather than direct assertion.
type Document map[string]any

// Defaults returns a fresh document holding every recognized key at its
// default value.
func Defaults() Document {
	return Document{
		constants.SettingWindowX:      constants.DefaultWindowX,
		constants.SettingWindowY:      constants.DefaultWindowY,
		constants.SettingWindowWidth:  constants.DefaultWindowWidth,
		constants.SettingWindowHeight: constants.DefaultWindowHeight,
		constants.SettingFontFamily:   constants.DefaultFontFamily,
		constants.SettingFontSize:     constants.DefaultFontSize,
		constants.SettingFontWeight:   constants.DefaultFontWeight,
		constants.SettingFgColor:      constants.DefaultFgColor,
		constants.SettingBgColor:      constants.DefaultBgColor,
		constants.SettingAlpha:        constants.DefaultAlpha,
		constants.SettingTheme:        constants.DefaultTheme,
		constants.SettingAutoStart:    constants.DefaultAutoStart,
	}
}

// Reconcile merges loaded over defaults key-by-key. Every default key is
// present in the result; keys only present in loaded are retained untouched.
// Neither input is modified.
func Reconcile(defaults, loaded Document) Document {
	merged := make(Document, len(defaults)+len(loaded))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range loaded {
		merged[k] = v
	}
	return merged
}

// Int reads an integer setting, tolerating the float64 values JSON decoding
// leaves behind. Missing or mistyped values fall back to fallback.
func (d Document) Int(key string, fallback int) int {
	switch v := d[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// Float reads a float setting with the same tolerance as Int.
func (d Document) Float(key string, fallback float64) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return fallback
	}
}

// Bool reads a boolean setting.
func (d Document) Bool(key string, fallback bool) bool {
	if v, ok := d[key].(bool); ok {
		return v
	}
	return fallback
}

// String reads a text setting.
func (d Document) String(key, fallback string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return fallback
}

// ClampAlpha forces an opacity value into [0, 1]. Out-of-range edits are
// clamped before they reach the document, never stored as supplied.
func ClampAlpha(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
