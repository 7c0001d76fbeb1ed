// Package theme holds the named visual themes the widget can render with
// and the availability set the settings engine validates against.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named palette. The fg/bg settings override these when set, so
// a theme only supplies the accent and diagnostic colors plus the fallback
// text colors.
type Theme struct {
	Name       string
	Foreground lipgloss.AdaptiveColor
	Background lipgloss.Color
	Accent     lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor
}

var themes = map[string]Theme{
	"arc": {
		Name:       "arc",
		Foreground: lipgloss.AdaptiveColor{Dark: "#D3DAE3", Light: "#5C616C"},
		Background: lipgloss.Color("#383C4A"),
		Accent:     lipgloss.AdaptiveColor{Dark: "#5294E2", Light: "#3B6EA5"},
		Warning:    lipgloss.AdaptiveColor{Dark: "#E9AB4D", Light: "#B7791F"},
	},
	"equilux": {
		Name:       "equilux",
		Foreground: lipgloss.AdaptiveColor{Dark: "#D4D4D4", Light: "#3B3B3B"},
		Background: lipgloss.Color("#464646"),
		Accent:     lipgloss.AdaptiveColor{Dark: "#8CA9BE", Light: "#5A7A94"},
		Warning:    lipgloss.AdaptiveColor{Dark: "#D0A35F", Light: "#A06E2C"},
	},
	"breeze": {
		Name:       "breeze",
		Foreground: lipgloss.AdaptiveColor{Dark: "#EFF0F1", Light: "#232629"},
		Background: lipgloss.Color("#31363B"),
		Accent:     lipgloss.AdaptiveColor{Dark: "#3DAEE9", Light: "#2980B9"},
		Warning:    lipgloss.AdaptiveColor{Dark: "#F67400", Light: "#B65C00"},
	},
	"plain": {
		Name:       "plain",
		Foreground: lipgloss.AdaptiveColor{Dark: "#FFFFFF", Light: "#000000"},
		Background: lipgloss.Color("#000000"),
		Accent:     lipgloss.AdaptiveColor{Dark: "#FFFFFF", Light: "#000000"},
		Warning:    lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"},
	},
}

// Registry is the collaborator-supplied availability set consumed by the
// settings engine.
type Registry struct{}

// IsAvailable reports whether a theme identifier is known.
func (Registry) IsAvailable(name string) bool {
	_, ok := themes[name]
	return ok
}

// Available lists the known theme identifiers in stable order.
func (Registry) Available() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named theme, falling back to "arc" for identifiers
// that slipped past validation (e.g. hand-edited settings files).
func Lookup(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["arc"]
}
