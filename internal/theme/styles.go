package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/minqiz/ddlnote/internal/config"
	"github.com/minqiz/ddlnote/internal/constants"
)

// Styles is the resolved set of lipgloss styles the widget renders with.
type Styles struct {
	Header  lipgloss.Style
	Body    lipgloss.Style
	Warning lipgloss.Style
	Help    lipgloss.Style
}

// Resolve maps a settings document onto concrete styles. fg_color and
// bg_color override the theme palette when they differ from the schema
// defaults; font_weight bold applies to the body text.
func Resolve(doc config.Document) Styles {
	t := Lookup(doc.String(constants.SettingTheme, constants.DefaultTheme))

	var fg, bg lipgloss.TerminalColor
	fg = t.Foreground
	bg = t.Background
	if c := doc.String(constants.SettingFgColor, constants.DefaultFgColor); c != constants.DefaultFgColor {
		fg = lipgloss.Color(c)
	}
	if c := doc.String(constants.SettingBgColor, constants.DefaultBgColor); c != constants.DefaultBgColor {
		bg = lipgloss.Color(c)
	}

	body := lipgloss.NewStyle().Foreground(fg).Background(bg).Padding(0, 1)
	if doc.String(constants.SettingFontWeight, constants.DefaultFontWeight) == constants.FontWeightBold {
		body = body.Bold(true)
	}

	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Background(bg).Padding(0, 1),
		Body:    body,
		Warning: lipgloss.NewStyle().Foreground(t.Warning).Background(bg).Padding(0, 1),
		Help:    lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
