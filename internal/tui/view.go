package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StatePickEdit, StatePickDelete, StateRecordForm, StateSettingsForm:
		content := m.form.View()
		if m.status != "" {
			content = lipgloss.JoinVertical(lipgloss.Left,
				m.styles.Warning.Render(m.status), content)
		}
		return content

	case StateConfirmDelete:
		return lipgloss.Place(m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				m.styles.Warning.Render("Delete "+m.pickedName()+"?"),
				"",
				"[y] Yes",
				"[n] No",
			),
		)
	}

	// The countdown block renders header and body in the settings-driven
	// styles. The header is the block's first line.
	lines := strings.SplitN(m.display, "\n", 2)
	sections := []string{m.styles.Header.Render(lines[0])}
	if len(lines) > 1 {
		sections = append(sections, m.styles.Body.Render(lines[1]))
	}
	if m.status != "" {
		sections = append(sections, m.styles.Warning.Render(m.status))
	}
	sections = append(sections, m.styles.Help.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) pickedName() string {
	for _, rec := range m.records {
		if rec.ID == m.pickedID {
			return "'" + rec.Name + "'"
		}
	}
	return "this deadline"
}
