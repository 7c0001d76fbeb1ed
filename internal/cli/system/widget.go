package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minqiz/ddlnote/internal/cli"
	"github.com/minqiz/ddlnote/internal/tui"
)

// WidgetCmd launches the sticky-note display. It is the default command.
type WidgetCmd struct{}

func (c *WidgetCmd) Run(ctx *cli.Context) error {
	model := tui.NewModel(ctx)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("widget exited with an error: %w", err)
	}
	return nil
}
