package deadlines

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/minqiz/ddlnote/internal/cli"
	"github.com/minqiz/ddlnote/internal/config"
	"github.com/minqiz/ddlnote/internal/models"
)

type AddCmd struct {
	Name string `arg:"" optional:"" help:"Deadline name."`
	Date string `short:"d" help:"Due date (YYYY-MM-DD)."`
	Time string `short:"t" help:"Due time (HH:MM)." default:"23:59"`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	name, date, clock := c.Name, c.Date, c.Time

	// No flags: collect the draft interactively. The form operates on
	// locals, so cancelling leaves nothing behind.
	if name == "" || date == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Value(&name),
				huh.NewInput().Title("Due date (YYYY-MM-DD)").Value(&date),
				huh.NewInput().Title("Due time (HH:MM)").Value(&clock),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}
	}

	canonical, err := config.ValidateRecord(name, date, clock)
	if err != nil {
		return err
	}

	records := ctx.LoadRecords()
	rec := models.NewDeadline(name, canonical)
	records = append(records, rec)
	if err := ctx.Records.Save(records); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	fmt.Printf("Added %q due %s (id %s)\n", rec.Name, rec.Date, rec.ID)
	return nil
}
