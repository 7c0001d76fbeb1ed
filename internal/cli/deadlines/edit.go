package deadlines

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/minqiz/ddlnote/internal/cli"
	"github.com/minqiz/ddlnote/internal/config"
	"github.com/minqiz/ddlnote/internal/constants"
)

type EditCmd struct {
	ID   string `arg:"" help:"Record id (see 'ddlnote list')."`
	Name string `short:"n" help:"New name."`
	Date string `short:"d" help:"New due date (YYYY-MM-DD)."`
	Time string `short:"t" help:"New due time (HH:MM)."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	records := ctx.LoadRecords()
	idx, err := cli.FindRecord(records, c.ID)
	if err != nil {
		return err
	}
	current := records[idx]

	name, date, clock := c.Name, c.Date, c.Time
	if name == "" && date == "" && clock == "" {
		// Interactive edit on a draft prefilled with the current values.
		name = current.Name
		date, clock = splitDate(current.Date)
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
	} else {
		// Flag edit: unspecified fields keep their current values.
		if name == "" {
			name = current.Name
		}
		curDate, curClock := splitDate(current.Date)
		if date == "" {
			date = curDate
		}
		if clock == "" {
			clock = curClock
		}
	}

	canonical, err := config.ValidateRecord(name, date, clock)
	if err != nil {
		return err
	}

	// The id survives the edit.
	records[idx].Name = name
	records[idx].Date = canonical
	if err := ctx.Records.Save(records); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	fmt.Printf("Updated %q due %s\n", name, canonical)
	return nil
}

// splitDate separates a canonical YYYY-MM-DD HH:MM value into its date and
// time halves. Malformed stored values come back as (raw, "") so the form
// shows the user what is actually on disk.
func splitDate(date string) (string, string) {
	if len(date) == len(constants.DateTimeFormat) {
		if i := strings.LastIndex(date, " "); i > 0 {
			return date[:i], date[i+1:]
		}
	}
	return date, ""
}
