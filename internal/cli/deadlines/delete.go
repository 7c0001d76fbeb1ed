package deadlines

import (
	"fmt"

	"github.com/minqiz/ddlnote/internal/cli"
)

type DeleteCmd struct {
	ID   string `arg:"" optional:"" help:"Record id (see 'ddlnote list')."`
	Name string `short:"n" help:"Match by name instead of id."`
	Date string `short:"d" help:"Due date for name matching (YYYY-MM-DD HH:MM)."`
}

func (c *DeleteCmd) Validate() error {
	if c.ID == "" && c.Name == "" {
		return fmt.Errorf("an id or --name is required")
	}
	if c.ID != "" && c.Name != "" {
		return fmt.Errorf("an id and --name are mutually exclusive")
	}
	return nil
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	records := ctx.LoadRecords()

	var idx int
	var err error
	if c.ID != "" {
		idx, err = cli.FindRecord(records, c.ID)
	} else {
		// Value matching removes the first occurrence when duplicates
		// share a name and date.
		idx, err = cli.FindRecordByValue(records, c.Name, c.Date)
	}
	if err != nil {
		return err
	}

	removed := records[idx]
	records = append(records[:idx], records[idx+1:]...)
	if err := ctx.Records.Save(records); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	fmt.Printf("Deleted %q due %s\n", removed.Name, removed.Date)
	return nil
}
