package deadlines

import (
	"fmt"

	"github.com/minqiz/ddlnote/internal/cli"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	records := ctx.LoadRecords()
	if len(records) == 0 {
		fmt.Println("No deadlines recorded. Add one with 'ddlnote add'.")
		return nil
	}

	fmt.Printf("%-36s  %-16s  %s\n", "ID", "DUE", "NAME")
	for _, rec := range records {
		due := rec.Date
		if due == "" {
			due = "(no date)"
		}
		fmt.Printf("%-36s  %-16s  %s\n", rec.ID, due, rec.Name)
	}
	return nil
}
